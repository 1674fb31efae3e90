package netreactor

import "errors"

// ErrAlreadyRunning is returned by Run when the reactor is not in its initial
// state, either because a loop is already active or because a previous loop
// has terminated.
var ErrAlreadyRunning = errors.New("reactor is not ready to run")

// ErrCancelled is returned by Suspend when the waiter was cancelled by its
// caller, by reactor shutdown, or by registering after shutdown.
var ErrCancelled = errors.New("suspension cancelled")
