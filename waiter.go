package netreactor

// Waiter represents a single suspended caller awaiting a readiness event on
// one descriptor. A waiter is resumed or cancelled at most once; the registry
// removes it from the mapping before either transition, so neither path can
// observe it twice. Equality is by pointer identity, every suspension
// allocates a fresh waiter.
type Waiter struct {
	done chan error
}

func newWaiter() *Waiter {
	return &Waiter{
		done: make(chan error, 1),
	}
}

// resume wakes the suspended caller successfully.
func (w *Waiter) resume() {
	w.done <- nil
}

// cancel wakes the suspended caller with a cancellation failure.
func (w *Waiter) cancel() {
	w.done <- ErrCancelled
}
