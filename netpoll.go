package netreactor

import (
	"golang.org/x/sys/unix"
	"os"
)

const (
	readEvents      = unix.POLLPRI | unix.POLLIN
	writeEvents     = unix.POLLOUT
	readWriteEvents = readEvents | writeEvents
	errorEvents     = unix.POLLERR | unix.POLLHUP | unix.POLLNVAL
)

// PollFunc is the readiness-poll syscall contract: block up to timeoutMs
// milliseconds, fill in Revents for every entry that saw an event and return
// how many entries did. A zero-length fds slice is legal and blocks for the
// full timeout.
type PollFunc func(fds []unix.PollFd, timeoutMs int) (int, error)

func netPoll(fds []unix.PollFd, timeoutMs int) (int, error) {
	n, err := unix.Poll(fds, timeoutMs)
	if err != nil {
		return n, os.NewSyscallError("poll", err)
	}
	return n, nil
}
