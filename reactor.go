package netreactor

import (
	"context"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
	"golang.org/x/sys/unix"
	"runtime"
	"sync"
)

// Lifecycle states. The reactor moves ready -> running exactly once when Run
// wins the guard, and running -> complete exactly once when the loop exits.
// Complete is terminal: no loop may run again and every later registration is
// cancelled on the spot.
const (
	stateReady int32 = iota
	stateRunning
	stateComplete
)

type ReactorConfig struct {
	Name         string
	Interval     Interval
	LockOsThread bool
	Poll         PollFunc
	Monitor      *WakeMonitor
}

// Reactor correlates suspended waiters to descriptor readiness by repeatedly
// issuing the poll syscall against every registered descriptor. All mutable
// state (the waiter registry and the lifecycle word) is guarded by a single
// mutex; the syscall itself runs outside the lock against a snapshot, so
// registrations arriving mid-poll are picked up on the next iteration.
type Reactor struct {
	Name         string
	lockOsThread bool
	interval     Interval
	poll         PollFunc
	monitor      *WakeMonitor

	state *atomic.Int32
	mu    sync.Mutex
	// descriptor -> set of waiters; a key is present iff its set is non-empty
	waiters map[int]map[*Waiter]struct{}

	stats *ReactorStats
}

func NewReactor(config ReactorConfig) *Reactor {
	if log.Debug().Enabled() {
		log.Debug().Msgf("init reactor:%+v", config)
	} else {
		log.Info().Msgf("init reactor:%s", config.Name)
	}
	poll := config.Poll
	if poll == nil {
		poll = netPoll
	}
	return &Reactor{
		Name:         config.Name,
		lockOsThread: config.LockOsThread,
		interval:     config.Interval,
		poll:         poll,
		monitor:      config.Monitor,
		state:        atomic.NewInt32(stateReady),
		waiters:      make(map[int]map[*Waiter]struct{}),
		stats:        newReactorStats(),
	}
}

// Suspend blocks the calling goroutine until fd reports a readable or
// writable event, the caller's context is cancelled, or the reactor shuts
// down. Every registered descriptor is polled with both read and write
// interest, so a caller waiting for one direction may be woken by the other
// and must re-check.
func (r *Reactor) Suspend(ctx context.Context, fd int) error {
	w := newWaiter()
	r.register(w, fd)
	select {
	case err := <-w.done:
		return err
	case <-ctx.Done():
		if r.unregister(w, fd) {
			return ErrCancelled
		}
		// Lost the race: the loop already removed the waiter and its
		// verdict is in flight.
		return <-w.done
	}
}

// Run drives the poll loop until ctx is cancelled or the syscall fails. It
// fails with ErrAlreadyRunning unless the reactor is in its initial state;
// there is no restart. On any exit the deferred shutdown cancels every
// outstanding waiter and closes the reactor to new registrations.
func (r *Reactor) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.state.Load() != stateReady {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	r.state.Store(stateRunning)
	r.mu.Unlock()

	if r.lockOsThread {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}
	defer r.shutdown()

	log.Info().Msgf("reactor %s: polling started", r.Name)
	routeEvent(r.Name, genReactorEvent(r.Name, ReactorStartedEvent, nil, "polling started"))

	timeout := r.interval.Milliseconds()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fds := r.snapshotPollFds()
		n, err := r.poll(fds, timeout)
		r.stats.polls.Inc()
		if err != nil {
			log.Error().Msgf("got error while waiting for the net events: %+v", err)
			routeEvent(r.Name, genReactorEvent(r.Name, PollFaultEvent, err, "poll syscall failed"))
			return err
		}
		if n > 0 {
			for i := range fds {
				if fds[i].Revents&readWriteEvents != 0 {
					r.drainAndResumeReady(int(fds[i].Fd), fds[i].Revents)
				}
			}
		}
		runtime.Gosched()
	}
}

// Stats returns a snapshot of the reactor counters.
func (r *Reactor) Stats() StatsSnapshot {
	return r.stats.Snapshot()
}

// shutdown runs exactly once, on loop exit for any reason.
func (r *Reactor) shutdown() {
	r.state.Store(stateComplete)
	r.cancelAll()
	log.Info().Msgf("reactor %s: polling stopped", r.Name)
	routeEvent(r.Name, genReactorEvent(r.Name, ReactorStoppedEvent, nil, "polling stopped"))
}

func (r *Reactor) snapshotPollFds() []unix.PollFd {
	r.mu.Lock()
	fds := make([]unix.PollFd, 0, len(r.waiters))
	for fd := range r.waiters {
		fds = append(fds, unix.PollFd{Fd: int32(fd), Events: readWriteEvents})
	}
	r.mu.Unlock()
	return fds
}
