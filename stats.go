package netreactor

import "go.uber.org/atomic"

type ReactorStats struct {
	polls         *atomic.Uint64
	registrations *atomic.Uint64
	wakeups       *atomic.Uint64
	cancellations *atomic.Uint64
}

type StatsSnapshot struct {
	Polls         uint64
	Registrations uint64
	Wakeups       uint64
	Cancellations uint64
}

func newReactorStats() *ReactorStats {
	return &ReactorStats{
		polls:         atomic.NewUint64(0),
		registrations: atomic.NewUint64(0),
		wakeups:       atomic.NewUint64(0),
		cancellations: atomic.NewUint64(0),
	}
}

func (s *ReactorStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Polls:         s.polls.Load(),
		Registrations: s.registrations.Load(),
		Wakeups:       s.wakeups.Load(),
		Cancellations: s.cancellations.Load(),
	}
}
