package netreactor

import (
	"github.com/rs/zerolog/log"
)

// Registry mutation. The mutex is the single point of truth for the
// cancel-vs-resume race: whichever of unregister and drainAndResumeReady
// observes a waiter in the mapping first takes ownership of it, the other
// finds it absent and does nothing.

func (r *Reactor) register(w *Waiter, fd int) {
	r.mu.Lock()
	if r.state.Load() == stateComplete {
		r.mu.Unlock()
		w.cancel()
		r.stats.cancellations.Inc()
		return
	}
	set, ok := r.waiters[fd]
	if !ok {
		set = make(map[*Waiter]struct{})
		r.waiters[fd] = set
	}
	set[w] = struct{}{}
	r.mu.Unlock()
	r.stats.registrations.Inc()
	if log.Debug().Enabled() {
		log.Debug().Msgf("[%d] registered waiter", fd)
	}
}

// unregister reports whether it removed the waiter. A false return means the
// waiter had already been taken out by a readiness drain or by shutdown.
func (r *Reactor) unregister(w *Waiter, fd int) bool {
	r.mu.Lock()
	set, ok := r.waiters[fd]
	if !ok {
		r.mu.Unlock()
		return false
	}
	if _, ok := set[w]; !ok {
		r.mu.Unlock()
		return false
	}
	delete(set, w)
	if len(set) == 0 {
		delete(r.waiters, fd)
	}
	r.mu.Unlock()
	w.cancel()
	r.stats.cancellations.Inc()
	if log.Debug().Enabled() {
		log.Debug().Msgf("[%d] cancelled waiter", fd)
	}
	return true
}

// drainAndResumeReady removes the whole waiter set for fd and resumes every
// waiter in it. Called only from the poll loop.
func (r *Reactor) drainAndResumeReady(fd int, revents int16) {
	r.mu.Lock()
	set, ok := r.waiters[fd]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.waiters, fd)
	r.mu.Unlock()
	for w := range set {
		w.resume()
	}
	r.stats.wakeups.Add(uint64(len(set)))
	if r.monitor != nil {
		r.monitor.RecordWake(fd, revents, len(set))
	}
	if log.Debug().Enabled() {
		log.Debug().Msgf("[%d] resumed %d waiters, events:%d", fd, len(set), revents)
	}
}

// cancelAll empties the registry and cancels every remaining waiter. Called
// only from shutdown, after the state word is already terminal.
func (r *Reactor) cancelAll() {
	r.mu.Lock()
	waiters := r.waiters
	r.waiters = make(map[int]map[*Waiter]struct{})
	r.mu.Unlock()
	for fd, set := range waiters {
		for w := range set {
			w.cancel()
		}
		r.stats.cancellations.Add(uint64(len(set)))
		if log.Debug().Enabled() {
			log.Debug().Msgf("[%d] cancelled %d waiters on shutdown", fd, len(set))
		}
	}
}
