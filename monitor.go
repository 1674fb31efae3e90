package netreactor

import (
	"context"
	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
	"time"
)

type WakeInfo struct {
	Fd       int
	Count    uint64
	Waiters  int
	Events   int16
	LastWake int64
}

// WakeMonitor keeps the most recent readiness event per descriptor in a TTL
// cache, so idle descriptors age out on their own. Admission and eviction are
// asynchronous in ristretto, lookups and counts are best-effort.
type WakeMonitor struct {
	ctx   context.Context
	ttl   time.Duration
	cache *ristretto.Cache
}

func NewWakeMonitor(ctx context.Context, ttl time.Duration) (*WakeMonitor, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1 << 14,
		MaxCost:     1 << 12,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	monitor := &WakeMonitor{
		ctx:   ctx,
		ttl:   ttl,
		cache: cache,
	}
	go monitor.init()
	return monitor, nil
}

func (m *WakeMonitor) RecordWake(fd int, events int16, waiters int) {
	info := WakeInfo{
		Fd:       fd,
		Count:    1,
		Waiters:  waiters,
		Events:   events,
		LastWake: time.Now().UnixMilli(),
	}
	if prev, ok := m.cache.Get(fd); ok {
		if prevInfo, ok := prev.(WakeInfo); ok {
			info.Count = prevInfo.Count + 1
		}
	}
	m.cache.SetWithTTL(fd, info, 1, m.ttl)
}

func (m *WakeMonitor) LastWake(fd int) (WakeInfo, bool) {
	value, ok := m.cache.Get(fd)
	if !ok {
		return WakeInfo{}, false
	}
	info, ok := value.(WakeInfo)
	return info, ok
}

func (m *WakeMonitor) init() {
	ticker := time.NewTicker(20 * time.Second)
	for {
		select {
		case <-m.ctx.Done():
			ticker.Stop()
			m.cache.Close()
			return
		case <-ticker.C:
			metrics := m.cache.Metrics
			log.Debug().Msgf("wake cache: keys added %d hits %d misses %d",
				metrics.KeysAdded(), metrics.Hits(), metrics.Misses())
		}
	}
}

// RaiseOpenFileLimit bumps RLIMIT_NOFILE so a reactor polling many sockets
// does not run out of descriptors. Failures are logged, not fatal.
func RaiseOpenFileLimit(max uint64) {
	noRLimit := &unix.Rlimit{}
	err := unix.Getrlimit(unix.RLIMIT_NOFILE, noRLimit)
	if err != nil {
		log.Error().Msgf("error occur while getting OS limit of open files: %+v", err)
		return
	}
	if noRLimit.Cur >= max {
		return
	}
	err = unix.Setrlimit(unix.RLIMIT_NOFILE, &unix.Rlimit{
		Cur: max,
		Max: max,
	})
	if err != nil {
		log.Error().Msgf("error occur while setting OS limit of open files: %+v", err)
	}
}
