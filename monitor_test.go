package netreactor

import (
	"context"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestWakeMonitorRecordsLastWake(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	monitor, err := NewWakeMonitor(ctx, time.Minute)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	monitor.RecordWake(7, unix.POLLIN, 2)
	monitor.cache.Wait()
	info, ok := monitor.LastWake(7)
	if !ok {
		t.Fatal("no wake info recorded")
	}
	if info.Fd != 7 || info.Waiters != 2 || info.Events != unix.POLLIN {
		t.Fatalf("wake info: %+v", info)
	}

	monitor.RecordWake(7, unix.POLLOUT, 1)
	monitor.cache.Wait()
	info, ok = monitor.LastWake(7)
	if !ok || info.Count != 2 || info.Events != unix.POLLOUT {
		t.Fatalf("wake info after second wake: %+v ok:%v", info, ok)
	}

	if _, ok := monitor.LastWake(9); ok {
		t.Fatal("wake info for a descriptor that never woke")
	}
}
