package netreactor

// Interval is the polling cadence of the reactor loop: either Immediate
// (zero timeout, busy-poll) or a fixed number of seconds.
type Interval struct {
	seconds float64
}

// Immediate returns the zero-timeout interval. The poll syscall returns
// without blocking and the loop spins with only the per-iteration yield.
func Immediate() Interval {
	return Interval{}
}

func Seconds(sec float64) Interval {
	return Interval{seconds: sec}
}

// Milliseconds converts the interval into a poll timeout. The conversion
// truncates toward zero, so sub-millisecond intervals collapse to 0 and
// behave exactly like Immediate.
func (i Interval) Milliseconds() int {
	return int(int32(i.seconds * 1000))
}
