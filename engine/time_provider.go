package engine

import "time"

// TimeProvider is the frame clock source
// The terminal loop measures dt between ticks through it so tests can drive time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameTimer converts successive clock readings into frame deltas in seconds
type FrameTimer struct {
	clock TimeProvider
	last  time.Time
}

// NewFrameTimer starts measuring from the clock's current time
func NewFrameTimer(clock TimeProvider) *FrameTimer {
	return &FrameTimer{clock: clock, last: clock.Now()}
}

// Tick returns seconds elapsed since the previous Tick (or construction)
// A clock that moved backwards yields 0
func (f *FrameTimer) Tick() float64 {
	now := f.clock.Now()
	dt := now.Sub(f.last).Seconds()
	f.last = now
	if dt < 0 {
		return 0
	}
	return dt
}
