// Package clock provides the monotonic time sources used to profile the
// transform engine. A source is an explicit object handed to the harness;
// nothing here is global.
package clock

import (
	"context"
	"sync/atomic"
	"time"
)

// Instant is a reading of a time source.
type Instant struct {
	// Ticks is the raw counter value.
	Ticks uint64
	// Millis is the counter converted to milliseconds.
	Millis uint64
}

// Source is a non-decreasing time source. Counters may wrap on overflow.
type Source interface {
	Now() Instant
}

// Elapsed returns to - from. Both fields use wrapping subtraction so a single
// counter overflow between the readings still yields the right difference.
func Elapsed(from, to Instant) Instant {
	return Instant{
		Ticks:  to.Ticks - from.Ticks,
		Millis: to.Millis - from.Millis,
	}
}

// TickCounter counts periodic ticks, the way a hardware timer interrupt
// advances a millisecond counter. Readers and the ticking goroutine only
// share the atomic counter.
type TickCounter struct {
	period time.Duration
	ticks  atomic.Uint64
}

// NewTickCounter returns a counter advanced once per period by Run.
func NewTickCounter(period time.Duration) *TickCounter {
	if period <= 0 {
		period = time.Millisecond
	}
	return &TickCounter{period: period}
}

// Period returns the tick period.
func (c *TickCounter) Period() time.Duration {
	return c.period
}

// Tick advances the counter by one.
func (c *TickCounter) Tick() {
	c.ticks.Add(1)
}

// Run advances the counter every period until ctx is done.
func (c *TickCounter) Run(ctx context.Context) {
	t := time.NewTicker(c.period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.Tick()
		}
	}
}

// Now implements Source.
func (c *TickCounter) Now() Instant {
	n := c.ticks.Load()
	return Instant{
		Ticks:  n,
		Millis: n * uint64(c.period) / uint64(time.Millisecond),
	}
}

// Monotonic reads the runtime's monotonic clock. Ticks are nanoseconds since
// the source was created.
type Monotonic struct {
	start time.Time
}

// NewMonotonic returns a source starting at zero now.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Now implements Source.
func (m *Monotonic) Now() Instant {
	d := time.Since(m.start)
	return Instant{
		Ticks:  uint64(d),
		Millis: uint64(d / time.Millisecond),
	}
}
