package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Checkout records order placement outcomes for the running process.
type Checkout struct {
	placed  Counter
	failed  Counter
	elapsed Counter // nanoseconds across all attempts
}

type CheckoutSnapshot struct {
	Placed      uint64
	Failed      uint64
	AvgDuration time.Duration
}

// Observe records one attempt timed by t. A nil err counts as placed.
func (c *Checkout) Observe(t *Timer, err error) {
	c.elapsed.Add(uint64(t.Duration()))
	if err != nil {
		c.failed.Inc()
		return
	}
	c.placed.Inc()
}

func (c *Checkout) Snapshot() CheckoutSnapshot {
	s := CheckoutSnapshot{
		Placed: c.placed.Load(),
		Failed: c.failed.Load(),
	}
	if n := s.Placed + s.Failed; n > 0 {
		s.AvgDuration = time.Duration(c.elapsed.Load() / n)
	}
	return s
}
