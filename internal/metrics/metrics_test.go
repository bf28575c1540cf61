package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter
	assert.Equal(t, uint64(0), c.Load())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()
	c.Add(10)

	assert.Equal(t, uint64(60), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), 2*time.Millisecond)
}

func TestCheckout(t *testing.T) {
	var c Checkout
	assert.Equal(t, CheckoutSnapshot{}, c.Snapshot())

	c.Observe(StartTimer(), nil)
	c.Observe(StartTimer(), nil)
	c.Observe(StartTimer(), assert.AnError)

	s := c.Snapshot()
	assert.Equal(t, uint64(2), s.Placed)
	assert.Equal(t, uint64(1), s.Failed)
	assert.GreaterOrEqual(t, s.AvgDuration, time.Duration(0))
}
