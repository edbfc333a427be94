package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounters_Snapshot(t *testing.T) {
	c := &Counters{}
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.IncDatagramsReceived()
			c.AddForwards(3)
			c.IncRemovals()
		}()
	}
	wg.Wait()
	c.IncEvictions()
	c.IncDatagramsDropped()
	c.IncRequests()
	c.AddTick(2 * time.Millisecond)
	c.AddTick(4 * time.Millisecond)

	s := c.Snapshot()
	assert.Equal(t, int64(10), s.DatagramsReceived)
	assert.Equal(t, int64(30), s.Forwards)
	assert.Equal(t, int64(10), s.Removals)
	assert.Equal(t, int64(1), s.Evictions)
	assert.Equal(t, int64(1), s.DatagramsDropped)
	assert.Equal(t, int64(1), s.Requests)
	assert.Equal(t, int64(2), s.TickCount)
	assert.InDelta(t, 3.0, s.AvgTickMs, 0.001)
}

func TestCounters_nil(t *testing.T) {
	var c *Counters
	assert.NotPanics(t, func() {
		c.IncDatagramsReceived()
		c.AddForwards(1)
		c.AddTick(time.Second)
	})
	assert.Equal(t, Snapshot{}, c.Snapshot())
}
