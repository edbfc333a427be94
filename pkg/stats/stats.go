package stats

import (
	"sync/atomic"
	"time"
)

// Counters records runtime counters of a running server. The zero value is
// ready to use and every method is safe for concurrent use. A nil *Counters
// silently drops every update.
type Counters struct {
	DatagramsReceived int64
	DatagramsDropped  int64
	Forwards          int64
	Requests          int64
	Removals          int64
	Evictions         int64
	TickCount         int64
	TotalTickNs       int64
}

func (c *Counters) IncDatagramsReceived() {
	if c != nil {
		atomic.AddInt64(&c.DatagramsReceived, 1)
	}
}

func (c *Counters) IncDatagramsDropped() {
	if c != nil {
		atomic.AddInt64(&c.DatagramsDropped, 1)
	}
}

func (c *Counters) AddForwards(n int) {
	if c != nil {
		atomic.AddInt64(&c.Forwards, int64(n))
	}
}

func (c *Counters) IncRequests() {
	if c != nil {
		atomic.AddInt64(&c.Requests, 1)
	}
}

func (c *Counters) IncRemovals() {
	if c != nil {
		atomic.AddInt64(&c.Removals, 1)
	}
}

func (c *Counters) IncEvictions() {
	if c != nil {
		atomic.AddInt64(&c.Evictions, 1)
	}
}

// AddTick records one scheduler tick and how long it took.
func (c *Counters) AddTick(d time.Duration) {
	if c == nil {
		return
	}
	atomic.AddInt64(&c.TickCount, 1)
	atomic.AddInt64(&c.TotalTickNs, d.Nanoseconds())
}

// Snapshot is a read-only copy of the counters.
type Snapshot struct {
	DatagramsReceived int64   `json:"datagrams_received"`
	DatagramsDropped  int64   `json:"datagrams_dropped"`
	Forwards          int64   `json:"forwards"`
	Requests          int64   `json:"requests"`
	Removals          int64   `json:"removals"`
	Evictions         int64   `json:"evictions"`
	TickCount         int64   `json:"tick_count"`
	AvgTickMs         float64 `json:"avg_tick_ms"`
}

// Snapshot returns a copy of the counters for HTTP output.
func (c *Counters) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	ticks := atomic.LoadInt64(&c.TickCount)
	total := atomic.LoadInt64(&c.TotalTickNs)
	var avgMs float64
	if ticks > 0 {
		avgMs = float64(total) / float64(ticks) / 1e6
	}
	return Snapshot{
		DatagramsReceived: atomic.LoadInt64(&c.DatagramsReceived),
		DatagramsDropped:  atomic.LoadInt64(&c.DatagramsDropped),
		Forwards:          atomic.LoadInt64(&c.Forwards),
		Requests:          atomic.LoadInt64(&c.Requests),
		Removals:          atomic.LoadInt64(&c.Removals),
		Evictions:         atomic.LoadInt64(&c.Evictions),
		TickCount:         ticks,
		AvgTickMs:         avgMs,
	}
}
