package game

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/cbodonnell/spacewar/pkg/game/constants"
	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/messages"
	"github.com/cbodonnell/spacewar/pkg/sector"
	"github.com/cbodonnell/spacewar/pkg/stats"
)

// Broadcaster is what the scheduler needs to publish a tick.
type Broadcaster interface {
	BroadcastAll(conn net.PacketConn, payload []byte)
	PushRemoval(entity types.Entity)
}

// TorpedoScheduler advances every torpedo on a fixed interval and publishes
// the result. Ticks run on a single goroutine and never overlap.
type TorpedoScheduler struct {
	sector       *sector.Sector
	broadcaster  Broadcaster
	conn         net.PacketConn
	ownsConn     bool
	stats        *stats.Counters
	tickInterval time.Duration
}

// NewTorpedoSchedulerOptions contains options for creating a new TorpedoScheduler.
type NewTorpedoSchedulerOptions struct {
	Sector      *sector.Sector
	Broadcaster Broadcaster
	// Conn is the socket torpedo updates are sent from and stays open when
	// the scheduler stops. When nil, the scheduler opens its own socket on an
	// ephemeral port and closes it when Start returns.
	Conn         net.PacketConn
	Stats        *stats.Counters
	TickInterval time.Duration
}

func NewTorpedoScheduler(opts NewTorpedoSchedulerOptions) (*TorpedoScheduler, error) {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = constants.TorpedoTickInterval
	}

	conn := opts.Conn
	ownsConn := conn == nil
	if ownsConn {
		c, err := net.ListenPacket("udp4", ":0")
		if err != nil {
			return nil, fmt.Errorf("failed to open scheduler socket: %v", err)
		}
		conn = c
	}

	return &TorpedoScheduler{
		sector:       opts.Sector,
		broadcaster:  opts.Broadcaster,
		conn:         conn,
		ownsConn:     ownsConn,
		stats:        opts.Stats,
		tickInterval: tickInterval,
	}, nil
}

// Start runs the tick loop until ctx is cancelled. A tick in progress is
// completed before a socket the scheduler opened is closed.
func (ts *TorpedoScheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(ts.tickInterval)
	defer ticker.Stop()
	if ts.ownsConn {
		defer ts.conn.Close()
	}

	log.Info("Torpedo scheduler started with a %s tick", ts.tickInterval)
	for {
		select {
		case <-ctx.Done():
			log.Info("Torpedo scheduler stopped")
			return nil
		case <-ticker.C:
			start := time.Now()
			ts.tick()
			ts.stats.AddTick(time.Since(start))
		}
	}
}

// tick advances the torpedoes, pushes a removal for every casualty and
// broadcasts the position of every survivor.
func (ts *TorpedoScheduler) tick() {
	for _, casualty := range ts.sector.AdvanceTorpedoes() {
		ts.broadcaster.PushRemoval(casualty)
	}

	for _, torpedo := range ts.sector.SnapshotTorpedoes() {
		payload := messages.SerializeDatagram(messages.TorpedoDatagram(torpedo))
		ts.broadcaster.BroadcastAll(ts.conn, payload)
	}
}
