package network

import (
	"net"
	"time"

	"github.com/cbodonnell/spacewar/pkg/game/constants"
	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/messages"
	"github.com/cbodonnell/spacewar/pkg/stats"
)

// Broadcaster fans messages out to the peers and retained connections of a
// ConnectionRegistry.
type Broadcaster struct {
	registry     *ConnectionRegistry
	stats        *stats.Counters
	writeTimeout time.Duration
}

type NewBroadcasterOptions struct {
	Registry *ConnectionRegistry
	Stats    *stats.Counters
	// WriteTimeout bounds each removal push. Defaults to constants.RemovalWriteTimeout.
	WriteTimeout time.Duration
}

func NewBroadcaster(opts NewBroadcasterOptions) *Broadcaster {
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = constants.RemovalWriteTimeout
	}
	return &Broadcaster{
		registry:     opts.Registry,
		stats:        opts.Stats,
		writeTimeout: writeTimeout,
	}
}

// SelectiveForward sends payload unchanged to every peer except exclude.
func (b *Broadcaster) SelectiveForward(conn net.PacketConn, payload []byte, exclude types.ClientIdentity) {
	sent := 0
	for _, peer := range b.registry.Peers() {
		if peer == exclude {
			continue
		}
		if _, err := conn.WriteTo(payload, peer.UDPAddr()); err != nil {
			log.Error("Failed to forward datagram to %s: %v", peer, err)
			continue
		}
		sent++
	}
	b.stats.AddForwards(sent)
}

// BroadcastAll sends payload to every peer.
func (b *Broadcaster) BroadcastAll(conn net.PacketConn, payload []byte) {
	sent := 0
	for _, peer := range b.registry.Peers() {
		if _, err := conn.WriteTo(payload, peer.UDPAddr()); err != nil {
			log.Error("Failed to broadcast datagram to %s: %v", peer, err)
			continue
		}
		sent++
	}
	b.stats.AddForwards(sent)
}

// PushRemoval sends a removal notice for entity on every retained connection.
// A connection that fails the write is evicted and closed right away and is
// never retried.
func (b *Broadcaster) PushRemoval(entity types.Entity) {
	b.stats.IncRemovals()
	notice := messages.SerializeRemoval(entity)
	for _, record := range b.registry.Records() {
		if err := b.push(record.Conn, notice); err != nil {
			log.Warn("Evicting connection of %s: %v", record.Identity, err)
			b.registry.RemoveRecord(record.ID)
			record.Conn.Close()
			b.stats.IncEvictions()
		}
	}
	log.Debug("Pushed removal of %s", entity)
}

func (b *Broadcaster) push(conn net.Conn, notice []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(b.writeTimeout)); err != nil {
		return err
	}
	// one Write per notice so concurrent pushes never interleave
	if _, err := conn.Write(notice); err != nil {
		return err
	}
	return conn.SetWriteDeadline(time.Time{})
}
