package network

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/messages"
	"github.com/cbodonnell/spacewar/pkg/sector"
	"github.com/cbodonnell/spacewar/pkg/stats"
)

// UDPReadBufferSize is large enough to tell oversized datagrams apart from
// well formed ones.
const UDPReadBufferSize = 512

// BestEffortServer receives position updates on a single receive loop.
type BestEffortServer struct {
	port        int
	sector      *sector.Sector
	broadcaster *Broadcaster
	stats       *stats.Counters

	conn *net.UDPConn
}

type NewBestEffortServerOptions struct {
	Port        int
	Sector      *sector.Sector
	Broadcaster *Broadcaster
	Stats       *stats.Counters
}

// NewBestEffortServer creates a new BestEffortServer.
func NewBestEffortServer(opts NewBestEffortServerOptions) *BestEffortServer {
	return &BestEffortServer{
		port:        opts.Port,
		sector:      opts.Sector,
		broadcaster: opts.Broadcaster,
		stats:       opts.Stats,
	}
}

// Listen binds the datagram socket.
func (s *BestEffortServer) Listen() error {
	udpAddr, err := net.ResolveUDPAddr("udp4", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to resolve UDP address: %v", err)
	}
	conn, err := net.ListenUDP("udp4", udpAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on UDP address: %v", err)
	}
	s.conn = conn
	log.Info("UDP server listening on %s", conn.LocalAddr().String())
	return nil
}

// Addr returns the bound address. Listen must have succeeded.
func (s *BestEffortServer) Addr() *net.UDPAddr {
	return s.conn.LocalAddr().(*net.UDPAddr)
}

// Serve runs the receive loop until ctx is cancelled. Cancelling closes the
// socket, which unblocks the pending read.
func (s *BestEffortServer) Serve(ctx context.Context) error {
	if s.conn == nil {
		return fmt.Errorf("UDP server is not listening")
	}

	stop := context.AfterFunc(ctx, func() {
		s.conn.Close()
	})
	defer stop()

	buf := make([]byte, UDPReadBufferSize)
	for {
		n, addr, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				log.Info("UDP server stopped")
				return nil
			}
			log.Error("Failed to read from UDP connection: %v", err)
			continue
		}
		s.stats.IncDatagramsReceived()
		s.handleDatagram(addr, buf[:n])
	}
}

// handleDatagram forwards a datagram to every other peer and applies ship
// updates to the sector. The payload is forwarded byte for byte.
func (s *BestEffortServer) handleDatagram(addr *net.UDPAddr, payload []byte) {
	d, err := messages.DeserializeDatagram(payload)
	if err != nil {
		log.Warn("Dropping datagram from %s: %v", addr, err)
		s.stats.IncDatagramsDropped()
		return
	}
	if !d.OpCode.IsBestEffort() {
		log.Warn("Dropping datagram from %s: %v: %s", addr, messages.ErrUnknownOpCode, d.OpCode)
		s.stats.IncDatagramsDropped()
		return
	}

	log.Trace("Received %s from %s", d.OpCode, d.Sender)
	s.broadcaster.SelectiveForward(s.conn, payload, d.Sender)

	switch d.OpCode {
	case messages.OpCodeJoin, messages.OpCodeUpdateShip:
		ship := types.NewSpaceCraft(d.Sender, d.X, d.Y, d.Heading)
		s.sector.UpdateOrAddSpacecraft(ship)
		for _, casualty := range s.sector.CollisionCheck(ship) {
			s.broadcaster.PushRemoval(casualty)
		}
	case messages.OpCodeUpdateTorpedo:
		// torpedo state is owned by the server; client reports are only relayed
	}
}
