package network

import (
	"context"
	"fmt"

	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/sector"
	"github.com/cbodonnell/spacewar/pkg/stats"
	"golang.org/x/sync/errgroup"
)

// NetworkManager wires both channels of a server to one sector. The reliable
// and the best-effort channel share a port.
type NetworkManager struct {
	Registry         *ConnectionRegistry
	Broadcaster      *Broadcaster
	ReliableServer   *ReliableServer
	BestEffortServer *BestEffortServer

	port   int
	sector *sector.Sector
	stats  *stats.Counters
}

type NewNetworkManagerOptions struct {
	Port   int
	Sector *sector.Sector
	Stats  *stats.Counters
}

func NewNetworkManager(opts NewNetworkManagerOptions) *NetworkManager {
	registry := NewConnectionRegistry()
	broadcaster := NewBroadcaster(NewBroadcasterOptions{
		Registry: registry,
		Stats:    opts.Stats,
	})
	return &NetworkManager{
		Registry:    registry,
		Broadcaster: broadcaster,
		port:        opts.Port,
		sector:      opts.Sector,
		stats:       opts.Stats,
	}
}

// Listen binds the TCP listener and then the UDP socket on the same port.
// With port 0 the UDP socket takes the port picked for TCP.
func (n *NetworkManager) Listen() error {
	n.ReliableServer = NewReliableServer(NewReliableServerOptions{
		Port:        n.port,
		Sector:      n.sector,
		Registry:    n.Registry,
		Broadcaster: n.Broadcaster,
		Stats:       n.stats,
	})
	if err := n.ReliableServer.Listen(); err != nil {
		return err
	}

	n.BestEffortServer = NewBestEffortServer(NewBestEffortServerOptions{
		Port:        n.ReliableServer.Addr().Port,
		Sector:      n.sector,
		Broadcaster: n.Broadcaster,
		Stats:       n.stats,
	})
	if err := n.BestEffortServer.Listen(); err != nil {
		n.ReliableServer.listener.Close()
		return err
	}

	return nil
}

// Port returns the shared port. Listen must have succeeded.
func (n *NetworkManager) Port() int {
	return n.ReliableServer.Addr().Port
}

// Serve runs both channels until ctx is cancelled, then closes every
// retained connection.
func (n *NetworkManager) Serve(ctx context.Context) error {
	if n.ReliableServer == nil || n.BestEffortServer == nil {
		return fmt.Errorf("network manager is not listening")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return n.ReliableServer.Serve(gctx)
	})
	g.Go(func() error {
		return n.BestEffortServer.Serve(gctx)
	})
	err := g.Wait()

	n.Registry.CloseAll()
	log.Info("Network manager stopped")
	return err
}
