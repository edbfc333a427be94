package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/cbodonnell/spacewar/pkg/game/constants"
	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/messages"
	"github.com/cbodonnell/spacewar/pkg/sector"
	"github.com/cbodonnell/spacewar/pkg/stats"
)

// ReliableServer accepts reliable requests. Every accepted connection is
// served by its own worker that reads exactly one request.
type ReliableServer struct {
	port        int
	sector      *sector.Sector
	registry    *ConnectionRegistry
	broadcaster *Broadcaster
	stats       *stats.Counters
	readTimeout time.Duration

	listener *net.TCPListener
	workers  sync.WaitGroup
	// connections whose worker has not finished yet
	pending     map[net.Conn]struct{}
	pendingLock sync.Mutex
}

type NewReliableServerOptions struct {
	Port        int
	Sector      *sector.Sector
	Registry    *ConnectionRegistry
	Broadcaster *Broadcaster
	Stats       *stats.Counters
	// ReadTimeout bounds the read of a request. Defaults to constants.ReliableReadTimeout.
	ReadTimeout time.Duration
}

// NewReliableServer creates a new ReliableServer.
func NewReliableServer(opts NewReliableServerOptions) *ReliableServer {
	readTimeout := opts.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = constants.ReliableReadTimeout
	}
	return &ReliableServer{
		port:        opts.Port,
		sector:      opts.Sector,
		registry:    opts.Registry,
		broadcaster: opts.Broadcaster,
		stats:       opts.Stats,
		readTimeout: readTimeout,
		pending:     make(map[net.Conn]struct{}),
	}
}

// Listen binds the listener.
func (s *ReliableServer) Listen() error {
	tcpAddr, err := net.ResolveTCPAddr("tcp4", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to resolve TCP address: %v", err)
	}
	listener, err := net.ListenTCP("tcp4", tcpAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on TCP address: %v", err)
	}
	s.listener = listener
	log.Info("TCP server listening on %s", listener.Addr().String())
	return nil
}

// Addr returns the bound address. Listen must have succeeded.
func (s *ReliableServer) Addr() *net.TCPAddr {
	return s.listener.Addr().(*net.TCPAddr)
}

// Serve runs the accept loop until ctx is cancelled. It returns once the
// listener is closed and every worker has finished.
func (s *ReliableServer) Serve(ctx context.Context) error {
	if s.listener == nil {
		return fmt.Errorf("TCP server is not listening")
	}

	stop := context.AfterFunc(ctx, func() {
		s.listener.Close()
		s.closePending()
	})
	defer stop()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			log.Error("Failed to accept TCP connection: %v", err)
			continue
		}

		if !s.admit(ctx, conn) {
			continue
		}
		s.workers.Add(1)
		go func() {
			defer s.workers.Done()
			s.handleConnection(conn)
		}()
	}

	s.workers.Wait()
	log.Info("TCP server stopped")
	return nil
}

func (s *ReliableServer) trackPending(conn net.Conn) {
	s.pendingLock.Lock()
	defer s.pendingLock.Unlock()
	s.pending[conn] = struct{}{}
}

// admit tracks conn for shutdown. A connection accepted while shutdown is
// under way may have missed closePending, so it is closed here instead.
func (s *ReliableServer) admit(ctx context.Context, conn net.Conn) bool {
	s.trackPending(conn)
	if ctx.Err() != nil {
		s.untrackPending(conn)
		conn.Close()
		return false
	}
	return true
}

func (s *ReliableServer) untrackPending(conn net.Conn) {
	s.pendingLock.Lock()
	defer s.pendingLock.Unlock()
	delete(s.pending, conn)
}

func (s *ReliableServer) closePending() {
	s.pendingLock.Lock()
	defer s.pendingLock.Unlock()
	for conn := range s.pending {
		conn.Close()
	}
}

// handleConnection reads one request from conn and dispatches it. The
// connection is closed unless it was retained by a registration.
func (s *ReliableServer) handleConnection(conn net.Conn) {
	defer s.untrackPending(conn)

	retained := false
	defer func() {
		if !retained {
			conn.Close()
		}
	}()

	remote, ok := conn.RemoteAddr().(*net.TCPAddr)
	if !ok || remote.IP.To4() == nil {
		log.Warn("Rejecting non IPv4 connection from %s", conn.RemoteAddr())
		return
	}

	if err := conn.SetReadDeadline(time.Now().Add(s.readTimeout)); err != nil {
		log.Error("Failed to set read deadline: %v", err)
		return
	}
	req, err := messages.ReadRequest(conn)
	if err != nil {
		if errors.Is(err, messages.ErrUnknownOpCode) {
			log.Warn("Discarding request from %s: %v", remote, err)
			return
		}
		if errors.Is(err, io.EOF) {
			log.Debug("Connection from %s closed before sending a request", remote)
			return
		}
		log.Error("Failed to read request from %s: %v", remote, err)
		return
	}
	s.stats.IncRequests()

	id := types.NewClientIdentity(remote.IP, int(req.Port))
	log.Trace("Received %s from %s", req.OpCode, id)

	switch req.OpCode {
	case messages.OpCodeRegister:
		retained = s.handleRegister(conn, id)
	case messages.OpCodeLaunchTorpedo:
		s.handleLaunchTorpedo(id, req)
	case messages.OpCodeExit:
		s.handleExit(id)
	}
}

// handleRegister adds the peer, replies with the obstacles and retains the
// connection for removal notices. It reports whether conn was retained. A
// failed reply leaves the peer registered.
func (s *ReliableServer) handleRegister(conn net.Conn, id types.ClientIdentity) bool {
	s.registry.AddPeer(id)

	if err := conn.SetDeadline(time.Time{}); err != nil {
		log.Warn("Failed to clear deadline for %s: %v", id, err)
	}
	reply := messages.SerializeObstacles(s.sector.SnapshotObstacles())
	if _, err := conn.Write(reply); err != nil {
		log.Warn("Partial registration of %s, failed to send obstacles: %v", id, err)
		return false
	}

	// a removal push must not land before the obstacle list
	if _, err := s.registry.AddRecord(id, conn); err != nil {
		log.Error("Failed to retain connection of %s: %v", id, err)
		return false
	}

	log.Info("Registered %s", id)
	return true
}

func (s *ReliableServer) handleLaunchTorpedo(id types.ClientIdentity, req *messages.Request) {
	torpedo := types.NewTorpedo(id, req.X, req.Y, req.Heading, constants.TorpedoSpeed, constants.TorpedoLifetime)
	s.sector.UpdateOrAddTorpedo(torpedo)
	log.Debug("Launched torpedo %s for %s", torpedo.ID, id)
}

// handleExit forgets the peer and its ship and tells everyone. The retained
// connection of the peer stays until a push to it fails.
func (s *ReliableServer) handleExit(id types.ClientIdentity) {
	s.registry.RemovePeer(id)
	s.sector.RemoveSpacecraft(id)
	s.broadcaster.PushRemoval(types.Entity{ID: id, Kind: types.EntityKindShip})
	log.Info("%s exited", id)
}
