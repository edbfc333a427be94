package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/queue"
)

const (
	DefaultServerHostname = "localhost"
	DefaultServerPort     = 5656
)

// Client is the network half of a player. It registers over TCP, keeps
// the registration connection open for removal notices and exchanges
// position updates over UDP. Everything received is put on Events as
// *messages.Datagram or types.Entity values.
type Client struct {
	serverAddr string
	events     queue.Queue

	tcpClient *TCPClient
	udpClient *UDPClient
	identity  types.ClientIdentity
	obstacles []types.Obstacle

	readers sync.WaitGroup
}

type NewClientOptions struct {
	// ServerAddr is host:port of the server; both channels use the same port.
	ServerAddr string
	Events     queue.Queue
}

// NewClient creates a new client.
func NewClient(opts NewClientOptions) *Client {
	serverAddr := opts.ServerAddr
	if serverAddr == "" {
		serverAddr = fmt.Sprintf("%s:%d", DefaultServerHostname, DefaultServerPort)
	}
	events := opts.Events
	if events == nil {
		events = queue.NewInMemoryQueue(queue.QueueBufferSize)
	}
	return &Client{
		serverAddr: serverAddr,
		events:     events,
		tcpClient:  NewTCPClient(serverAddr),
		udpClient:  NewUDPClient(serverAddr),
	}
}

// Connect opens the datagram socket and registers it with the server.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.udpClient.Open(); err != nil {
		return fmt.Errorf("failed to open UDP socket: %v", err)
	}

	localIP, obstacles, err := c.tcpClient.Register(ctx, int32(c.udpClient.LocalPort()))
	if err != nil {
		c.udpClient.Close()
		return fmt.Errorf("failed to register: %v", err)
	}

	c.identity = types.NewClientIdentity(localIP, c.udpClient.LocalPort())
	c.udpClient.SetIdentity(c.identity)
	c.obstacles = obstacles
	log.Info("Registered as %s, received %d obstacles", c.identity, len(obstacles))
	return nil
}

// Identity returns the identity the server knows this client by.
func (c *Client) Identity() types.ClientIdentity {
	return c.identity
}

// Obstacles returns the obstacles received on registration.
func (c *Client) Obstacles() []types.Obstacle {
	return c.obstacles
}

// Events returns the queue of received updates and removals.
func (c *Client) Events() queue.Queue {
	return c.events
}

// Start reads from both channels until ctx is cancelled or Close is called.
func (c *Client) Start(ctx context.Context) {
	c.readers.Add(2)
	go func() {
		defer c.readers.Done()
		c.udpClient.ReadLoop(c.events)
	}()
	go func() {
		defer c.readers.Done()
		c.tcpClient.ReadRemovals(c.events)
	}()

	go func() {
		<-ctx.Done()
		c.Close()
	}()
}

// Join announces the ship to the other players.
func (c *Client) Join(x, y, heading int32) error {
	return c.udpClient.SendJoin(x, y, heading)
}

// UpdateShip reports the ship position. Callers check obstacles first; the
// server does not.
func (c *Client) UpdateShip(x, y, heading int32) error {
	return c.udpClient.SendUpdateShip(x, y, heading)
}

// LaunchTorpedo asks the server to launch a torpedo from (x, y).
func (c *Client) LaunchTorpedo(ctx context.Context, x, y, heading int32) error {
	return c.tcpClient.LaunchTorpedo(ctx, c.identity.Port, x, y, heading)
}

// Exit leaves the game. The client should be closed afterwards.
func (c *Client) Exit(ctx context.Context) error {
	return c.tcpClient.Exit(ctx, c.identity.Port)
}

// Close closes both channels and waits for the readers to return.
func (c *Client) Close() {
	c.udpClient.Close()
	c.tcpClient.Close()
	c.readers.Wait()
}
