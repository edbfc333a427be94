package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/messages"
	"github.com/cbodonnell/spacewar/pkg/queue"
)

// TCPClient sends reliable requests. The registration connection is kept
// for removal notices; every other request uses a connection of its own.
type TCPClient struct {
	serverAddr string
	dialer     net.Dialer
	conn       net.Conn
	closeOnce  sync.Once
}

// NewTCPClient creates a new TCP client.
func NewTCPClient(serverAddr string) *TCPClient {
	return &TCPClient{
		serverAddr: serverAddr,
	}
}

// Register registers the datagram port and returns the local address the
// server sees together with the obstacles of the sector.
func (c *TCPClient) Register(ctx context.Context, port int32) (net.IP, []types.Obstacle, error) {
	conn, err := c.dialer.DialContext(ctx, "tcp4", c.serverAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %v", err)
	}

	req := &messages.Request{OpCode: messages.OpCodeRegister, Port: port}
	if _, err := conn.Write(messages.SerializeRequest(req)); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to write register request: %v", err)
	}

	obstacles, err := messages.ReadObstacles(conn)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to read obstacles: %v", err)
	}

	c.conn = conn
	return conn.LocalAddr().(*net.TCPAddr).IP, obstacles, nil
}

// LaunchTorpedo sends a launch request on a new connection.
func (c *TCPClient) LaunchTorpedo(ctx context.Context, port, x, y, heading int32) error {
	return c.send(ctx, &messages.Request{
		OpCode:  messages.OpCodeLaunchTorpedo,
		Port:    port,
		X:       x,
		Y:       y,
		Heading: heading,
	})
}

// Exit sends an exit request on a new connection.
func (c *TCPClient) Exit(ctx context.Context, port int32) error {
	return c.send(ctx, &messages.Request{OpCode: messages.OpCodeExit, Port: port})
}

func (c *TCPClient) send(ctx context.Context, req *messages.Request) error {
	conn, err := c.dialer.DialContext(ctx, "tcp4", c.serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write(messages.SerializeRequest(req)); err != nil {
		return fmt.Errorf("failed to write %s request: %v", req.OpCode, err)
	}
	return nil
}

// ReadRemovals puts every removal notice received on the registration
// connection on events until the connection is closed.
func (c *TCPClient) ReadRemovals(events queue.Queue) {
	if c.conn == nil {
		return
	}
	for {
		removal, err := messages.ReadRemoval(c.conn)
		if err != nil {
			if errors.Is(err, messages.ErrUnknownOpCode) {
				log.Warn("Ignoring notice from server: %v", err)
				continue
			}
			log.Debug("Stopped reading removals: %v", err)
			return
		}
		log.Debug("Received removal of %s", removal)
		if err := events.Enqueue(removal); err != nil {
			log.Error("Failed to enqueue removal: %v", err)
		}
	}
}

// Close closes the registration connection.
func (c *TCPClient) Close() {
	c.closeOnce.Do(func() {
		if c.conn != nil {
			c.conn.Close()
		}
	})
}
