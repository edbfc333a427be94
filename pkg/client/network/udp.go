package network

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/messages"
	"github.com/cbodonnell/spacewar/pkg/queue"
)

// UDPClient exchanges position updates with the server.
type UDPClient struct {
	serverAddr string
	server     *net.UDPAddr
	conn       *net.UDPConn
	identity   types.ClientIdentity
	closeOnce  sync.Once
}

// NewUDPClient creates a new UDP client.
func NewUDPClient(serverAddr string) *UDPClient {
	return &UDPClient{
		serverAddr: serverAddr,
	}
}

// Open binds the local datagram socket. Forwarded updates arrive from the
// server on this socket, so it is not connected.
func (c *UDPClient) Open() error {
	server, err := net.ResolveUDPAddr("udp4", c.serverAddr)
	if err != nil {
		return fmt.Errorf("failed to resolve UDP address: %v", err)
	}
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{})
	if err != nil {
		return fmt.Errorf("failed to listen on UDP: %v", err)
	}
	c.server = server
	c.conn = conn
	return nil
}

// LocalPort returns the port of the datagram socket.
func (c *UDPClient) LocalPort() int {
	return c.conn.LocalAddr().(*net.UDPAddr).Port
}

// SetIdentity sets the sender written into every datagram.
func (c *UDPClient) SetIdentity(id types.ClientIdentity) {
	c.identity = id
}

func (c *UDPClient) SendJoin(x, y, heading int32) error {
	return c.send(messages.OpCodeJoin, x, y, heading)
}

func (c *UDPClient) SendUpdateShip(x, y, heading int32) error {
	return c.send(messages.OpCodeUpdateShip, x, y, heading)
}

func (c *UDPClient) send(op messages.OpCode, x, y, heading int32) error {
	payload := messages.SerializeDatagram(&messages.Datagram{
		Sender:  c.identity,
		OpCode:  op,
		X:       x,
		Y:       y,
		Heading: heading,
	})
	if _, err := c.conn.WriteToUDP(payload, c.server); err != nil {
		return fmt.Errorf("failed to write %s datagram: %v", op, err)
	}
	return nil
}

// ReadLoop puts every datagram received on events until the socket is
// closed. Malformed datagrams are dropped.
func (c *UDPClient) ReadLoop(events queue.Queue) {
	buf := make([]byte, messages.DatagramSize+1)
	for {
		n, _, err := c.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Error("Failed to read from UDP connection: %v", err)
			continue
		}

		d, err := messages.DeserializeDatagram(buf[:n])
		if err != nil {
			log.Warn("Dropping datagram: %v", err)
			continue
		}
		log.Trace("Received %s from %s", d.OpCode, d.Sender)
		if err := events.Enqueue(d); err != nil {
			log.Error("Failed to enqueue datagram: %v", err)
		}
	}
}

// Close closes the datagram socket.
func (c *UDPClient) Close() {
	c.closeOnce.Do(func() {
		if c.conn != nil {
			c.conn.Close()
		}
	})
}
