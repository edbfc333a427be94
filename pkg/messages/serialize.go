package messages

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cbodonnell/spacewar/pkg/game/types"
)

// Every integer on both channels is a big-endian int32.
var byteOrder = binary.BigEndian

// Datagram is a best-effort update: a ship position from a client or a
// torpedo position from the server.
type Datagram struct {
	Sender  types.ClientIdentity
	OpCode  OpCode
	X       int32
	Y       int32
	Heading int32
}

type datagramWire struct {
	IP      [4]byte
	Port    int32
	OpCode  int32
	X       int32
	Y       int32
	Heading int32
}

// SerializeDatagram encodes a datagram into its 24 byte wire form.
func SerializeDatagram(d *Datagram) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, DatagramSize))
	wire := datagramWire{
		IP:      d.Sender.IP,
		Port:    d.Sender.Port,
		OpCode:  int32(d.OpCode),
		X:       d.X,
		Y:       d.Y,
		Heading: d.Heading,
	}
	// writes into a bytes.Buffer cannot fail
	_ = binary.Write(buf, byteOrder, &wire)
	return buf.Bytes()
}

// DeserializeDatagram decodes a 24 byte datagram. The opcode is not
// validated; callers decide what a channel accepts.
func DeserializeDatagram(b []byte) (*Datagram, error) {
	if len(b) != DatagramSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrShortDatagram, len(b))
	}
	wire := datagramWire{}
	if err := binary.Read(bytes.NewReader(b), byteOrder, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode datagram: %v", err)
	}
	return &Datagram{
		Sender:  types.ClientIdentity{IP: wire.IP, Port: wire.Port},
		OpCode:  OpCode(wire.OpCode),
		X:       wire.X,
		Y:       wire.Y,
		Heading: wire.Heading,
	}, nil
}

// TorpedoDatagram builds the update the server broadcasts for a torpedo.
func TorpedoDatagram(t types.Torpedo) *Datagram {
	return &Datagram{
		Sender:  t.Owner,
		OpCode:  OpCodeUpdateTorpedo,
		X:       t.X,
		Y:       t.Y,
		Heading: t.Heading,
	}
}

// Request is a reliable request. X, Y and Heading are only set for
// OpCodeLaunchTorpedo.
type Request struct {
	OpCode  OpCode
	Port    int32
	X       int32
	Y       int32
	Heading int32
}

// ReadRequest reads one request from r. A request with an opcode that is not
// a reliable request is returned together with ErrUnknownOpCode.
func ReadRequest(r io.Reader) (*Request, error) {
	header := [2]int32{}
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return nil, fmt.Errorf("failed to read request header: %w", err)
	}
	req := &Request{
		OpCode: OpCode(header[0]),
		Port:   header[1],
	}

	switch req.OpCode {
	case OpCodeRegister, OpCodeExit:
		return req, nil
	case OpCodeLaunchTorpedo:
		body := [3]int32{}
		if err := binary.Read(r, byteOrder, &body); err != nil {
			return nil, fmt.Errorf("failed to read launch request: %w", err)
		}
		req.X, req.Y, req.Heading = body[0], body[1], body[2]
		return req, nil
	default:
		return req, fmt.Errorf("%w: %s", ErrUnknownOpCode, req.OpCode)
	}
}

// SerializeRequest encodes a request the way a client sends it.
func SerializeRequest(req *Request) []byte {
	buf := &bytes.Buffer{}
	fields := []int32{int32(req.OpCode), req.Port}
	if req.OpCode == OpCodeLaunchTorpedo {
		fields = append(fields, req.X, req.Y, req.Heading)
	}
	_ = binary.Write(buf, byteOrder, fields)
	return buf.Bytes()
}

// SerializeObstacles encodes the registration reply: one (x, y) pair per
// obstacle followed by the sentinel pair.
func SerializeObstacles(obstacles []types.Obstacle) []byte {
	fields := make([]int32, 0, 2*len(obstacles)+2)
	for _, o := range obstacles {
		fields = append(fields, o.X, o.Y)
	}
	fields = append(fields, ObstacleSentinel, ObstacleSentinel)

	buf := bytes.NewBuffer(make([]byte, 0, 4*len(fields)))
	_ = binary.Write(buf, byteOrder, fields)
	return buf.Bytes()
}

// ReadObstacles reads a registration reply up to and including the sentinel.
func ReadObstacles(r io.Reader) ([]types.Obstacle, error) {
	var obstacles []types.Obstacle
	for {
		pair := [2]int32{}
		if err := binary.Read(r, byteOrder, &pair); err != nil {
			return nil, fmt.Errorf("failed to read obstacle: %w", err)
		}
		if pair[0] == ObstacleSentinel {
			return obstacles, nil
		}
		obstacles = append(obstacles, types.Obstacle{X: pair[0], Y: pair[1]})
	}
}

type removalWire struct {
	IP     [4]byte
	Port   int32
	OpCode int32
}

// SerializeRemoval encodes a removal notice for an entity.
func SerializeRemoval(e types.Entity) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, RemovalSize))
	_ = binary.Write(buf, byteOrder, &removalWire{
		IP:     e.ID.IP,
		Port:   e.ID.Port,
		OpCode: int32(RemovalOpCode(e.Kind)),
	})
	return buf.Bytes()
}

// ReadRemoval reads one removal notice from r.
func ReadRemoval(r io.Reader) (types.Entity, error) {
	wire := removalWire{}
	if err := binary.Read(r, byteOrder, &wire); err != nil {
		return types.Entity{}, fmt.Errorf("failed to read removal: %w", err)
	}
	e := types.Entity{ID: types.ClientIdentity{IP: wire.IP, Port: wire.Port}}
	switch OpCode(wire.OpCode) {
	case OpCodeRemoveShip:
		e.Kind = types.EntityKindShip
	case OpCodeRemoveTorpedo:
		e.Kind = types.EntityKindTorpedo
	default:
		return types.Entity{}, fmt.Errorf("%w: %s", ErrUnknownOpCode, OpCode(wire.OpCode))
	}
	return e, nil
}
