package messages

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/spacewar/pkg/game/types"
)

const (
	// DatagramSize is the size of every best-effort message
	DatagramSize = 24
	// RemovalSize is the size of a removal notice
	RemovalSize = 12
	// ObstacleSentinel terminates the obstacle list sent on registration
	ObstacleSentinel int32 = -1
)

// OpCode tags every message on both channels.
type OpCode int32

const (
	OpCodeRegister OpCode = iota + 1
	OpCodeLaunchTorpedo
	OpCodeExit
	OpCodeJoin
	OpCodeUpdateShip
	OpCodeUpdateTorpedo
	OpCodeRemoveShip
	OpCodeRemoveTorpedo
)

func (o OpCode) String() string {
	switch o {
	case OpCodeRegister:
		return "Register"
	case OpCodeLaunchTorpedo:
		return "LaunchTorpedo"
	case OpCodeExit:
		return "Exit"
	case OpCodeJoin:
		return "Join"
	case OpCodeUpdateShip:
		return "UpdateShip"
	case OpCodeUpdateTorpedo:
		return "UpdateTorpedo"
	case OpCodeRemoveShip:
		return "RemoveShip"
	case OpCodeRemoveTorpedo:
		return "RemoveTorpedo"
	default:
		return fmt.Sprintf("OpCode(%d)", int32(o))
	}
}

// IsBestEffort reports whether the opcode is valid on the datagram channel.
func (o OpCode) IsBestEffort() bool {
	switch o {
	case OpCodeJoin, OpCodeUpdateShip, OpCodeUpdateTorpedo:
		return true
	}
	return false
}

// IsReliable reports whether the opcode is a valid reliable request.
func (o OpCode) IsReliable() bool {
	switch o {
	case OpCodeRegister, OpCodeLaunchTorpedo, OpCodeExit:
		return true
	}
	return false
}

// RemovalOpCode returns the removal opcode for an entity kind.
func RemovalOpCode(kind types.EntityKind) OpCode {
	if kind == types.EntityKindTorpedo {
		return OpCodeRemoveTorpedo
	}
	return OpCodeRemoveShip
}

var (
	// ErrShortDatagram is returned for datagrams that are not DatagramSize bytes
	ErrShortDatagram = errors.New("datagram has the wrong size")
	// ErrUnknownOpCode is returned for opcodes that are not valid on a channel
	ErrUnknownOpCode = errors.New("unknown opcode")
)
