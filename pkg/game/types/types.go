package types

import (
	"fmt"
	"net"
)

// ClientIdentity identifies a player by the IPv4 address and UDP port of its
// datagram socket. It is comparable and is used as a map key.
type ClientIdentity struct {
	IP   [4]byte
	Port int32
}

// NewClientIdentity builds a ClientIdentity from an address and port.
// Non IPv4 addresses map to the zero address.
func NewClientIdentity(ip net.IP, port int) ClientIdentity {
	id := ClientIdentity{Port: int32(port)}
	if v4 := ip.To4(); v4 != nil {
		copy(id.IP[:], v4)
	}
	return id
}

// UDPAddr returns the datagram address of the client.
func (c ClientIdentity) UDPAddr() *net.UDPAddr {
	return &net.UDPAddr{
		IP:   net.IPv4(c.IP[0], c.IP[1], c.IP[2], c.IP[3]),
		Port: int(c.Port),
	}
}

func (c ClientIdentity) String() string {
	return fmt.Sprintf("%d.%d.%d.%d:%d", c.IP[0], c.IP[1], c.IP[2], c.IP[3], c.Port)
}

// MarshalText renders the identity as ip:port for JSON snapshots.
func (c ClientIdentity) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses an identity rendered by MarshalText.
func (c *ClientIdentity) UnmarshalText(text []byte) error {
	addr, err := net.ResolveUDPAddr("udp4", string(text))
	if err != nil {
		return fmt.Errorf("failed to parse client identity %q: %v", text, err)
	}
	if addr.IP.To4() == nil {
		return fmt.Errorf("client identity %q is not an IPv4 address", text)
	}
	*c = NewClientIdentity(addr.IP, addr.Port)
	return nil
}

// EntityKind tells spacecraft and torpedoes apart in removal notices.
type EntityKind uint8

const (
	EntityKindShip EntityKind = iota
	EntityKindTorpedo
)

func (k EntityKind) String() string {
	switch k {
	case EntityKindShip:
		return "ship"
	case EntityKindTorpedo:
		return "torpedo"
	default:
		return "unknown"
	}
}

// Entity is something that was removed from the sector.
type Entity struct {
	ID   ClientIdentity
	Kind EntityKind
}

func (e Entity) String() string {
	return fmt.Sprintf("%s %s", e.Kind, e.ID)
}
