package types

import (
	"github.com/cbodonnell/spacewar/pkg/kinematic"
	"github.com/google/uuid"
)

// SpaceCraft is a player's ship as last reported by its client.
type SpaceCraft struct {
	ID      ClientIdentity `json:"id"`
	X       int32          `json:"x"`
	Y       int32          `json:"y"`
	Heading int32          `json:"heading"`
	Alive   bool           `json:"alive"`
}

// NewSpaceCraft creates a live ship.
func NewSpaceCraft(id ClientIdentity, x, y, heading int32) SpaceCraft {
	return SpaceCraft{
		ID:      id,
		X:       x,
		Y:       y,
		Heading: heading,
		Alive:   true,
	}
}

// Torpedo is a projectile advanced by the server every tick.
// Owner is only carried on the wire; it grants no immunity.
type Torpedo struct {
	ID       uuid.UUID        `json:"id"`
	Owner    ClientIdentity   `json:"owner"`
	X        int32            `json:"x"`
	Y        int32            `json:"y"`
	Heading  int32            `json:"heading"`
	Velocity kinematic.Vector `json:"velocity"`
	Lifetime int32            `json:"lifetime"`
}

// NewTorpedo creates a torpedo launched from (x, y) along heading.
// The per-tick displacement is fixed at launch.
func NewTorpedo(owner ClientIdentity, x, y, heading int32, speed float64, lifetime int32) Torpedo {
	return Torpedo{
		ID:       uuid.New(),
		Owner:    owner,
		X:        x,
		Y:        y,
		Heading:  heading,
		Velocity: kinematic.Displacement(heading, speed),
		Lifetime: lifetime,
	}
}

// Advance moves the torpedo one tick.
func (t *Torpedo) Advance() {
	t.X += t.Velocity.X
	t.Y += t.Velocity.Y
}

// Obstacle is a static body placed when the server starts.
type Obstacle struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}
