package bot

import (
	"github.com/cbodonnell/spacewar/pkg/game/constants"
	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/kinematic"
)

// ShipSpeed is the distance a bot ship travels every frame.
const ShipSpeed float64 = 4.0

// Pilot flies a ship around the sector. The server does not check
// obstacles, so the pilot turns away from them before moving.
type Pilot struct {
	X       int32
	Y       int32
	Heading int32

	maxX      int32
	maxY      int32
	speed     float64
	obstacles []types.Obstacle
}

type NewPilotOptions struct {
	MaxX      int32
	MaxY      int32
	Speed     float64
	Obstacles []types.Obstacle
}

func NewPilot(opts NewPilotOptions) *Pilot {
	speed := opts.Speed
	if speed == 0 {
		speed = ShipSpeed
	}
	return &Pilot{
		maxX:      opts.MaxX,
		maxY:      opts.MaxY,
		speed:     speed,
		obstacles: opts.Obstacles,
	}
}

// Place puts the ship at (x, y).
func (p *Pilot) Place(x, y, heading int32) {
	p.X, p.Y, p.Heading = x, y, heading
}

// Step moves the ship one frame. When the way ahead is blocked the ship
// turns by quarter turns until it finds a free direction; if there is none
// it stays put. Step reports whether the ship moved.
func (p *Pilot) Step() bool {
	for turn := 0; turn < 4; turn++ {
		v := kinematic.Displacement(p.Heading, p.speed)
		x, y := p.X+v.X, p.Y+v.Y
		if p.Free(x, y) {
			p.X, p.Y = x, y
			return true
		}
		p.Heading = (p.Heading + 90) % 360
	}
	return false
}

// Free reports whether a ship at (x, y) is inside the sector and clear of
// every obstacle.
func (p *Pilot) Free(x, y int32) bool {
	if x < 0 || y < 0 || x > p.maxX || y > p.maxY {
		return false
	}
	for _, o := range p.obstacles {
		if kinematic.Within(x, y, o.X, o.Y, constants.CollisionRadius) {
			return false
		}
	}
	return true
}
