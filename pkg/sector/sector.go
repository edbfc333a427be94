package sector

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/cbodonnell/spacewar/pkg/game/constants"
	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/kinematic"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

const (
	CollisionSpaceTagShip     string = "ship"
	CollisionSpaceTagTorpedo  string = "torpedo"
	CollisionSpaceTagObstacle string = "obstacle"
)

type shipBody struct {
	ship   types.SpaceCraft
	object *resolv.Object
}

type torpedoBody struct {
	torpedo types.Torpedo
	object  *resolv.Object
}

// Sector holds the shared world state: obstacles, live spacecraft and live
// torpedoes. It is safe for concurrent use.
//
// The server only checks spacecraft against spacecraft and torpedoes against
// everything. Spacecraft against obstacles is validated by the clients
// before they send an update and is trusted here.
type Sector struct {
	lock      sync.RWMutex
	maxX      int32
	maxY      int32
	radius    int32
	margin    float64
	space     *resolv.Space
	obstacles []types.Obstacle
	ships     map[types.ClientIdentity]*shipBody
	torpedoes map[uuid.UUID]*torpedoBody
}

type NewSectorOptions struct {
	MaxX   int32
	MaxY   int32
	Radius int32
}

// NewSector creates an empty sector with the given bounds.
func NewSector(opts NewSectorOptions) *Sector {
	radius := opts.Radius
	if radius <= 0 {
		radius = constants.CollisionRadius
	}
	padding := CollisionSpacePadding(radius)
	return &Sector{
		maxX:      opts.MaxX,
		maxY:      opts.MaxY,
		radius:    radius,
		margin:    float64(padding),
		space:     NewCollisionSpace(opts.MaxX, opts.MaxY, padding),
		ships:     make(map[types.ClientIdentity]*shipBody),
		torpedoes: make(map[uuid.UUID]*torpedoBody),
	}
}

// CollisionSpacePadding returns the padding around the bounds, in whole
// cells, that holds every body within one radius of the bounds. Torpedoes
// never leave the bounds, so any ship a torpedo can reach lies inside it.
func CollisionSpacePadding(radius int32) int {
	cell := constants.SpaceCellSize
	cells := (2*int(radius) + cell - 1) / cell
	if cells < 1 {
		cells = 1
	}
	return cells * cell
}

// NewCollisionSpace creates the broad phase space for a sector padded by
// padding on every side.
func NewCollisionSpace(maxX, maxY int32, padding int) *resolv.Space {
	cell := constants.SpaceCellSize
	return resolv.NewSpace(int(maxX)+2*padding, int(maxY)+2*padding, cell, cell)
}

// Bounds returns the maximum x and y of the sector.
func (s *Sector) Bounds() (int32, int32) {
	return s.maxX, s.maxY
}

// newObject creates a collision object centered on (x, y).
func (s *Sector) newObject(x, y int32, data interface{}, tag string) *resolv.Object {
	size := float64(2 * s.radius)
	obj := resolv.NewObject(0, 0, size, size, tag)
	obj.Data = data
	s.place(obj, x, y)
	return obj
}

// place moves a collision object so that it is centered on (x, y).
func (s *Sector) place(obj *resolv.Object, x, y int32) {
	obj.Position.X = float64(x-s.radius) + s.margin
	obj.Position.Y = float64(y-s.radius) + s.margin
	if obj.Space != nil {
		obj.Update()
	}
}

// nearby returns broad phase candidates for obj carrying any of tags.
func (s *Sector) nearby(obj *resolv.Object, tags ...string) []*resolv.Object {
	collision := obj.Check(0, 0, tags...)
	if collision == nil {
		return nil
	}
	return collision.Objects
}

func (s *Sector) inBounds(x, y int32) bool {
	return x >= 0 && y >= 0 && x <= s.maxX && y <= s.maxY
}

// AddObstacle adds a static obstacle. Obstacles are only added at start.
func (s *Sector) AddObstacle(o types.Obstacle) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.obstacles = append(s.obstacles, o)
	s.space.Add(s.newObject(o.X, o.Y, o, CollisionSpaceTagObstacle))
}

// PopulateObstacles adds n obstacles at random positions inside the bounds.
func (s *Sector) PopulateObstacles(n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		s.AddObstacle(types.Obstacle{
			X: rng.Int31n(s.maxX),
			Y: rng.Int31n(s.maxY),
		})
	}
}

// UpdateOrAddSpacecraft inserts the ship or replaces the one with the same
// identity.
func (s *Sector) UpdateOrAddSpacecraft(ship types.SpaceCraft) {
	s.lock.Lock()
	defer s.lock.Unlock()

	ship.Alive = true
	if body, ok := s.ships[ship.ID]; ok {
		body.ship = ship
		s.place(body.object, ship.X, ship.Y)
		return
	}

	body := &shipBody{
		ship:   ship,
		object: s.newObject(ship.X, ship.Y, ship.ID, CollisionSpaceTagShip),
	}
	s.ships[ship.ID] = body
	s.space.Add(body.object)
}

// CollisionCheck checks the stored ship with the identity of ship against
// every other ship. Ramming destroys both sides, so when anything is hit the
// result holds the checked ship followed by every ship it hit. Destroyed
// ships are removed before the lock is released, so a concurrent check on
// the same ship finds nothing.
func (s *Sector) CollisionCheck(ship types.SpaceCraft) []types.Entity {
	s.lock.Lock()
	defer s.lock.Unlock()

	body, ok := s.ships[ship.ID]
	if !ok {
		return nil
	}

	// Ships are stored wherever their clients put them, including outside
	// the collision space, so every ship is checked exactly.
	var hits []types.Entity
	for id, other := range s.ships {
		if id == ship.ID {
			continue
		}
		if !kinematic.Within(body.ship.X, body.ship.Y, other.ship.X, other.ship.Y, s.radius) {
			continue
		}
		hits = append(hits, types.Entity{ID: id, Kind: types.EntityKindShip})
	}

	if len(hits) == 0 {
		return nil
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].ID.String() < hits[j].ID.String()
	})
	for _, hit := range hits {
		s.removeSpacecraftLocked(hit.ID)
	}
	s.removeSpacecraftLocked(ship.ID)
	return append([]types.Entity{{ID: ship.ID, Kind: types.EntityKindShip}}, hits...)
}

// UpdateOrAddTorpedo inserts the torpedo or replaces the one with the same id.
func (s *Sector) UpdateOrAddTorpedo(t types.Torpedo) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if body, ok := s.torpedoes[t.ID]; ok {
		body.torpedo = t
		s.place(body.object, t.X, t.Y)
		return
	}

	body := &torpedoBody{
		torpedo: t,
		object:  s.newObject(t.X, t.Y, t.ID, CollisionSpaceTagTorpedo),
	}
	s.torpedoes[t.ID] = body
	s.space.Add(body.object)
}

// AdvanceTorpedoes runs one tick for every torpedo: its lifetime drops by
// one and it is removed at zero, otherwise it moves one step. A torpedo that
// leaves the bounds or hits an obstacle is removed. A torpedo that hits a
// spacecraft is removed together with the spacecraft.
func (s *Sector) AdvanceTorpedoes() []types.Entity {
	s.lock.Lock()
	defer s.lock.Unlock()

	var destroyed []types.Entity
	for id, body := range s.torpedoes {
		t := &body.torpedo
		removal := types.Entity{ID: t.Owner, Kind: types.EntityKindTorpedo}

		t.Lifetime--
		if t.Lifetime <= 0 {
			s.removeTorpedoLocked(id)
			destroyed = append(destroyed, removal)
			continue
		}

		t.Advance()
		if !s.inBounds(t.X, t.Y) {
			s.removeTorpedoLocked(id)
			destroyed = append(destroyed, removal)
			continue
		}
		s.place(body.object, t.X, t.Y)

		hit, casualty := s.torpedoHitLocked(t)
		if !hit {
			continue
		}
		s.removeTorpedoLocked(id)
		destroyed = append(destroyed, removal)
		if casualty != nil {
			destroyed = append(destroyed, *casualty)
		}
	}

	return destroyed
}

// torpedoHitLocked reports whether t hit something. When the hit body is a
// spacecraft, it is removed and returned.
func (s *Sector) torpedoHitLocked(t *types.Torpedo) (bool, *types.Entity) {
	body := s.torpedoes[t.ID]
	for _, obj := range s.nearby(body.object, CollisionSpaceTagObstacle, CollisionSpaceTagShip) {
		switch data := obj.Data.(type) {
		case types.Obstacle:
			if kinematic.Within(t.X, t.Y, data.X, data.Y, s.radius) {
				return true, nil
			}
		case types.ClientIdentity:
			ship, ok := s.ships[data]
			if !ok || !kinematic.Within(t.X, t.Y, ship.ship.X, ship.ship.Y, s.radius) {
				continue
			}
			s.removeSpacecraftLocked(data)
			return true, &types.Entity{ID: data, Kind: types.EntityKindShip}
		}
	}
	return false, nil
}

// RemoveSpacecraft removes the ship of identity. It reports whether a ship
// was removed.
func (s *Sector) RemoveSpacecraft(id types.ClientIdentity) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.removeSpacecraftLocked(id)
}

func (s *Sector) removeSpacecraftLocked(id types.ClientIdentity) bool {
	body, ok := s.ships[id]
	if !ok {
		return false
	}
	body.ship.Alive = false
	s.space.Remove(body.object)
	delete(s.ships, id)
	return true
}

// RemoveTorpedo removes a single torpedo.
func (s *Sector) RemoveTorpedo(id uuid.UUID) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.removeTorpedoLocked(id)
}

func (s *Sector) removeTorpedoLocked(id uuid.UUID) bool {
	body, ok := s.torpedoes[id]
	if !ok {
		return false
	}
	s.space.Remove(body.object)
	delete(s.torpedoes, id)
	return true
}
