package sector

import (
	"sort"

	"github.com/cbodonnell/spacewar/pkg/game/types"
)

// Snapshot is a read-only copy of the sector.
type Snapshot struct {
	MaxX       int32              `json:"maxX"`
	MaxY       int32              `json:"maxY"`
	Obstacles  []types.Obstacle   `json:"obstacles"`
	Spacecraft []types.SpaceCraft `json:"spacecraft"`
	Torpedoes  []types.Torpedo    `json:"torpedoes"`
}

// SnapshotObstacles returns a copy of the obstacles in insertion order.
func (s *Sector) SnapshotObstacles() []types.Obstacle {
	s.lock.RLock()
	defer s.lock.RUnlock()
	obstacles := make([]types.Obstacle, len(s.obstacles))
	copy(obstacles, s.obstacles)
	return obstacles
}

// SnapshotSpacecraft returns a copy of the live ships ordered by identity.
func (s *Sector) SnapshotSpacecraft() []types.SpaceCraft {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.snapshotSpacecraftLocked()
}

func (s *Sector) snapshotSpacecraftLocked() []types.SpaceCraft {
	ships := make([]types.SpaceCraft, 0, len(s.ships))
	for _, body := range s.ships {
		ships = append(ships, body.ship)
	}
	sort.Slice(ships, func(i, j int) bool {
		return ships[i].ID.String() < ships[j].ID.String()
	})
	return ships
}

// SnapshotTorpedoes returns a copy of the live torpedoes ordered by id.
func (s *Sector) SnapshotTorpedoes() []types.Torpedo {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.snapshotTorpedoesLocked()
}

func (s *Sector) snapshotTorpedoesLocked() []types.Torpedo {
	torpedoes := make([]types.Torpedo, 0, len(s.torpedoes))
	for _, body := range s.torpedoes {
		torpedoes = append(torpedoes, body.torpedo)
	}
	sort.Slice(torpedoes, func(i, j int) bool {
		return torpedoes[i].ID.String() < torpedoes[j].ID.String()
	})
	return torpedoes
}

// Spacecraft returns a copy of the ship of identity.
func (s *Sector) Spacecraft(id types.ClientIdentity) (types.SpaceCraft, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	body, ok := s.ships[id]
	if !ok {
		return types.SpaceCraft{}, false
	}
	return body.ship, true
}

// Snapshot returns a consistent copy of the whole sector.
func (s *Sector) Snapshot() *Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()
	obstacles := make([]types.Obstacle, len(s.obstacles))
	copy(obstacles, s.obstacles)
	return &Snapshot{
		MaxX:       s.maxX,
		MaxY:       s.maxY,
		Obstacles:  obstacles,
		Spacecraft: s.snapshotSpacecraftLocked(),
		Torpedoes:  s.snapshotTorpedoesLocked(),
	}
}
