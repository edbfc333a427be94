package sector

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity(port int32) types.ClientIdentity {
	return types.ClientIdentity{IP: [4]byte{127, 0, 0, 1}, Port: port}
}

func newTestSector() *Sector {
	return NewSector(NewSectorOptions{MaxX: 1024, MaxY: 768, Radius: 10})
}

func TestSector_UpdateOrAddSpacecraft(t *testing.T) {
	s := newTestSector()
	id := testIdentity(4000)

	s.UpdateOrAddSpacecraft(types.NewSpaceCraft(id, 10, 20, 90))
	s.UpdateOrAddSpacecraft(types.NewSpaceCraft(id, 30, 40, 180))

	ships := s.SnapshotSpacecraft()
	require.Len(t, ships, 1)
	assert.Equal(t, id, ships[0].ID)
	assert.Equal(t, int32(30), ships[0].X)
	assert.Equal(t, int32(40), ships[0].Y)
	assert.Equal(t, int32(180), ships[0].Heading)
	assert.True(t, ships[0].Alive)
}

func TestSector_CollisionCheck(t *testing.T) {
	a := testIdentity(4000)
	b := testIdentity(4001)
	c := testIdentity(4002)

	tests := []struct {
		name      string
		ships     []types.SpaceCraft
		check     types.ClientIdentity
		want      []types.Entity
		survivors int
	}{
		{
			name: "far apart",
			ships: []types.SpaceCraft{
				types.NewSpaceCraft(a, 100, 100, 0),
				types.NewSpaceCraft(b, 200, 200, 0),
			},
			check:     b,
			want:      nil,
			survivors: 2,
		},
		{
			name: "ramming destroys both",
			ships: []types.SpaceCraft{
				types.NewSpaceCraft(a, 100, 100, 0),
				types.NewSpaceCraft(b, 105, 100, 0),
			},
			check: b,
			want: []types.Entity{
				{ID: b, Kind: types.EntityKindShip},
				{ID: a, Kind: types.EntityKindShip},
			},
			survivors: 0,
		},
		{
			name: "only ships in range are destroyed",
			ships: []types.SpaceCraft{
				types.NewSpaceCraft(a, 100, 100, 0),
				types.NewSpaceCraft(b, 100, 108, 0),
				types.NewSpaceCraft(c, 100, 130, 0),
			},
			check: a,
			want: []types.Entity{
				{ID: a, Kind: types.EntityKindShip},
				{ID: b, Kind: types.EntityKindShip},
			},
			survivors: 1,
		},
		{
			name: "ships beyond the maximum bounds collide",
			ships: []types.SpaceCraft{
				types.NewSpaceCraft(a, 2000, 300, 0),
				types.NewSpaceCraft(b, 2005, 300, 0),
			},
			check: b,
			want: []types.Entity{
				{ID: b, Kind: types.EntityKindShip},
				{ID: a, Kind: types.EntityKindShip},
			},
			survivors: 0,
		},
		{
			name: "ships at negative coordinates collide",
			ships: []types.SpaceCraft{
				types.NewSpaceCraft(a, -200, -200, 0),
				types.NewSpaceCraft(b, -195, -200, 0),
			},
			check: a,
			want: []types.Entity{
				{ID: a, Kind: types.EntityKindShip},
				{ID: b, Kind: types.EntityKindShip},
			},
			survivors: 0,
		},
		{
			name: "ships just past the edge collide",
			ships: []types.SpaceCraft{
				types.NewSpaceCraft(a, 1070, 300, 0),
				types.NewSpaceCraft(b, 1075, 300, 0),
				types.NewSpaceCraft(c, 1020, 300, 0),
			},
			check: a,
			want: []types.Entity{
				{ID: a, Kind: types.EntityKindShip},
				{ID: b, Kind: types.EntityKindShip},
			},
			survivors: 1,
		},
		{
			name: "ship inside hits ship outside",
			ships: []types.SpaceCraft{
				types.NewSpaceCraft(a, 1020, 300, 0),
				types.NewSpaceCraft(b, 1028, 300, 0),
			},
			check: a,
			want: []types.Entity{
				{ID: a, Kind: types.EntityKindShip},
				{ID: b, Kind: types.EntityKindShip},
			},
			survivors: 0,
		},
		{
			name: "exactly at the radius is not a collision",
			ships: []types.SpaceCraft{
				types.NewSpaceCraft(a, 100, 100, 0),
				types.NewSpaceCraft(b, 110, 100, 0),
			},
			check:     a,
			want:      nil,
			survivors: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSector()
			for _, ship := range tt.ships {
				s.UpdateOrAddSpacecraft(ship)
			}
			got := s.CollisionCheck(types.SpaceCraft{ID: tt.check})
			assert.Equal(t, tt.want, got)
			assert.Len(t, s.SnapshotSpacecraft(), tt.survivors)
		})
	}
}

func TestSector_CollisionCheck_symmetric(t *testing.T) {
	a := testIdentity(4000)
	b := testIdentity(4001)

	for _, checked := range []types.ClientIdentity{a, b} {
		s := newTestSector()
		s.UpdateOrAddSpacecraft(types.NewSpaceCraft(a, 300, 300, 0))
		s.UpdateOrAddSpacecraft(types.NewSpaceCraft(b, 303, 304, 0))

		got := s.CollisionCheck(types.SpaceCraft{ID: checked})
		assert.ElementsMatch(t, []types.Entity{
			{ID: a, Kind: types.EntityKindShip},
			{ID: b, Kind: types.EntityKindShip},
		}, got, fmt.Sprintf("checking %s", checked))
	}
}

func TestSector_CollisionCheck_secondCheckFindsNothing(t *testing.T) {
	s := newTestSector()
	a := testIdentity(4000)
	b := testIdentity(4001)
	s.UpdateOrAddSpacecraft(types.NewSpaceCraft(a, 50, 50, 0))
	s.UpdateOrAddSpacecraft(types.NewSpaceCraft(b, 52, 50, 0))

	first := s.CollisionCheck(types.SpaceCraft{ID: a})
	second := s.CollisionCheck(types.SpaceCraft{ID: b})
	assert.Len(t, first, 2)
	assert.Nil(t, second, "a destruction is only reported once")
}

func TestSector_AdvanceTorpedoes_displacement(t *testing.T) {
	s := newTestSector()
	owner := testIdentity(4000)
	torpedo := types.NewTorpedo(owner, 100, 100, 90, 12, 5)
	s.UpdateOrAddTorpedo(torpedo)

	for n := 1; n < 5; n++ {
		destroyed := s.AdvanceTorpedoes()
		assert.Empty(t, destroyed)

		torpedoes := s.SnapshotTorpedoes()
		require.Len(t, torpedoes, 1)
		assert.Equal(t, int32(100)+int32(n)*torpedo.Velocity.X, torpedoes[0].X)
		assert.Equal(t, int32(100)+int32(n)*torpedo.Velocity.Y, torpedoes[0].Y)
		assert.Equal(t, int32(5-n), torpedoes[0].Lifetime)
	}

	destroyed := s.AdvanceTorpedoes()
	assert.Equal(t, []types.Entity{{ID: owner, Kind: types.EntityKindTorpedo}}, destroyed)
	assert.Empty(t, s.SnapshotTorpedoes())
}

func TestSector_AdvanceTorpedoes_collisions(t *testing.T) {
	owner := testIdentity(4000)
	target := testIdentity(4001)

	tests := []struct {
		name          string
		setup         func(s *Sector)
		torpedo       types.Torpedo
		want          []types.Entity
		wantShips     int
		wantTorpedoes int
	}{
		{
			name: "torpedo hitting a ship destroys both",
			setup: func(s *Sector) {
				s.UpdateOrAddSpacecraft(types.NewSpaceCraft(target, 112, 100, 0))
			},
			torpedo: types.NewTorpedo(owner, 100, 100, 0, 12, 10),
			want: []types.Entity{
				{ID: owner, Kind: types.EntityKindTorpedo},
				{ID: target, Kind: types.EntityKindShip},
			},
			wantShips:     0,
			wantTorpedoes: 0,
		},
		{
			name: "torpedo hitting an obstacle destroys only the torpedo",
			setup: func(s *Sector) {
				s.AddObstacle(types.Obstacle{X: 114, Y: 100})
			},
			torpedo: types.NewTorpedo(owner, 100, 100, 0, 12, 10),
			want: []types.Entity{
				{ID: owner, Kind: types.EntityKindTorpedo},
			},
			wantShips:     0,
			wantTorpedoes: 0,
		},
		{
			name: "torpedo leaving the sector is destroyed",
			setup: func(s *Sector) {
				s.UpdateOrAddSpacecraft(types.NewSpaceCraft(target, 500, 500, 0))
			},
			torpedo: types.NewTorpedo(owner, 1020, 100, 0, 12, 10),
			want: []types.Entity{
				{ID: owner, Kind: types.EntityKindTorpedo},
			},
			wantShips:     1,
			wantTorpedoes: 0,
		},
		{
			name: "torpedo at the edge hits a ship outside the bounds",
			setup: func(s *Sector) {
				s.UpdateOrAddSpacecraft(types.NewSpaceCraft(target, 1031, 300, 0))
			},
			torpedo: types.NewTorpedo(owner, 1012, 300, 0, 12, 10),
			want: []types.Entity{
				{ID: owner, Kind: types.EntityKindTorpedo},
				{ID: target, Kind: types.EntityKindShip},
			},
			wantShips:     0,
			wantTorpedoes: 0,
		},
		{
			name: "torpedo does not hit its launcher on the first tick",
			setup: func(s *Sector) {
				s.UpdateOrAddSpacecraft(types.NewSpaceCraft(owner, 100, 100, 0))
			},
			torpedo:       types.NewTorpedo(owner, 100, 100, 0, 12, 10),
			want:          nil,
			wantShips:     1,
			wantTorpedoes: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSector()
			tt.setup(s)
			s.UpdateOrAddTorpedo(tt.torpedo)

			got := s.AdvanceTorpedoes()
			assert.Equal(t, tt.want, got)
			assert.Len(t, s.SnapshotSpacecraft(), tt.wantShips)
			assert.Len(t, s.SnapshotTorpedoes(), tt.wantTorpedoes)
		})
	}
}

func TestSector_RemoveTorpedo(t *testing.T) {
	s := newTestSector()
	owner := testIdentity(4000)
	other := testIdentity(4001)

	first := types.NewTorpedo(owner, 100, 100, 0, 12, 10)
	s.UpdateOrAddTorpedo(first)
	s.UpdateOrAddTorpedo(types.NewTorpedo(owner, 200, 100, 0, 12, 10))
	s.UpdateOrAddTorpedo(types.NewTorpedo(other, 300, 100, 0, 12, 10))

	assert.True(t, s.RemoveTorpedo(first.ID))
	assert.False(t, s.RemoveTorpedo(first.ID))
	torpedoes := s.SnapshotTorpedoes()
	require.Len(t, torpedoes, 2)
	for _, torpedo := range torpedoes {
		assert.NotEqual(t, first.ID, torpedo.ID)
	}
}

func TestSector_RemoveSpacecraft(t *testing.T) {
	s := newTestSector()
	id := testIdentity(4000)
	s.UpdateOrAddSpacecraft(types.NewSpaceCraft(id, 1, 1, 0))

	assert.True(t, s.RemoveSpacecraft(id))
	assert.False(t, s.RemoveSpacecraft(id))
	_, ok := s.Spacecraft(id)
	assert.False(t, ok)

	// a removed ship only comes back through a new update
	s.UpdateOrAddSpacecraft(types.NewSpaceCraft(id, 2, 2, 0))
	ship, ok := s.Spacecraft(id)
	require.True(t, ok)
	assert.Equal(t, int32(2), ship.X)
}

func TestSector_obstacles(t *testing.T) {
	s := newTestSector()
	s.PopulateObstacles(25, rand.New(rand.NewSource(1)))

	obstacles := s.SnapshotObstacles()
	require.Len(t, obstacles, 25)
	for _, o := range obstacles {
		assert.True(t, o.X >= 0 && o.X < 1024)
		assert.True(t, o.Y >= 0 && o.Y < 768)
	}

	// snapshots are copies
	obstacles[0].X = -5
	assert.NotEqual(t, int32(-5), s.SnapshotObstacles()[0].X)
}

func TestSector_concurrentUpdates(t *testing.T) {
	s := newTestSector()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := testIdentity(int32(5000 + i))
			x := int32(20 + (i%10)*100)
			y := int32(20 + (i/10)*100)
			s.UpdateOrAddSpacecraft(types.NewSpaceCraft(id, x, y, 0))
			assert.Nil(t, s.CollisionCheck(types.SpaceCraft{ID: id}))
		}(i)
	}
	wg.Wait()

	ships := s.SnapshotSpacecraft()
	require.Len(t, ships, 50)
	for _, ship := range ships {
		i := ship.ID.Port - 5000
		assert.Equal(t, 20+(i%10)*100, ship.X)
		assert.Equal(t, 20+(i/10)*100, ship.Y)
	}
}

func TestSector_Snapshot(t *testing.T) {
	s := newTestSector()
	s.AddObstacle(types.Obstacle{X: 5, Y: 6})
	s.UpdateOrAddSpacecraft(types.NewSpaceCraft(testIdentity(4000), 300, 300, 45))
	s.UpdateOrAddTorpedo(types.NewTorpedo(testIdentity(4000), 600, 600, 45, 12, 3))

	snap := s.Snapshot()
	assert.Equal(t, int32(1024), snap.MaxX)
	assert.Equal(t, int32(768), snap.MaxY)
	assert.Equal(t, []types.Obstacle{{X: 5, Y: 6}}, snap.Obstacles)
	require.Len(t, snap.Spacecraft, 1)
	require.Len(t, snap.Torpedoes, 1)
	assert.Equal(t, kinematic.Displacement(45, 12), snap.Torpedoes[0].Velocity)
}

func TestCollisionSpacePadding(t *testing.T) {
	assert.Equal(t, 32, CollisionSpacePadding(10))
	assert.Equal(t, 32, CollisionSpacePadding(16))
	assert.Equal(t, 64, CollisionSpacePadding(17))
	assert.Equal(t, 32, CollisionSpacePadding(0))
}

func TestSector_CollisionCheck_largeRadiusAtTheEdge(t *testing.T) {
	s := NewSector(NewSectorOptions{MaxX: 1024, MaxY: 768, Radius: 40})
	owner := testIdentity(4000)
	target := testIdentity(4001)
	s.UpdateOrAddSpacecraft(types.NewSpaceCraft(target, 1060, 300, 0))
	s.UpdateOrAddTorpedo(types.NewTorpedo(owner, 1012, 300, 0, 12, 10))

	assert.Equal(t, []types.Entity{
		{ID: owner, Kind: types.EntityKindTorpedo},
		{ID: target, Kind: types.EntityKindShip},
	}, s.AdvanceTorpedoes())
}
