package snapshot

import (
	"testing"

	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/sector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	s := sector.NewSector(sector.NewSectorOptions{MaxX: 800, MaxY: 600})
	s.AddObstacle(types.Obstacle{X: 40, Y: 50})
	s.AddObstacle(types.Obstacle{X: 700, Y: 10})
	s.UpdateOrAddSpacecraft(types.NewSpaceCraft(types.ClientIdentity{IP: [4]byte{10, 1, 2, 3}, Port: 4000}, 100, 200, 270))
	s.UpdateOrAddTorpedo(types.NewTorpedo(types.ClientIdentity{IP: [4]byte{192, 168, 0, 9}, Port: 4001}, 300, 300, 45, 12, 60))

	frame := &Frame{Timestamp: 1718000000000, Snapshot: s.Snapshot()}

	b, err := Serialize(frame)
	require.NoError(t, err)

	got, err := Deserialize(b)
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestSerialize_empty(t *testing.T) {
	s := sector.NewSector(sector.NewSectorOptions{MaxX: 10, MaxY: 20})
	frame := &Frame{Snapshot: s.Snapshot()}

	got, err := DeserializeFlatbuffer(SerializeFlatbuffer(frame))
	require.NoError(t, err)
	assert.Equal(t, int32(10), got.MaxX)
	assert.Equal(t, int32(20), got.MaxY)
	assert.Empty(t, got.Obstacles)
	assert.Empty(t, got.Spacecraft)
	assert.Empty(t, got.Torpedoes)
}

func TestDeserialize_garbage(t *testing.T) {
	_, err := Deserialize([]byte("not a zstd frame"))
	assert.Error(t, err)
}
