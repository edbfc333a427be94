package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	sectorfb "github.com/cbodonnell/spacewar/flatbuffers/sector"
	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/kinematic"
	"github.com/cbodonnell/spacewar/pkg/sector"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Frame is one sector snapshot as sent to observers.
type Frame struct {
	Timestamp int64 `json:"timestamp"`
	*sector.Snapshot
}

// Serialize encodes a frame as a zstd compressed flatbuffer.
func Serialize(f *Frame) ([]byte, error) {
	b := SerializeFlatbuffer(f)

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress snapshot: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// Deserialize decodes a frame produced by Serialize.
func Deserialize(data []byte) (*Frame, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed snapshot: %v", err)
	}

	frame, err := DeserializeFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize snapshot: %v", err)
	}

	return frame, nil
}

func ipToUint32(ip [4]byte) uint32 {
	return binary.BigEndian.Uint32(ip[:])
}

func uint32ToIP(n uint32) [4]byte {
	ip := [4]byte{}
	binary.BigEndian.PutUint32(ip[:], n)
	return ip
}

// SerializeFlatbuffer encodes a frame without compression.
func SerializeFlatbuffer(f *Frame) []byte {
	builder := flatbuffers.NewBuilder(1024)

	obstacles := make([]flatbuffers.UOffsetT, 0, len(f.Obstacles))
	for _, o := range f.Obstacles {
		sectorfb.ObstacleStart(builder)
		sectorfb.ObstacleAddX(builder, o.X)
		sectorfb.ObstacleAddY(builder, o.Y)
		obstacles = append(obstacles, sectorfb.ObstacleEnd(builder))
	}
	sectorfb.SectorStartObstaclesVector(builder, len(obstacles))
	for i := len(obstacles) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(obstacles[i])
	}
	obstacleVector := builder.EndVector(len(obstacles))

	ships := make([]flatbuffers.UOffsetT, 0, len(f.Spacecraft))
	for _, s := range f.Spacecraft {
		sectorfb.SpacecraftStart(builder)
		sectorfb.SpacecraftAddIp(builder, ipToUint32(s.ID.IP))
		sectorfb.SpacecraftAddPort(builder, s.ID.Port)
		sectorfb.SpacecraftAddX(builder, s.X)
		sectorfb.SpacecraftAddY(builder, s.Y)
		sectorfb.SpacecraftAddHeading(builder, s.Heading)
		ships = append(ships, sectorfb.SpacecraftEnd(builder))
	}
	sectorfb.SectorStartSpacecraftVector(builder, len(ships))
	for i := len(ships) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(ships[i])
	}
	shipVector := builder.EndVector(len(ships))

	torpedoes := make([]flatbuffers.UOffsetT, 0, len(f.Torpedoes))
	for _, t := range f.Torpedoes {
		id := builder.CreateString(t.ID.String())
		sectorfb.TorpedoStart(builder)
		sectorfb.TorpedoAddId(builder, id)
		sectorfb.TorpedoAddOwnerIp(builder, ipToUint32(t.Owner.IP))
		sectorfb.TorpedoAddOwnerPort(builder, t.Owner.Port)
		sectorfb.TorpedoAddX(builder, t.X)
		sectorfb.TorpedoAddY(builder, t.Y)
		sectorfb.TorpedoAddHeading(builder, t.Heading)
		sectorfb.TorpedoAddDx(builder, t.Velocity.X)
		sectorfb.TorpedoAddDy(builder, t.Velocity.Y)
		sectorfb.TorpedoAddLifetime(builder, t.Lifetime)
		torpedoes = append(torpedoes, sectorfb.TorpedoEnd(builder))
	}
	sectorfb.SectorStartTorpedoesVector(builder, len(torpedoes))
	for i := len(torpedoes) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(torpedoes[i])
	}
	torpedoVector := builder.EndVector(len(torpedoes))

	sectorfb.SectorStart(builder)
	sectorfb.SectorAddTimestamp(builder, f.Timestamp)
	sectorfb.SectorAddMaxX(builder, f.MaxX)
	sectorfb.SectorAddMaxY(builder, f.MaxY)
	sectorfb.SectorAddObstacles(builder, obstacleVector)
	sectorfb.SectorAddSpacecraft(builder, shipVector)
	sectorfb.SectorAddTorpedoes(builder, torpedoVector)
	root := sectorfb.SectorEnd(builder)
	builder.Finish(root)

	return builder.FinishedBytes()
}

// DeserializeFlatbuffer decodes an uncompressed frame.
func DeserializeFlatbuffer(b []byte) (*Frame, error) {
	fb := sectorfb.GetRootAsSector(b, 0)
	snap := &sector.Snapshot{
		MaxX:       fb.MaxX(),
		MaxY:       fb.MaxY(),
		Obstacles:  make([]types.Obstacle, 0, fb.ObstaclesLength()),
		Spacecraft: make([]types.SpaceCraft, 0, fb.SpacecraftLength()),
		Torpedoes:  make([]types.Torpedo, 0, fb.TorpedoesLength()),
	}

	obstacle := &sectorfb.Obstacle{}
	for i := 0; i < fb.ObstaclesLength(); i++ {
		if !fb.Obstacles(obstacle, i) {
			return nil, fmt.Errorf("failed to get obstacle at index %d", i)
		}
		snap.Obstacles = append(snap.Obstacles, types.Obstacle{X: obstacle.X(), Y: obstacle.Y()})
	}

	ship := &sectorfb.Spacecraft{}
	for i := 0; i < fb.SpacecraftLength(); i++ {
		if !fb.Spacecraft(ship, i) {
			return nil, fmt.Errorf("failed to get spacecraft at index %d", i)
		}
		id := types.ClientIdentity{IP: uint32ToIP(ship.Ip()), Port: ship.Port()}
		snap.Spacecraft = append(snap.Spacecraft, types.NewSpaceCraft(id, ship.X(), ship.Y(), ship.Heading()))
	}

	torpedo := &sectorfb.Torpedo{}
	for i := 0; i < fb.TorpedoesLength(); i++ {
		if !fb.Torpedoes(torpedo, i) {
			return nil, fmt.Errorf("failed to get torpedo at index %d", i)
		}
		id, err := uuid.ParseBytes(torpedo.Id())
		if err != nil {
			return nil, fmt.Errorf("failed to parse torpedo id at index %d: %v", i, err)
		}
		snap.Torpedoes = append(snap.Torpedoes, types.Torpedo{
			ID:       id,
			Owner:    types.ClientIdentity{IP: uint32ToIP(torpedo.OwnerIp()), Port: torpedo.OwnerPort()},
			X:        torpedo.X(),
			Y:        torpedo.Y(),
			Heading:  torpedo.Heading(),
			Velocity: kinematic.Vector{X: torpedo.Dx(), Y: torpedo.Dy()},
			Lifetime: torpedo.Lifetime(),
		})
	}

	return &Frame{Timestamp: fb.Timestamp(), Snapshot: snap}, nil
}
