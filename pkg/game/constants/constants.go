package constants

import "time"

const (
	// CollisionRadius is the distance under which two bodies collide
	CollisionRadius int32 = 10

	// TorpedoSpeed is the distance a torpedo travels every tick
	TorpedoSpeed float64 = 12.0
	// TorpedoLifetime is the number of ticks a torpedo lives
	TorpedoLifetime int32 = 60
	// TorpedoTickInterval is the period of the torpedo scheduler
	TorpedoTickInterval time.Duration = 50 * time.Millisecond

	// DefaultPort is shared by the reliable listener and the best-effort receiver
	DefaultPort int = 5656
	// DefaultHTTPPort serves the observer API
	DefaultHTTPPort int = 8080
	// DefaultMaxX is the width of the sector
	DefaultMaxX int32 = 1024
	// DefaultMaxY is the height of the sector
	DefaultMaxY int32 = 768
	// DefaultObstacleCount is the number of obstacles created at start
	DefaultObstacleCount int = 20

	// SpaceCellSize is the cell size of the broad phase collision space
	SpaceCellSize int = 32

	// ReliableReadTimeout bounds how long a reliable worker waits for its request
	ReliableReadTimeout time.Duration = 10 * time.Second
	// RemovalWriteTimeout bounds a single removal push
	RemovalWriteTimeout time.Duration = 2 * time.Second
)
