package kinematic

// This package converts headings into integer displacements on the sector grid.

import (
	"math"
)

// Vector is an integer displacement.
type Vector struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Displacement returns the per-tick displacement for a heading in degrees
// and a speed in sector units per tick. Heading 0 points along +x and angles
// grow clockwise on screen (towards +y). Components are rounded once so that
// repeated steps never drift.
func Displacement(heading int32, speed float64) Vector {
	rad := float64(heading) * math.Pi / 180.0
	return Vector{
		X: int32(math.Round(speed * math.Cos(rad))),
		Y: int32(math.Round(speed * math.Sin(rad))),
	}
}

// DistanceSquared returns the squared euclidean distance between two points.
func DistanceSquared(x1, y1, x2, y2 int32) int64 {
	dx := int64(x1) - int64(x2)
	dy := int64(y1) - int64(y2)
	return dx*dx + dy*dy
}

// Within reports whether two points are closer than radius.
func Within(x1, y1, x2, y2, radius int32) bool {
	return DistanceSquared(x1, y1, x2, y2) < int64(radius)*int64(radius)
}
