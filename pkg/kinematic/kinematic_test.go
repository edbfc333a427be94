package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplacement(t *testing.T) {
	tests := []struct {
		name    string
		heading int32
		speed   float64
		want    Vector
	}{
		{name: "east", heading: 0, speed: 12, want: Vector{X: 12, Y: 0}},
		{name: "south", heading: 90, speed: 12, want: Vector{X: 0, Y: 12}},
		{name: "west", heading: 180, speed: 12, want: Vector{X: -12, Y: 0}},
		{name: "north", heading: 270, speed: 12, want: Vector{X: 0, Y: -12}},
		{name: "diagonal", heading: 45, speed: 10, want: Vector{X: 7, Y: 7}},
		{name: "full turn", heading: 360, speed: 5, want: Vector{X: 5, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Displacement(tt.heading, tt.speed))
		})
	}
}

func TestWithin(t *testing.T) {
	assert.True(t, Within(0, 0, 3, 4, 6))
	assert.False(t, Within(0, 0, 3, 4, 5), "distance equal to the radius is not a collision")
	assert.False(t, Within(0, 0, 30, 40, 10))
	assert.Equal(t, int64(25), DistanceSquared(0, 0, -3, -4))
}
