package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanarDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"same point", Vec3{}, Vec3{}, 0},
		{"along x", Vec3{}, Vec3{X: 3}, 3},
		{"along z", Vec3{}, Vec3{Z: 4}, 4},
		{"diagonal 3-4-5", Vec3{}, Vec3{X: 3, Z: 4}, 5},
		{"ignores height", Vec3{Y: 0}, Vec3{X: 3, Y: 7, Z: 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PlanarDistance(tt.a, tt.b)
			assert.InDelta(t, tt.expected, result, 0.001)
		})
	}
}

func TestClampPosition(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec3
		expected Vec3
	}{
		{"inside", Vec3{X: 3, Z: -4}, Vec3{X: 3, Z: -4}},
		{"past max", Vec3{X: 12, Z: 10.5}, Vec3{X: MapMax, Z: MapMax}},
		{"past min", Vec3{X: -10.25, Z: -30}, Vec3{X: MapMin, Z: MapMin}},
		{"height untouched", Vec3{X: 11, Y: 2, Z: 0}, Vec3{X: MapMax, Y: 2, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampPosition(tt.in))
		})
	}
}

func TestInPickupRange(t *testing.T) {
	player := Vec3{}

	tests := []struct {
		name     string
		pos      Vec3
		expected bool
	}{
		{"same position", Vec3{}, true},
		{"well inside", Vec3{Z: 1}, true},
		{"just inside", Vec3{X: 1.499999}, true},
		{"at boundary", Vec3{X: 1.5}, false},
		{"outside", Vec3{X: 1.6}, false},
		{"height ignored", Vec3{Y: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InPickupRange(player, tt.pos))
		})
	}
}

func TestInEngageRange(t *testing.T) {
	player := Vec3{X: 5, Z: 5}

	tests := []struct {
		name     string
		pos      Vec3
		expected bool
	}{
		{"close", Vec3{X: 5.5, Z: 5}, true},
		{"at boundary", Vec3{X: 6.2, Z: 5}, false},
		{"far", Vec3{X: 0, Z: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InEngageRange(player, tt.pos))
		})
	}
}
