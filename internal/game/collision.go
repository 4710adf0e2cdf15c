package game

import "math"

// Vec3 is a world position. Y is the vertical axis and is ignored by every
// distance check.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Clamp clamps a single horizontal coordinate within map bounds.
func Clamp(v float64) float64 {
	if v < MapMin {
		return MapMin
	}
	if v > MapMax {
		return MapMax
	}
	return v
}

// ClampPosition clamps both horizontal axes within map bounds.
func ClampPosition(p Vec3) Vec3 {
	return Vec3{X: Clamp(p.X), Y: p.Y, Z: Clamp(p.Z)}
}

// PlanarDistance calculates the Euclidean distance between two points on the
// ground plane.
func PlanarDistance(a, b Vec3) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// InPickupRange checks if the player can collect an item at pos.
func InPickupRange(player, pos Vec3) bool {
	return PlanarDistance(player, pos) < PickupRange
}

// InEngageRange checks if an enemy at pos is close enough to attack.
func InEngageRange(player, pos Vec3) bool {
	return PlanarDistance(player, pos) < EngageRange
}
