package game

import "time"

// Map bounds (world units, applied to X and Z)
const (
	MapMin = -10.0
	MapMax = 10.0
)

// Player limits
const (
	MaxHealth = 100
	GroundY   = 0.0
)

// Movement
const (
	BaseStep             = 0.5 // units per key press
	SpeedBoostMultiplier = 1.5
)

// Pickup mechanics
const (
	PickupRange = 1.5 // strict: d < PickupRange

	TreasureReward   = 100
	SpeedBoostReward = 200
	ShieldReward     = 300
	HealthReward     = 50
)

// Buff durations (seconds)
const (
	SpeedBoostDuration = 10
	ShieldDuration     = 15
)

// Enemy mechanics
const (
	EngageRange = 1.2 // strict: d < EngageRange
	EnemyDamage = 5   // health per simulation tick while engaged
)

// Timing
const (
	SimTickInterval   = 100 * time.Millisecond
	BuffTickInterval  = time.Second
	ClockTickInterval = time.Second
)
