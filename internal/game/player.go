package game

import (
	"encoding/json"
	"strings"
)

type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// MarshalJSON serializes Direction as a string.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON deserializes Direction from a string. Key names are
// accepted as well as direction names.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = ParseKey(s)
	return nil
}

// ParseKey maps a key name to a movement direction. Unknown keys map to
// DirNone.
func ParseKey(key string) Direction {
	switch strings.ToLower(key) {
	case "left", "arrowleft", "a":
		return DirLeft
	case "right", "arrowright", "d":
		return DirRight
	case "up", "arrowup", "w":
		return DirUp
	case "down", "arrowdown", "s":
		return DirDown
	default:
		return DirNone
	}
}

// Buff is a timed player modifier counted down in whole seconds.
type Buff struct {
	Active    bool `json:"active"`
	Remaining int  `json:"remaining"`
}

func (b *Buff) activate(seconds int) {
	b.Active = true
	b.Remaining = seconds
}

// tick counts one second off the buff and clears it at zero.
func (b *Buff) tick() {
	if b.Remaining <= 0 {
		return
	}
	b.Remaining--
	if b.Remaining <= 0 {
		b.Remaining = 0
		b.Active = false
	}
}

type Player struct {
	Position   Vec3 `json:"position"`
	Health     int  `json:"health"`
	SpeedBoost Buff `json:"speed_boost"`
	Shield     Buff `json:"shield"`
}

// NewPlayer returns a player at the origin with full health and no buffs.
func NewPlayer() Player {
	return Player{
		Position: Vec3{Y: GroundY},
		Health:   MaxHealth,
	}
}

// StepSize returns the distance covered by one move input.
func (p *Player) StepSize() float64 {
	if p.SpeedBoost.Active {
		return BaseStep * SpeedBoostMultiplier
	}
	return BaseStep
}

// Move applies one step in dir and clamps the result to the map.
func (p *Player) Move(dir Direction) {
	step := p.StepSize()
	pos := p.Position
	switch dir {
	case DirLeft:
		pos.X -= step
	case DirRight:
		pos.X += step
	case DirUp:
		pos.Z -= step
	case DirDown:
		pos.Z += step
	}
	p.Position = ClampPosition(pos)
}

// Heal adds amount to health, capped at MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health = min(MaxHealth, p.Health+amount)
}

// Damage removes amount from health, floored at zero.
func (p *Player) Damage(amount int) {
	p.Health = max(0, p.Health-amount)
}

func (p *Player) IsShielded() bool {
	return p.Shield.Active
}

func (p *Player) IsDead() bool {
	return p.Health <= 0
}
