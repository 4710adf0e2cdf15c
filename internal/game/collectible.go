package game

import "encoding/json"

type Category int

const (
	CategoryCoin Category = iota
	CategoryGem
	CategoryKey
	CategorySpeedBoost
	CategoryShield
	CategoryHealth
)

func (c Category) String() string {
	switch c {
	case CategoryCoin:
		return "coin"
	case CategoryGem:
		return "gem"
	case CategoryKey:
		return "key"
	case CategorySpeedBoost:
		return "speed_boost"
	case CategoryShield:
		return "shield"
	case CategoryHealth:
		return "health"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Category as a string.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON deserializes Category from a string.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "gem":
		*c = CategoryGem
	case "key":
		*c = CategoryKey
	case "speed_boost":
		*c = CategorySpeedBoost
	case "shield":
		*c = CategoryShield
	case "health":
		*c = CategoryHealth
	default:
		*c = CategoryCoin
	}
	return nil
}

// Reward returns the score awarded for collecting an item of category c.
func Reward(c Category) int {
	switch c {
	case CategorySpeedBoost:
		return SpeedBoostReward
	case CategoryShield:
		return ShieldReward
	case CategoryHealth:
		return HealthReward
	default:
		return TreasureReward
	}
}

// Collectible is a treasure or power-up. Collected only ever goes from false
// to true during a run; Reset is the only way back.
type Collectible struct {
	ID        int      `json:"id"`
	Position  Vec3     `json:"position"`
	Category  Category `json:"category"`
	Collected bool     `json:"collected"`
	Value     int      `json:"value,omitempty"` // health restored by a health power-up
}

type Enemy struct {
	ID       int     `json:"id"`
	Position Vec3    `json:"position"`
	Speed    float64 `json:"speed"` // units per simulation tick
	Active   bool    `json:"active"`
}
