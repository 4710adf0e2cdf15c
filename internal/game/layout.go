package game

// Layout is the fixed set of entities a run starts with. Runs copy it; the
// layout itself is never mutated.
type Layout struct {
	Treasures []Collectible
	PowerUps  []Collectible
	Enemies   []Enemy
}

// DefaultLayout returns the level-one arrangement of the Nile map.
func DefaultLayout() Layout {
	return Layout{
		Treasures: []Collectible{
			{ID: 1, Position: Vec3{X: 5, Y: 0, Z: 5}, Category: CategoryCoin},
			{ID: 2, Position: Vec3{X: -3, Y: 0, Z: -4}, Category: CategoryGem},
			{ID: 3, Position: Vec3{X: 7, Y: 0, Z: -2}, Category: CategoryKey},
			{ID: 4, Position: Vec3{X: -6, Y: 0, Z: 3}, Category: CategoryCoin},
			{ID: 5, Position: Vec3{X: 2, Y: 0, Z: -7}, Category: CategoryGem},
			{ID: 6, Position: Vec3{X: 0, Y: 2, Z: 0}, Category: CategorySpeedBoost},
			{ID: 7, Position: Vec3{X: -8, Y: 1, Z: -8}, Category: CategoryShield},
		},
		PowerUps: []Collectible{
			{ID: 1, Position: Vec3{X: 3, Y: 0, Z: -1}, Category: CategoryHealth, Value: 25},
			{ID: 2, Position: Vec3{X: -4, Y: 0, Z: 6}, Category: CategoryHealth, Value: 25},
		},
		Enemies: []Enemy{
			{ID: 1, Position: Vec3{X: 4, Y: 0, Z: 2}, Speed: 0.02, Active: true},
			{ID: 2, Position: Vec3{X: -2, Y: 0, Z: -3}, Speed: 0.025, Active: true},
			{ID: 3, Position: Vec3{X: 6, Y: 0, Z: -5}, Speed: 0.018, Active: true},
		},
	}
}

func (l Layout) clone() Layout {
	return Layout{
		Treasures: append([]Collectible(nil), l.Treasures...),
		PowerUps:  append([]Collectible(nil), l.PowerUps...),
		Enemies:   append([]Enemy(nil), l.Enemies...),
	}
}
