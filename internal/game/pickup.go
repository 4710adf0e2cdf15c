package game

// PickupEvent records one collectible picked up during a collision pass.
type PickupEvent struct {
	ID       int      `json:"id"`
	Category Category `json:"category"`
	Points   int      `json:"points"`
}

// CollectPickups checks every uncollected treasure and power-up against the
// player position, marks those in range as collected and applies their
// rewards. An item is rewarded at most once per run.
func CollectPickups(s *State) []PickupEvent {
	var events []PickupEvent
	for i := range s.Treasures {
		if ev, ok := collect(s, &s.Treasures[i]); ok {
			events = append(events, ev)
		}
	}
	for i := range s.PowerUps {
		if ev, ok := collect(s, &s.PowerUps[i]); ok {
			events = append(events, ev)
		}
	}
	return events
}

func collect(s *State, c *Collectible) (PickupEvent, bool) {
	if c.Collected || !InPickupRange(s.Player.Position, c.Position) {
		return PickupEvent{}, false
	}
	c.Collected = true

	switch c.Category {
	case CategorySpeedBoost:
		s.Player.SpeedBoost.activate(SpeedBoostDuration)
	case CategoryShield:
		s.Player.Shield.activate(ShieldDuration)
	case CategoryHealth:
		s.Player.Heal(c.Value)
	}

	points := Reward(c.Category)
	s.Score += points
	return PickupEvent{ID: c.ID, Category: c.Category, Points: points}, true
}
