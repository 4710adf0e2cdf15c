package game

// Snapshot is the read-only view of a run handed to render surfaces. It
// shares no memory with the State it was taken from.
type Snapshot struct {
	Player    Player        `json:"player"`
	Treasures []Collectible `json:"treasures"`
	PowerUps  []Collectible `json:"power_ups"`
	Enemies   []Enemy       `json:"enemies"`
	Ticks     int           `json:"ticks"`
	Elapsed   int           `json:"elapsed"`
	Score     int           `json:"score"`
	Status    Status        `json:"status"`
	Remaining int           `json:"remaining"`
}

// Snapshot copies s into a Snapshot.
func (s State) Snapshot() Snapshot {
	c := s.Clone()
	return Snapshot{
		Player:    c.Player,
		Treasures: c.Treasures,
		PowerUps:  c.PowerUps,
		Enemies:   c.Enemies,
		Ticks:     c.Ticks,
		Elapsed:   c.Elapsed,
		Score:     c.Score,
		Status:    c.Status,
		Remaining: c.Remaining(),
	}
}
