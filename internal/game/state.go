package game

import "encoding/json"

type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Status as a string.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes Status from a string.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "won":
		*s = StatusWon
	case "lost":
		*s = StatusLost
	default:
		*s = StatusInProgress
	}
	return nil
}

// State is the single source of truth for one run. Entity slices are sized
// by the layout and never grow or shrink while the run lasts.
type State struct {
	Player    Player
	Treasures []Collectible
	PowerUps  []Collectible
	Enemies   []Enemy

	Ticks   int // simulation ticks processed
	Elapsed int // seconds on the game clock
	Score   int
	Status  Status
}

// NewState creates an in-progress run from layout.
func NewState(layout Layout) State {
	l := layout.clone()
	return State{
		Player:    NewPlayer(),
		Treasures: l.Treasures,
		PowerUps:  l.PowerUps,
		Enemies:   l.Enemies,
		Status:    StatusInProgress,
	}
}

// Clone returns a deep copy that shares no slices with s.
func (s State) Clone() State {
	c := s
	c.Treasures = append([]Collectible(nil), s.Treasures...)
	c.PowerUps = append([]Collectible(nil), s.PowerUps...)
	c.Enemies = append([]Enemy(nil), s.Enemies...)
	return c
}

func (s *State) IsOver() bool {
	return s.Status != StatusInProgress
}

// AllTreasuresCollected reports whether every treasure has been picked up.
// Health power-ups are optional and do not count.
func (s *State) AllTreasuresCollected() bool {
	for _, t := range s.Treasures {
		if !t.Collected {
			return false
		}
	}
	return len(s.Treasures) > 0
}

// Remaining returns the number of treasures not yet collected.
func (s *State) Remaining() int {
	n := 0
	for _, t := range s.Treasures {
		if !t.Collected {
			n++
		}
	}
	return n
}

// Reset returns the run to layout: player at the origin with full health and
// no buffs, every entity back at its spawn, clock and score at zero.
func (s *State) Reset(layout Layout) {
	*s = NewState(layout)
}
