package game

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// EvaluateOutcome transitions an in-progress run to won or lost and reports
// the transition. Won is checked first, so a tick that both clears the map
// and drops health to zero is a win. Finished runs report OutcomeNone.
func EvaluateOutcome(s *State) Outcome {
	if s.IsOver() {
		return OutcomeNone
	}
	if s.AllTreasuresCollected() {
		s.Status = StatusWon
		return OutcomeWon
	}
	if s.Player.IsDead() {
		s.Status = StatusLost
		return OutcomeLost
	}
	return OutcomeNone
}
