package game

type InputKind int

const (
	InputMove InputKind = iota
	InputSimTick
	InputBuffTick
	InputClockTick
)

func (k InputKind) String() string {
	switch k {
	case InputMove:
		return "move"
	case InputSimTick:
		return "sim_tick"
	case InputBuffTick:
		return "buff_tick"
	case InputClockTick:
		return "clock_tick"
	default:
		return "unknown"
	}
}

// Input is one thing that can advance a run: a move key or a timer firing.
type Input struct {
	Kind InputKind
	Dir  Direction // InputMove only
}

func Move(dir Direction) Input { return Input{Kind: InputMove, Dir: dir} }

var (
	SimTick   = Input{Kind: InputSimTick}
	BuffTick  = Input{Kind: InputBuffTick}
	ClockTick = Input{Kind: InputClockTick}
)

// Events describes what a single Step did, for hosts that fire cues or
// record stats.
type Events struct {
	Pickups []PickupEvent
	Attacks []AttackEvent
	Outcome Outcome
}

// Step applies in to a copy of s and returns the new state. s is never
// mutated. A finished run ignores every input.
//
// Move: player step, collision pass, outcome.
// SimTick: collision pass, enemy step, outcome.
// BuffTick: buff countdown.
// ClockTick: one second on the game clock.
func Step(s State, in Input) (State, Events) {
	var ev Events
	if s.IsOver() {
		return s, ev
	}

	next := s.Clone()
	switch in.Kind {
	case InputMove:
		next.Player.Move(in.Dir)
		ev.Pickups = CollectPickups(&next)
		ev.Outcome = EvaluateOutcome(&next)
	case InputSimTick:
		next.Ticks++
		ev.Pickups = CollectPickups(&next)
		ev.Attacks = StepEnemies(&next)
		ev.Outcome = EvaluateOutcome(&next)
	case InputBuffTick:
		TickBuffs(&next.Player)
	case InputClockTick:
		next.Elapsed++
	}
	return next, ev
}
