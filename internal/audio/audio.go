// Package audio fires short sound cues for game events. Cue players are
// injected into whoever needs them; there is no package-level player.
package audio

import "sync"

//go:generate mockgen -destination=mock/mock.go -package=audiomock github.com/ugaemi/cleannile/internal/audio Player

type Cue int

const (
	CueClick Cue = iota
	CuePickup
	CueVictory
)

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CuePickup:
		return "pickup"
	case CueVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Player plays cues. Play is fire-and-forget and must not block the caller.
type Player interface {
	Play(cue Cue)
}

// NopPlayer discards every cue.
type NopPlayer struct{}

func (NopPlayer) Play(Cue) {}

// Volume is the master volume shared by every cue player of a process.
type Volume struct {
	mu    sync.RWMutex
	level float64
	muted bool
}

// NewVolume creates a Volume at level, clamped to [0, 1].
func NewVolume(level float64) *Volume {
	v := &Volume{}
	v.SetLevel(level)
	return v
}

// SetLevel sets the master level. A level of zero also mutes.
func (v *Volume) SetLevel(level float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.level = max(0, min(1, level))
	v.muted = v.level == 0
}

// ToggleMute flips the mute flag and returns the new value.
func (v *Volume) ToggleMute() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.muted = !v.muted
	return v.muted
}

// Level returns the effective level: zero while muted.
func (v *Volume) Level() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.muted {
		return 0
	}
	return v.level
}

func (v *Volume) Muted() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.muted
}
