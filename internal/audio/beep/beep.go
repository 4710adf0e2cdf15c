// Package beep plays audio cues on the system speaker. It links the
// platform audio backend, so only binaries that want sound import it.
package beep

import (
	"math"
	"sync"
	"time"

	gobeep "github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/ugaemi/cleannile/internal/audio"
)

const sampleRate = gobeep.SampleRate(44100)

// Cue shapes
const (
	pickupFrom     = 800.0
	pickupTo       = 400.0
	pickupDuration = 100 * time.Millisecond

	victoryNoteDuration = 300 * time.Millisecond

	clickFreq     = 600.0
	clickDuration = 50 * time.Millisecond
)

// C5 E5 G5 C6
var victoryNotes = []float64{523.25, 659.25, 783.99, 1046.50}

var _ audio.Player = (*Player)(nil)

// Player synthesises cues and plays them on the system speaker.
type Player struct {
	mu          sync.Mutex
	volume      *audio.Volume
	initialized bool
}

// NewPlayer creates a player that scales every cue by volume.
func NewPlayer(volume *audio.Volume) *Player {
	if volume == nil {
		volume = audio.NewVolume(1)
	}
	return &Player{volume: volume}
}

// Initialize opens the speaker. A player that failed to initialize stays
// silent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Play queues cue on the speaker and returns immediately.
func (p *Player) Play(cue audio.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	level := p.volume.Level()
	if level == 0 {
		return
	}
	s := cueStreamer(cue)
	if s == nil {
		return
	}
	speaker.Play(withVolume(s, level))
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

func withVolume(s gobeep.Streamer, level float64) gobeep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(level),
		Silent:   level <= 0,
	}
}

// cueStreamer builds the finite stream for cue.
func cueStreamer(cue audio.Cue) gobeep.Streamer {
	switch cue {
	case audio.CuePickup:
		return newSweep(pickupFrom, pickupTo, pickupDuration)
	case audio.CueVictory:
		notes := make([]gobeep.Streamer, 0, len(victoryNotes))
		for _, f := range victoryNotes {
			notes = append(notes, newSweep(f, f, victoryNoteDuration))
		}
		return gobeep.Seq(notes...)
	case audio.CueClick:
		sine, err := generators.SineTone(sampleRate, clickFreq)
		if err != nil {
			return nil
		}
		return gobeep.Take(sampleRate.N(clickDuration), sine)
	default:
		return nil
	}
}

// sweep is a sine tone whose pitch glides exponentially from one frequency
// to another while its gain decays from 0.3 to 0.01.
type sweep struct {
	from, to float64
	samples  int
	pos      int
	phase    float64
}

func newSweep(from, to float64, d time.Duration) *sweep {
	return &sweep{from: from, to: to, samples: sampleRate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.samples {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.samples {
			return i, true
		}
		t := float64(s.pos) / float64(s.samples)
		freq := s.from * math.Pow(s.to/s.from, t)
		gain := 0.3 * math.Pow(0.01/0.3, t)

		val := gain * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }
