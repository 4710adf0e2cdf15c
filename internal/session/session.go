package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ugaemi/cleannile/internal/audio"
	"github.com/ugaemi/cleannile/internal/game"
	"github.com/ugaemi/cleannile/internal/store"
)

const recordTimeout = 5 * time.Second

var (
	ErrClosed     = errors.New("session: closed")
	ErrNotRunning = errors.New("session: run not in progress")
)

// Options configures a Session. Zero values fall back to the defaults.
type Options struct {
	SimTick   time.Duration
	BuffTick  time.Duration
	ClockTick time.Duration

	Layout   *game.Layout
	Audio    audio.Player
	Recorder store.Recorder
}

func (o Options) withDefaults() Options {
	if o.SimTick <= 0 {
		o.SimTick = game.SimTickInterval
	}
	if o.BuffTick <= 0 {
		o.BuffTick = game.BuffTickInterval
	}
	if o.ClockTick <= 0 {
		o.ClockTick = game.ClockTickInterval
	}
	if o.Layout == nil {
		l := game.DefaultLayout()
		o.Layout = &l
	}
	if o.Audio == nil {
		o.Audio = audio.NopPlayer{}
	}
	if o.Recorder == nil {
		o.Recorder = store.NewMemoryStore()
	}
	return o
}

// Listener receives a snapshot after every state change.
type Listener func(game.Snapshot)

// Session hosts a single run: its state, its timers and the collaborators
// notified when the run changes.
type Session struct {
	Code       string `json:"code"`
	PlayerName string `json:"player_name"`

	opts  Options
	state game.State

	listeners []subscription
	nextSubID int

	// Timer control. stopCh is nil while no timers are running.
	stopCh chan struct{}
	done   chan struct{}
	closed bool

	mu sync.Mutex
}

// NewSession creates an idle session. Call Start to begin the run.
func NewSession(code, playerName string, opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		Code:       code,
		PlayerName: playerName,
		opts:       opts,
		state:      game.NewState(*opts.Layout),
		done:       make(chan struct{}),
	}
}

// Start launches the run timers. Calling Start on a running session is a
// no-op.
func (s *Session) Start() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.stopCh != nil || s.state.IsOver() {
		s.mu.Unlock()
		return nil
	}
	s.startLocked()
	snap := s.state.Snapshot()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	slog.Info("run started", "session", s.Code, "player", s.PlayerName)
	notify(listeners, snap)
	return nil
}

// Move applies a movement input synchronously.
func (s *Session) Move(dir game.Direction) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.stopCh == nil {
		s.mu.Unlock()
		return ErrNotRunning
	}
	s.mu.Unlock()

	s.apply(game.Move(dir), nil)
	return nil
}

// Restart discards the current run and starts a fresh one from the initial
// layout.
func (s *Session) Restart() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.stopLocked()
	s.state.Reset(*s.opts.Layout)
	s.startLocked()
	snap := s.state.Snapshot()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	slog.Info("run restarted", "session", s.Code)
	notify(listeners, snap)
	return nil
}

// Exit stops the run timers from any state and closes the session. It is
// safe to call more than once.
func (s *Session) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.stopLocked()
	s.closed = true
	close(s.done)

	slog.Info("session exited", "session", s.Code, "status", s.state.Status.String())
}

// Done is closed once the session has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Running reports whether the run timers are active.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopCh != nil
}

// Snapshot returns an immutable view of the current run.
func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned func removes it again.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// startLocked launches the tick loop. Caller must hold s.mu.
func (s *Session) startLocked() {
	s.stopCh = make(chan struct{})
	go s.loop(s.stopCh)
}

// stopLocked signals the tick loop to stop. Caller must hold s.mu.
func (s *Session) stopLocked() {
	if s.stopCh == nil {
		return
	}
	close(s.stopCh)
	s.stopCh = nil
}

func (s *Session) listenersLocked() []Listener {
	out := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		out[i] = sub.fn
	}
	return out
}

// loop drives the three run timers until stopCh closes.
func (s *Session) loop(stopCh chan struct{}) {
	sim := time.NewTicker(s.opts.SimTick)
	defer sim.Stop()
	buff := time.NewTicker(s.opts.BuffTick)
	defer buff.Stop()
	clock := time.NewTicker(s.opts.ClockTick)
	defer clock.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-sim.C:
			s.apply(game.SimTick, stopCh)
		case <-buff.C:
			s.apply(game.BuffTick, stopCh)
		case <-clock.C:
			s.apply(game.ClockTick, stopCh)
		}
	}
}

// apply steps the run with in. Timer inputs pass the stop channel of the
// loop that produced them and are dropped if that loop has been stopped.
func (s *Session) apply(in game.Input, stopCh chan struct{}) {
	s.mu.Lock()
	if stopCh != nil && stopCh != s.stopCh {
		s.mu.Unlock()
		return
	}
	if s.closed || s.state.IsOver() {
		s.mu.Unlock()
		return
	}

	next, events := game.Step(s.state, in)
	s.state = next
	if events.Outcome != game.OutcomeNone {
		s.stopLocked()
	}
	snap := s.state.Snapshot()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	s.handleEvents(events, snap)
	notify(listeners, snap)
}

func (s *Session) handleEvents(events game.Events, snap game.Snapshot) {
	for _, p := range events.Pickups {
		slog.Debug("pickup collected", "session", s.Code, "id", p.ID, "category", p.Category.String(), "points", p.Points)
		s.opts.Audio.Play(audio.CuePickup)
	}

	switch events.Outcome {
	case game.OutcomeWon:
		slog.Info("run won", "session", s.Code, "score", snap.Score, "elapsed", snap.Elapsed)
		s.opts.Audio.Play(audio.CueVictory)
		s.record(snap)
	case game.OutcomeLost:
		slog.Info("run lost", "session", s.Code, "score", snap.Score, "elapsed", snap.Elapsed)
		s.opts.Audio.Play(audio.CueClick)
	}
}

// record reports a won run to the recorder. Failures are logged only.
func (s *Session) record(snap game.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := s.opts.Recorder.SaveBestScore(ctx, snap.Score); err != nil {
		slog.Error("failed to save best score", "session", s.Code, "error", err)
	}
	elapsed := time.Duration(snap.Elapsed) * time.Second
	if err := s.opts.Recorder.SaveGameStats(ctx, snap.Score, elapsed); err != nil {
		slog.Error("failed to save game stats", "session", s.Code, "error", err)
	}
}

func notify(listeners []Listener, snap game.Snapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}
