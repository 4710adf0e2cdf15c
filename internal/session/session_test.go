package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ugaemi/cleannile/internal/audio"
	audiomock "github.com/ugaemi/cleannile/internal/audio/mock"
	"github.com/ugaemi/cleannile/internal/game"
	"github.com/ugaemi/cleannile/internal/store"
	storemock "github.com/ugaemi/cleannile/internal/store/mock"
)

const waitTimeout = 2 * time.Second

// winLayout places a single coin under the player so the first tick wins.
func winLayout() *game.Layout {
	return &game.Layout{
		Treasures: []game.Collectible{
			{ID: 1, Position: game.Vec3{}, Category: game.CategoryCoin},
		},
	}
}

// lossLayout parks a stationary enemy on the player and the only treasure
// out of reach.
func lossLayout() *game.Layout {
	return &game.Layout{
		Treasures: []game.Collectible{
			{ID: 1, Position: game.Vec3{X: 9, Z: 9}, Category: game.CategoryGem},
		},
		Enemies: []game.Enemy{
			{ID: 1, Position: game.Vec3{}, Speed: 0, Active: true},
		},
	}
}

// idleLayout keeps the run in progress indefinitely.
func idleLayout() *game.Layout {
	return &game.Layout{
		Treasures: []game.Collectible{
			{ID: 1, Position: game.Vec3{X: 9, Z: 9}, Category: game.CategoryKey},
		},
	}
}

func fastOptions(layout *game.Layout) Options {
	return Options{
		SimTick:   time.Millisecond,
		BuffTick:  time.Hour,
		ClockTick: time.Hour,
		Layout:    layout,
	}
}

// watch returns a channel that receives the first snapshot with status want.
// Register it before Start so no transition is missed.
func watch(s *Session, want game.Status) <-chan game.Snapshot {
	ch := make(chan game.Snapshot, 1)
	s.Subscribe(func(snap game.Snapshot) {
		if snap.Status == want {
			select {
			case ch <- snap:
			default:
			}
		}
	})
	return ch
}

func waitFor(t *testing.T, ch <-chan game.Snapshot) game.Snapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for run outcome")
		return game.Snapshot{}
	}
}

func TestSession_WinRecordsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := audiomock.NewMockPlayer(ctrl)
	recorder := storemock.NewMockRecorder(ctrl)

	gomock.InOrder(
		player.EXPECT().Play(audio.CuePickup).Times(1),
		player.EXPECT().Play(audio.CueVictory).Times(1),
	)
	recorder.EXPECT().SaveBestScore(gomock.Any(), game.TreasureReward).Return(nil).Times(1)
	recorder.EXPECT().SaveGameStats(gomock.Any(), game.TreasureReward, gomock.Any()).Return(nil).Times(1)

	opts := fastOptions(winLayout())
	opts.Audio = player
	opts.Recorder = recorder

	s := NewSession("WINS", "tester", opts)
	won := watch(s, game.StatusWon)
	require.NoError(t, s.Start())
	defer s.Exit()

	snap := waitFor(t, won)
	assert.Equal(t, game.TreasureReward, snap.Score)
	assert.Equal(t, 0, snap.Remaining)

	// Timers are released on win; later ticks must not record again.
	assert.False(t, s.Running())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, snap.Ticks, s.Snapshot().Ticks)
}

func TestSession_LossStopsTimers(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := audiomock.NewMockPlayer(ctrl)
	recorder := storemock.NewMockRecorder(ctrl)

	player.EXPECT().Play(audio.CueClick).Times(1)

	opts := fastOptions(lossLayout())
	opts.Audio = player
	opts.Recorder = recorder

	s := NewSession("LOSE", "tester", opts)
	lost := watch(s, game.StatusLost)
	require.NoError(t, s.Start())
	defer s.Exit()

	snap := waitFor(t, lost)
	assert.Equal(t, 0, snap.Player.Health)
	assert.Equal(t, game.MaxHealth/game.EnemyDamage, snap.Ticks)
	assert.False(t, s.Running())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, snap.Ticks, s.Snapshot().Ticks)
}

func TestSession_RecorderFailureKeepsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := storemock.NewMockRecorder(ctrl)
	recorder.EXPECT().SaveBestScore(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	recorder.EXPECT().SaveGameStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	opts := fastOptions(winLayout())
	opts.Recorder = recorder

	s := NewSession("FAIL", "tester", opts)
	won := watch(s, game.StatusWon)
	require.NoError(t, s.Start())
	defer s.Exit()

	snap := waitFor(t, won)
	assert.Equal(t, game.StatusWon, snap.Status)
	assert.Equal(t, game.StatusWon, s.Snapshot().Status)
}

func TestSession_ExitStopsTimers(t *testing.T) {
	s := NewSession("EXIT", "tester", fastOptions(idleLayout()))
	require.NoError(t, s.Start())

	require.Eventually(t, func() bool {
		return s.Snapshot().Ticks > 3
	}, waitTimeout, time.Millisecond)

	s.Exit()
	s.Exit()

	select {
	case <-s.Done():
	default:
		t.Fatal("Done should be closed after Exit")
	}

	ticks := s.Snapshot().Ticks
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, ticks, s.Snapshot().Ticks)
	assert.False(t, s.Running())

	assert.ErrorIs(t, s.Start(), ErrClosed)
	assert.ErrorIs(t, s.Move(game.DirLeft), ErrClosed)
	assert.ErrorIs(t, s.Restart(), ErrClosed)
}

func TestSession_Move(t *testing.T) {
	opts := fastOptions(idleLayout())
	opts.SimTick = time.Hour

	s := NewSession("MOVE", "tester", opts)
	defer s.Exit()

	assert.ErrorIs(t, s.Move(game.DirRight), ErrNotRunning)

	require.NoError(t, s.Start())
	require.NoError(t, s.Start())

	require.NoError(t, s.Move(game.DirRight))
	require.NoError(t, s.Move(game.DirDown))

	snap := s.Snapshot()
	assert.InDelta(t, game.BaseStep, snap.Player.Position.X, 1e-9)
	assert.InDelta(t, game.BaseStep, snap.Player.Position.Z, 1e-9)
	assert.Equal(t, 0, snap.Ticks)
}

func TestSession_MoveCollects(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := audiomock.NewMockPlayer(ctrl)
	player.EXPECT().Play(audio.CuePickup).Times(1)

	layout := &game.Layout{
		Treasures: []game.Collectible{
			{ID: 1, Position: game.Vec3{X: 1.5}, Category: game.CategoryGem},
			{ID: 2, Position: game.Vec3{X: -9}, Category: game.CategoryCoin},
		},
	}
	opts := fastOptions(layout)
	opts.SimTick = time.Hour
	opts.Audio = player

	s := NewSession("PICK", "tester", opts)
	defer s.Exit()
	require.NoError(t, s.Start())

	// At x=0 the gem sits exactly on the pickup boundary.
	assert.Equal(t, 0, s.Snapshot().Score)

	require.NoError(t, s.Move(game.DirRight))
	snap := s.Snapshot()
	assert.Equal(t, game.TreasureReward, snap.Score)
	assert.Equal(t, 1, snap.Remaining)
}

func TestSession_Restart(t *testing.T) {
	rec := store.NewMemoryStore()
	opts := fastOptions(winLayout())
	opts.Recorder = rec

	s := NewSession("AGIN", "tester", opts)
	defer s.Exit()

	won := watch(s, game.StatusWon)
	require.NoError(t, s.Start())
	waitFor(t, won)

	// Start on a finished run does not revive it.
	require.NoError(t, s.Start())
	assert.False(t, s.Running())

	wonAgain := watch(s, game.StatusWon)
	require.NoError(t, s.Restart())
	snap := waitFor(t, wonAgain)
	assert.Equal(t, game.TreasureReward, snap.Score)

	st, err := rec.Stats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalGames)
	assert.Equal(t, 2*game.TreasureReward, st.TotalScore)
	assert.Equal(t, game.TreasureReward, st.BestScore)
}

func TestSession_RestartResetsState(t *testing.T) {
	opts := fastOptions(lossLayout())
	opts.SimTick = time.Hour

	s := NewSession("RSET", "tester", opts)
	defer s.Exit()
	require.NoError(t, s.Start())

	require.NoError(t, s.Move(game.DirLeft))
	require.NoError(t, s.Move(game.DirLeft))
	require.NotEqual(t, game.Vec3{}, s.Snapshot().Player.Position)

	require.NoError(t, s.Restart())
	snap := s.Snapshot()
	assert.Equal(t, game.Vec3{}, snap.Player.Position)
	assert.Equal(t, game.MaxHealth, snap.Player.Health)
	assert.Equal(t, game.StatusInProgress, snap.Status)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, *lossLayout(), game.Layout{
		Treasures: snap.Treasures,
		Enemies:   snap.Enemies,
	})
	assert.True(t, s.Running())
}

func TestSession_SubscribeReceivesStart(t *testing.T) {
	opts := fastOptions(idleLayout())
	opts.SimTick = time.Hour

	s := NewSession("SUBS", "tester", opts)
	defer s.Exit()

	got := make(chan game.Snapshot, 4)
	s.Subscribe(func(snap game.Snapshot) { got <- snap })

	require.NoError(t, s.Start())
	snap := waitFor(t, got)
	assert.Equal(t, game.StatusInProgress, snap.Status)
	assert.Equal(t, 1, snap.Remaining)
}

func TestOptions_Defaults(t *testing.T) {
	o := Options{}.withDefaults()

	assert.Equal(t, game.SimTickInterval, o.SimTick)
	assert.Equal(t, game.BuffTickInterval, o.BuffTick)
	assert.Equal(t, game.ClockTickInterval, o.ClockTick)
	require.NotNil(t, o.Layout)
	assert.Len(t, o.Layout.Treasures, 7)
	assert.IsType(t, audio.NopPlayer{}, o.Audio)
	assert.IsType(t, &store.MemoryStore{}, o.Recorder)
}

func TestSession_Unsubscribe(t *testing.T) {
	opts := fastOptions(idleLayout())
	opts.SimTick = time.Hour

	s := NewSession("UNSB", "tester", opts)
	defer s.Exit()

	var kept, dropped int
	s.Subscribe(func(game.Snapshot) { kept++ })
	cancel := s.Subscribe(func(game.Snapshot) { dropped++ })
	cancel()
	cancel()

	require.NoError(t, s.Start())
	require.NoError(t, s.Move(game.DirUp))

	assert.Equal(t, 2, kept)
	assert.Equal(t, 0, dropped)
}
