// Package terminal renders a run in a terminal and feeds key presses back
// into its session.
package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/cleannile/internal/audio"
	"github.com/ugaemi/cleannile/internal/game"
	"github.com/ugaemi/cleannile/internal/session"
)

const (
	cellWidth = 2
	mapSize   = int(game.MapMax-game.MapMin) + 1
	hudTop    = mapSize + 1
)

var (
	styleDefault  = tcell.StyleDefault
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleTreasure = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePowerUp  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleWon      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLost     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// UI draws snapshots of one session onto a tcell screen.
type UI struct {
	screen  tcell.Screen
	session *session.Session
	volume  *audio.Volume
}

// New creates a UI. The caller owns screen and must have initialized it.
func New(screen tcell.Screen, s *session.Session, volume *audio.Volume) *UI {
	if volume == nil {
		volume = audio.NewVolume(1)
	}
	return &UI{screen: screen, session: s, volume: volume}
}

// Run starts the session and handles input until the player quits, the
// session exits or ctx is done. The session is exited on return.
func (u *UI) Run(ctx context.Context) error {
	defer u.session.Exit()

	frames := make(chan game.Snapshot, 1)
	unsubscribe := u.session.Subscribe(func(snap game.Snapshot) {
		// Keep only the newest frame.
		select {
		case <-frames:
		default:
		}
		select {
		case frames <- snap:
		default:
		}
	})
	defer unsubscribe()

	quit := make(chan struct{})
	defer close(quit)
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	if err := u.session.Start(); err != nil {
		return err
	}
	u.Draw(u.session.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-u.session.Done():
			return nil
		case snap := <-frames:
			u.Draw(snap)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if u.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				u.screen.Sync()
				u.Draw(u.session.Snapshot())
			}
		}
	}
}

// HandleKey applies a key press and reports whether the player quit.
func (u *UI) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		u.session.Exit()
		return true
	case tcell.KeyLeft:
		u.move(game.DirLeft)
	case tcell.KeyRight:
		u.move(game.DirRight)
	case tcell.KeyUp:
		u.move(game.DirUp)
	case tcell.KeyDown:
		u.move(game.DirDown)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			u.session.Exit()
			return true
		case 'r', 'R':
			u.session.Restart()
		case 'm', 'M':
			u.volume.ToggleMute()
			u.Draw(u.session.Snapshot())
		default:
			u.move(game.ParseKey(string(r)))
		}
	}
	return false
}

func (u *UI) move(dir game.Direction) {
	if dir == game.DirNone {
		return
	}
	// A finished or stopped run ignores movement.
	u.session.Move(dir)
}

// Draw renders snap with the HUD below the map.
func (u *UI) Draw(snap game.Snapshot) {
	u.screen.Clear()

	for row := range mapSize {
		for col := range mapSize {
			u.screen.SetContent(col*cellWidth, row, '.', nil, styleFloor)
		}
	}
	for _, t := range snap.Treasures {
		if !t.Collected {
			u.plot(t.Position, Glyph(t.Category), styleTreasure)
		}
	}
	for _, p := range snap.PowerUps {
		if !p.Collected {
			u.plot(p.Position, Glyph(p.Category), stylePowerUp)
		}
	}
	for _, e := range snap.Enemies {
		if e.Active {
			u.plot(e.Position, 'E', styleEnemy)
		}
	}
	u.plot(snap.Player.Position, '@', stylePlayer)

	for i, line := range HUD(snap, u.volume) {
		u.print(0, hudTop+i, line, styleDefault)
	}
	switch snap.Status {
	case game.StatusWon:
		u.print(0, hudTop+len(HUD(snap, u.volume)), "All treasures recovered! r: play again  q: quit", styleWon)
	case game.StatusLost:
		u.print(0, hudTop+len(HUD(snap, u.volume)), "You were overwhelmed. r: try again  q: quit", styleLost)
	}

	u.screen.Show()
}

func (u *UI) plot(p game.Vec3, r rune, style tcell.Style) {
	col, row := Cell(p)
	u.screen.SetContent(col*cellWidth, row, r, nil, style)
}

func (u *UI) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Cell maps a world position to a map column and row.
func Cell(p game.Vec3) (col, row int) {
	p = game.ClampPosition(p)
	col = int(p.X - game.MapMin + 0.5)
	row = int(p.Z - game.MapMin + 0.5)
	return col, row
}

// Glyph returns the map rune for a collectible category.
func Glyph(c game.Category) rune {
	switch c {
	case game.CategoryCoin:
		return '$'
	case game.CategoryGem:
		return '*'
	case game.CategoryKey:
		return 'k'
	case game.CategorySpeedBoost:
		return '>'
	case game.CategoryShield:
		return 'O'
	default:
		return '+'
	}
}

// HUD returns the status lines shown under the map.
func HUD(snap game.Snapshot, volume *audio.Volume) []string {
	sound := fmt.Sprintf("%d%%", int(volume.Level()*100+0.5))
	if volume.Muted() {
		sound = "muted"
	}
	return []string{
		fmt.Sprintf("Score %d   Health %d/%d   Treasures left %d", snap.Score, snap.Player.Health, game.MaxHealth, snap.Remaining),
		fmt.Sprintf("Speed %s   Shield %s   Time %s", buffLabel(snap.Player.SpeedBoost), buffLabel(snap.Player.Shield), FormatClock(snap.Elapsed)),
		fmt.Sprintf("Sound %s   arrows/wasd move  r restart  m mute  q quit", sound),
	}
}

func buffLabel(b game.Buff) string {
	if !b.Active {
		return "--"
	}
	return fmt.Sprintf("%ds", b.Remaining)
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
