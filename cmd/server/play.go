package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ugaemi/cleannile/internal/account"
	"github.com/ugaemi/cleannile/internal/session"
	"github.com/ugaemi/cleannile/internal/terminal"
)

var (
	playName    string
	playLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run in the terminal",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playName, "name", os.Getenv("USER"), "player name")
	playCmd.Flags().StringVar(&playLogFile, "log-file", "", "write logs to this file instead of discarding them")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The screen owns stdout while playing.
	var logOut io.Writer = io.Discard
	if playLogFile != "" {
		f, err := os.OpenFile(playLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	setupLogger(cfg, logOut)

	profile, err := account.NewProfile(playName)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, err := newRecorder(ctx, cfg)
	if err != nil {
		return err
	}
	defer recorder.Close()

	player, volume, closeAudio := newAudio(cfg)
	defer closeAudio()

	sm := session.NewManager(session.Options{
		Audio:    player,
		Recorder: recorder,
	})
	defer sm.Shutdown()
	s := sm.CreateSession(profile.Name)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	if err := terminal.New(screen, s, volume).Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
