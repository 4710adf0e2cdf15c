// Package main is the entry point for the cleannile server and terminal game.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ugaemi/cleannile/internal/audio"
	"github.com/ugaemi/cleannile/internal/audio/beep"
	"github.com/ugaemi/cleannile/internal/config"
	"github.com/ugaemi/cleannile/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "cleannile",
	Short:        "Clean the Nile treasure hunt",
	Long:         `Clean the Nile runs the treasure-collection game, either as a WebSocket server for render surfaces or directly in the terminal.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func setupLogger(cfg *config.Config, w io.Writer) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(h))
}

func newRecorder(ctx context.Context, cfg *config.Config) (store.Recorder, error) {
	rec, err := store.New(ctx, store.Config{
		Backend:     cfg.StatsBackend,
		FilePath:    cfg.StatsFile,
		RedisAddr:   cfg.RedisAddr,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s stats store: %w", cfg.StatsBackend, err)
	}
	slog.Info("stats store ready", "backend", cfg.StatsBackend)
	return rec, nil
}

// newAudio returns the cue player for cfg. Audio is optional: a speaker
// that fails to open falls back to silence.
func newAudio(cfg *config.Config) (audio.Player, *audio.Volume, func()) {
	volume := audio.NewVolume(cfg.AudioVolume)
	if !cfg.AudioEnabled {
		return audio.NopPlayer{}, volume, func() {}
	}

	player := beep.NewPlayer(volume)
	if err := player.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing without sound", "error", err)
		return audio.NopPlayer{}, volume, func() {}
	}
	return player, volume, player.Close
}
