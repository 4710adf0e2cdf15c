package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ugaemi/cleannile/internal/redis"
)

//go:generate mockgen -destination=mock/mock.go -package=storemock github.com/ugaemi/cleannile/internal/store Recorder

// Storage keys shared by the key-value backends.
const (
	KeyBestScore    = "cleannile:best-score"
	KeyTotalGames   = "cleannile:total-games"
	KeyTotalScore   = "cleannile:total-score"
	KeyTotalSeconds = "cleannile:total-seconds"
)

// Backend names accepted by New.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

var ErrUnknownBackend = errors.New("store: unknown backend")

// Stats is the cumulative record across finished runs.
type Stats struct {
	BestScore    int `json:"best_score" yaml:"best_score"`
	TotalGames   int `json:"total_games" yaml:"total_games"`
	TotalScore   int `json:"total_score" yaml:"total_score"`
	TotalSeconds int `json:"total_seconds" yaml:"total_seconds"`
}

// AverageScore returns the mean score per game, rounded, or zero before the
// first game.
func (s Stats) AverageScore() int {
	if s.TotalGames == 0 {
		return 0
	}
	return int(math.Round(float64(s.TotalScore) / float64(s.TotalGames)))
}

// Recorder defines the interface for persistent score and play statistics.
type Recorder interface {
	// SaveBestScore stores score if it beats the stored best.
	SaveBestScore(ctx context.Context, score int) error
	// SaveGameStats counts one more finished game and adds its score and time.
	SaveGameStats(ctx context.Context, score int, elapsed time.Duration) error
	// Stats returns the current totals.
	Stats(ctx context.Context) (Stats, error)
	// Reset clears every stored value.
	Reset(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}

// Config selects and configures a Recorder backend.
type Config struct {
	Backend     string
	FilePath    string
	RedisAddr   string
	DatabaseURL string
}

// New creates the Recorder named by cfg.Backend.
func New(ctx context.Context, cfg Config) (Recorder, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(cfg.FilePath)
	case BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("store: ping redis: %w", err)
		}
		return NewRedisStore(client), nil
	case BackendPostgres:
		s, err := NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("store: open postgres: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
