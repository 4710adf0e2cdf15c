package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ugaemi/cleannile/internal/redis"
)

// RedisStore implements Recorder on Redis scalar keys.
type RedisStore struct {
	client redis.Client
}

// NewRedisStore wraps an existing client. The store owns the client and
// closes it on Close.
func NewRedisStore(client redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

var _ Recorder = (*RedisStore)(nil)

// SaveBestScore reads the stored best and overwrites it when score is higher.
func (s *RedisStore) SaveBestScore(ctx context.Context, score int) error {
	best, err := s.getInt(ctx, KeyBestScore)
	if err != nil {
		return err
	}
	if score <= best {
		return nil
	}
	if err := s.client.Set(ctx, KeyBestScore, score, 0).Err(); err != nil {
		return fmt.Errorf("store: set best score: %w", err)
	}
	return nil
}

func (s *RedisStore) SaveGameStats(ctx context.Context, score int, elapsed time.Duration) error {
	pipe := s.client.Pipeline()
	pipe.Incr(ctx, KeyTotalGames)
	pipe.IncrBy(ctx, KeyTotalScore, int64(score))
	pipe.IncrBy(ctx, KeyTotalSeconds, int64(elapsed.Seconds()))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store: save game stats: %w", err)
	}
	return nil
}

func (s *RedisStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	for key, dst := range map[string]*int{
		KeyBestScore:    &st.BestScore,
		KeyTotalGames:   &st.TotalGames,
		KeyTotalScore:   &st.TotalScore,
		KeyTotalSeconds: &st.TotalSeconds,
	} {
		v, err := s.getInt(ctx, key)
		if err != nil {
			return Stats{}, err
		}
		*dst = v
	}
	return st, nil
}

func (s *RedisStore) Reset(ctx context.Context) error {
	if err := s.client.Del(ctx, KeyBestScore, KeyTotalGames, KeyTotalScore, KeyTotalSeconds).Err(); err != nil {
		return fmt.Errorf("store: reset: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// getInt reads key as an integer; a missing key reads as zero.
func (s *RedisStore) getInt(ctx context.Context, key string) (int, error) {
	v, err := s.client.Get(ctx, key).Int()
	if redis.IsNil(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("store: get %s: %w", key, err)
	}
	return v, nil
}
