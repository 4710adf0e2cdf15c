package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_stats (
    key TEXT PRIMARY KEY,
    value BIGINT NOT NULL DEFAULT 0,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresStore implements Recorder using PostgreSQL as a key-value table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// SaveBestScore keeps the greater of the stored and the new score.
func (s *PostgresStore) SaveBestScore(ctx context.Context, score int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO game_stats (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE
		 SET value = GREATEST(game_stats.value, EXCLUDED.value), updated_at = EXCLUDED.updated_at`,
		KeyBestScore, score, time.Now())
	return err
}

// SaveGameStats increments the game, score and time counters in one batch.
func (s *PostgresStore) SaveGameStats(ctx context.Context, score int, elapsed time.Duration) error {
	const incr = `INSERT INTO game_stats (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE
		 SET value = game_stats.value + EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	now := time.Now()
	batch := &pgx.Batch{}
	batch.Queue(incr, KeyTotalGames, 1, now)
	batch.Queue(incr, KeyTotalScore, score, now)
	batch.Queue(incr, KeyTotalSeconds, int(elapsed.Seconds()), now)
	return s.pool.SendBatch(ctx, batch).Close()
}

// Stats reads every counter; missing rows read as zero.
func (s *PostgresStore) Stats(ctx context.Context) (Stats, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, value FROM game_stats`)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	var st Stats
	for rows.Next() {
		var key string
		var value int64
		if err := rows.Scan(&key, &value); err != nil {
			return Stats{}, err
		}
		switch key {
		case KeyBestScore:
			st.BestScore = int(value)
		case KeyTotalGames:
			st.TotalGames = int(value)
		case KeyTotalScore:
			st.TotalScore = int(value)
		case KeyTotalSeconds:
			st.TotalSeconds = int(value)
		}
	}
	return st, rows.Err()
}

// Reset deletes every counter.
func (s *PostgresStore) Reset(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM game_stats`)
	return err
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
