package store

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Recorder in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	stats Stats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveBestScore(_ context.Context, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score > s.stats.BestScore {
		s.stats.BestScore = score
	}
	return nil
}

func (s *MemoryStore) SaveGameStats(_ context.Context, score int, elapsed time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.TotalGames++
	s.stats.TotalScore += score
	s.stats.TotalSeconds += int(elapsed.Seconds())
	return nil
}

func (s *MemoryStore) Stats(_ context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats, nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = Stats{}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
