package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// FileStore implements Recorder on a single YAML document, so totals survive
// between terminal runs without a database. It is safe for concurrent use
// within one process only.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ Recorder = (*FileStore)(nil)

// NewFileStore returns a store backed by path. The file and its directory
// are created on the first write; a missing file reads as empty totals.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("store: file path is required")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) SaveBestScore(_ context.Context, score int) error {
	return s.update(func(st *Stats) {
		if score > st.BestScore {
			st.BestScore = score
		}
	})
}

func (s *FileStore) SaveGameStats(_ context.Context, score int, elapsed time.Duration) error {
	return s.update(func(st *Stats) {
		st.TotalGames++
		st.TotalScore += score
		st.TotalSeconds += int(elapsed.Seconds())
	})
}

func (s *FileStore) Stats(_ context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) Reset(_ context.Context) error {
	return s.update(func(st *Stats) { *st = Stats{} })
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) update(fn func(*Stats)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil {
		return err
	}
	fn(&st)
	return s.write(st)
}

// read loads the document. Caller must hold s.mu.
func (s *FileStore) read() (Stats, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Stats{}, nil
	}
	if err != nil {
		return Stats{}, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var st Stats
	if err := yaml.Unmarshal(data, &st); err != nil {
		return Stats{}, fmt.Errorf("store: decode %s: %w", s.path, err)
	}
	return st, nil
}

// write replaces the document through a temporary file in the same
// directory. Caller must hold s.mu.
func (s *FileStore) write(st Stats) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("store: encode stats: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".stats-*.yaml")
	if err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return nil
}
