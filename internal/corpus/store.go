package corpus

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// ErrUnavailable wraps any failure to read the corpus from its backing file.
var ErrUnavailable = errors.New("corpus unavailable")

// Store loads the corpus text once and caches it for the life of the process.
// A failed load is never cached; the next call retries, so a transient failure
// at cold start does not permanently disable the pipeline.
type Store struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	text   string
	loaded bool
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Text returns the cached corpus, loading it on first use. Concurrent cold
// starts wait on the mutex rather than loading redundantly.
func (s *Store) Text() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.text, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s.text = string(data)
	s.loaded = true
	s.logger.Info("corpus loaded", "path", s.path, "bytes", len(data))
	return s.text, nil
}
