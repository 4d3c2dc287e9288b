package store

import (
	"context"
	"sync"
	"time"

	"normalro/internal/email"
	"normalro/pkg/platform/sentinel"
)

// InMemoryStore keeps temp file metadata in process memory.
type InMemoryStore struct {
	mu    sync.RWMutex
	files map[string]email.TempFile
	now   func() time.Time
}

// MemoryOption configures an InMemoryStore.
type MemoryOption func(*InMemoryStore)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *InMemoryStore) {
		s.now = now
	}
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore(opts ...MemoryOption) *InMemoryStore {
	s := &InMemoryStore{
		files: make(map[string]email.TempFile),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save stores file metadata keyed by ID.
func (s *InMemoryStore) Save(_ context.Context, file *email.TempFile) error {
	if file == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[file.ID] = *file
	return nil
}

// Get returns the metadata for id, or sentinel.ErrNotFound once it has expired.
func (s *InMemoryStore) Get(_ context.Context, id string) (*email.TempFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	file, ok := s.files[id]
	if !ok || file.Expired(s.now()) {
		return nil, sentinel.ErrNotFound
	}
	return &file, nil
}

// Delete removes the metadata for id.
func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.files, id)
	return nil
}

// Purge drops entries expired as of now and returns how many were removed.
func (s *InMemoryStore) Purge(_ context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, file := range s.files {
		if file.Expired(now) {
			delete(s.files, id)
			removed++
		}
	}
	return removed
}
