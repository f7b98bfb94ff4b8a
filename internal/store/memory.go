package store

import (
	"context"
	"sync"

	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// MemorySink is an in-memory Sink for tests.
type MemorySink struct {
	mu       sync.Mutex
	records  []domain.Listing
	appendEr error
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// FailWith makes every subsequent Append return err.
func (s *MemorySink) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendEr = err
}

// Append implements Sink.
func (s *MemorySink) Append(_ context.Context, listings []domain.Listing) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.appendEr != nil {
		return 0, s.appendEr
	}

	s.records = append(s.records, listings...)
	return len(listings), nil
}

// Ping implements Sink.
func (s *MemorySink) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendEr
}

// Records returns a copy of everything appended so far.
func (s *MemorySink) Records() []domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Listing, len(s.records))
	copy(out, s.records)
	return out
}
