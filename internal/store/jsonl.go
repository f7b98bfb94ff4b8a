package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// JSONLSink appends listings to a local file, one JSON object per line.
// The whole batch is encoded into a buffer first and written in a single
// call under a mutex with O_APPEND, so concurrent appends never interleave
// within a record.
type JSONLSink struct {
	path string
	mu   sync.Mutex
}

// NewJSONLSink creates a sink appending to the file at path. The file is
// created on first append.
func NewJSONLSink(path string) *JSONLSink {
	return &JSONLSink{path: path}
}

// Path returns the log file location.
func (s *JSONLSink) Path() string {
	return s.path
}

// Append implements Sink. The batch is fully encoded before the file is
// opened, so an unmarshalable listing fails the call without a partial
// write.
func (s *JSONLSink) Append(ctx context.Context, listings []domain.Listing) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(listings) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i := range listings {
		if err := enc.Encode(&listings[i]); err != nil {
			return 0, fmt.Errorf("encoding listing %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // path from trusted config
	if err != nil {
		return 0, fmt.Errorf("opening store file: %w", err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return 0, fmt.Errorf("appending to store file: %w", err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing store file: %w", err)
	}

	return len(listings), nil
}

// Ping implements Sink by checking that the log's directory is writable.
func (s *JSONLSink) Ping(_ context.Context) error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("store directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store directory %s: not a directory", dir)
	}
	return nil
}
