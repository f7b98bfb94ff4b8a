// Package store defines the durable listing sink for the recenseur backend.
// All business logic depends on the Sink interface, never on concrete
// implementations. This enables in-memory testing without touching a file.
package store

import (
	"context"

	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// Sink is an append-only destination for listing records. Append writes
// every given listing as one durable record and returns the count written;
// a call either appends the whole batch or fails. Records are never read
// back, compacted, or versioned by this system.
//
// Implementations must be safe under concurrent invocation: records from
// overlapping callers may interleave with each other, but never within a
// single record.
type Sink interface {
	Append(ctx context.Context, listings []domain.Listing) (int, error)
	Ping(ctx context.Context) error
}
