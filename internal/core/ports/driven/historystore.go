package driven

import (
	"context"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

// HistoryStore records completed chat exchanges locally. History is
// append-only and purely diagnostic; it is never sent to the backend.
type HistoryStore interface {
	// Append stores one transcript entry.
	Append(ctx context.Context, rec domain.HistoryRecord) error

	// Recent returns the most recent entries for a domain, oldest first.
	// An empty domain returns entries across all domains.
	Recent(ctx context.Context, domainID string, limit int) ([]domain.HistoryRecord, error)

	// Close releases the underlying storage.
	Close() error
}
