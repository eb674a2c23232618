package storage

import (
	"context"
	"time"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// Storage persists fetched documentation between server runs so repeated
// lookups do not refetch registry content.
type Storage interface {
	// SaveDocument inserts or replaces the stored document for
	// (ecosystem, name, version).
	SaveDocument(ctx context.Context, doc *Document) error

	// GetDocument returns the stored document, or ErrNotFound.
	GetDocument(ctx context.Context, ecosystem types.Ecosystem, name, version string) (*Document, error)

	// DeleteStale removes documents fetched before cutoff and reports how
	// many were removed.
	DeleteStale(ctx context.Context, cutoff time.Time) (int, error)

	// Stats returns store statistics.
	Stats(ctx context.Context) (*StoreStats, error)

	// Close releases the underlying database.
	Close() error
}

// Document is a stored registry document.
type Document struct {
	ID          int64
	Ecosystem   types.Ecosystem
	Name        string
	Version     string
	Content     string // Rendered Markdown documentation
	ContentHash [32]byte
	Description string
	Homepage    string
	License     string
	Origin      string
	FetchedAt   time.Time
}

// StoreStats summarizes the persistent store.
type StoreStats struct {
	Documents   int64            `json:"documents"`
	Ecosystems  map[string]int64 `json:"ecosystems"`
	SizeBytes   int64            `json:"size_bytes"`
	OldestFetch time.Time        `json:"oldest_fetch"`
}
