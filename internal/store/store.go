// Package store provides the merge journal interface and SQLite implementation.
package store

import (
	"context"
	"time"

	"github.com/rcliao/deltakit/internal/model"
)

// RecordParams holds parameters for recording a merge run.
type RecordParams struct {
	Name        string
	Chapter     int
	Slot        int
	Mode        string
	Lines       int
	Conflicts   int
	Diagnostics []model.DiagnosticRecord
	CreatedAt   time.Time // zero means now
}

// ListParams holds parameters for listing merge runs.
type ListParams struct {
	Chapter       int // 0 means any
	Slot          int // negative means any
	ConflictsOnly bool
	Limit         int
}

// PruneParams holds parameters for deleting old merge runs.
type PruneParams struct {
	Keep   int       // newest runs to keep; ignored when Before is set
	Before time.Time // delete runs recorded before this instant
}

// Store defines the merge journal interface.
type Store interface {
	// Record stores a merge run and its diagnostics.
	Record(ctx context.Context, p RecordParams) (*model.MergeRecord, error)

	// Get retrieves a merge run, with its diagnostics, by ID.
	Get(ctx context.Context, id string) (*model.MergeRecord, error)

	// List lists merge runs newest first, without diagnostics.
	List(ctx context.Context, p ListParams) ([]model.MergeRecord, error)

	// Prune deletes old merge runs and returns how many were removed.
	Prune(ctx context.Context, p PruneParams) (int, error)

	// Close closes the store.
	Close() error
}
