package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rcliao/deltakit/internal/model"
)

// ExportAll returns every merge run, oldest first, with its diagnostics.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.MergeRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, chapter, slot, mode, lines, conflicts, created_at
		 FROM merges ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}

	var records []model.MergeRecord
	for rows.Next() {
		r, err := scanMerge(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		records = append(records, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Diagnostics, err = s.diagnostics(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Import stores merge runs from an export. Runs whose ID is already present
// are skipped. Returns the number of runs stored.
func (s *SQLiteStore) Import(ctx context.Context, records []model.MergeRecord) (int, error) {
	imported := 0
	for _, r := range records {
		if !model.ValidModes[r.Mode] {
			return imported, fmt.Errorf("import %s: invalid mode %q", r.ID, r.Mode)
		}
		rec := r
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now()
		}
		if rec.ID == "" {
			rec.ID = s.newID(rec.CreatedAt)
		}
		rec.CreatedAt = rec.CreatedAt.UTC()

		err := s.insert(ctx, &rec, r.Diagnostics, true)
		if errors.Is(err, errDuplicate) {
			continue
		}
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
