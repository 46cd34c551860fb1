package store

import (
	"context"
	"os"
	"time"
)

// Stats holds journal statistics.
type Stats struct {
	DBPath           string      `json:"db_path"`
	DBSizeBytes      int64       `json:"db_size_bytes"`
	TotalMerges      int         `json:"total_merges"`
	CleanMerges      int         `json:"clean_merges"`
	ConflictedMerges int         `json:"conflicted_merges"`
	TotalConflicts   int         `json:"total_conflicts"`
	TotalDiagnostics int         `json:"total_diagnostics"`
	DiagnosticKinds  []KindStats `json:"diagnostic_kinds"`
	Slots            []SlotStats `json:"slots"`
}

// KindStats holds per-kind diagnostic counts.
type KindStats struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// SlotStats holds per-save-slot counts.
type SlotStats struct {
	Chapter   int       `json:"chapter"`
	Slot      int       `json:"slot"`
	Merges    int       `json:"merges"`
	Conflicts int       `json:"conflicts"`
	LastMerge time.Time `json:"last_merge"`
}

// Stats returns journal statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(conflicts), 0) FROM merges`).
		Scan(&st.TotalMerges, &st.TotalConflicts)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM merges WHERE conflicts > 0`).Scan(&st.ConflictedMerges)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM diagnostics`).Scan(&st.TotalDiagnostics)
	st.CleanMerges = st.TotalMerges - st.ConflictedMerges

	kinds, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) AS cnt FROM diagnostics
		GROUP BY kind ORDER BY cnt DESC, kind`)
	if err != nil {
		return st, err
	}
	defer kinds.Close()
	for kinds.Next() {
		var k KindStats
		kinds.Scan(&k.Kind, &k.Count)
		st.DiagnosticKinds = append(st.DiagnosticKinds, k)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT chapter, slot, COUNT(*) AS cnt, SUM(conflicts), MAX(created_at)
		FROM merges
		GROUP BY chapter, slot ORDER BY chapter, slot`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var sl SlotStats
		var last string
		rows.Scan(&sl.Chapter, &sl.Slot, &sl.Merges, &sl.Conflicts, &last)
		sl.LastMerge = parseTime(last)
		st.Slots = append(st.Slots, sl)
	}

	return st, nil
}
