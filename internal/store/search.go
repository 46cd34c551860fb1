package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcliao/deltakit/internal/model"
)

// SearchParams holds parameters for searching diagnostics.
type SearchParams struct {
	Query string
	Kind  string
	Limit int
}

// SearchResult is a diagnostic together with the merge run that emitted it.
type SearchResult struct {
	model.DiagnosticRecord
	Merge model.MergeRecord `json:"merge"`
}

// Search finds diagnostics whose field or message contains the query
// substring, newest first.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]SearchResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	query := "%" + p.Query + "%"
	where := []string{"(d.message LIKE ? OR d.field LIKE ?)"}
	args := []interface{}{query, query}

	if p.Kind != "" {
		where = append(where, "d.kind = ?")
		args = append(args, p.Kind)
	}

	sql := fmt.Sprintf(`
		SELECT d.id, d.merge_id, d.seq, d.kind, d.field, d.message,
		       m.id, m.name, m.chapter, m.slot, m.mode, m.lines, m.conflicts, m.created_at
		FROM diagnostics d
		INNER JOIN merges m ON m.id = d.merge_id
		WHERE %s
		ORDER BY m.created_at DESC, m.id DESC, d.seq
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		var createdAt string
		err := rows.Scan(&r.ID, &r.MergeID, &r.Seq, &r.Kind, &r.Field, &r.Message,
			&r.Merge.ID, &r.Merge.Name, &r.Merge.Chapter, &r.Merge.Slot, &r.Merge.Mode,
			&r.Merge.Lines, &r.Merge.Conflicts, &createdAt)
		if err != nil {
			return nil, err
		}
		r.Merge.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}
	return results, rows.Err()
}
