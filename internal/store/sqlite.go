package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/deltakit/internal/model"
)

// ErrNotFound is returned when a merge run does not exist.
var ErrNotFound = errors.New("merge not found")

// Fixed width so that stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS merges (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		chapter     INTEGER NOT NULL,
		slot        INTEGER NOT NULL,
		mode        TEXT NOT NULL,
		lines       INTEGER NOT NULL,
		conflicts   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_merges_slot ON merges(chapter, slot);
	CREATE INDEX IF NOT EXISTS idx_merges_created ON merges(created_at DESC);

	CREATE TABLE IF NOT EXISTS diagnostics (
		id          TEXT PRIMARY KEY,
		merge_id    TEXT NOT NULL REFERENCES merges(id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		kind        TEXT NOT NULL,
		field       TEXT NOT NULL,
		message     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_diagnostics_merge ON diagnostics(merge_id, seq);
	CREATE INDEX IF NOT EXISTS idx_diagnostics_kind ON diagnostics(kind);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Record(ctx context.Context, p RecordParams) (*model.MergeRecord, error) {
	if !model.ValidModes[p.Mode] {
		return nil, fmt.Errorf("invalid mode %q (valid: %s, %s)", p.Mode, model.ModeThreeWay, model.ModeTwoWay)
	}
	created := p.CreatedAt.UTC()
	if p.CreatedAt.IsZero() {
		created = time.Now().UTC()
	}

	rec := &model.MergeRecord{
		ID:        s.newID(created),
		Name:      p.Name,
		Chapter:   p.Chapter,
		Slot:      p.Slot,
		Mode:      p.Mode,
		Lines:     p.Lines,
		Conflicts: p.Conflicts,
		CreatedAt: created,
	}
	if err := s.insert(ctx, rec, p.Diagnostics, false); err != nil {
		return nil, err
	}
	return rec, nil
}

// insert writes rec and its diagnostics in one transaction. With
// ignoreExisting a record whose ID is already stored is skipped, and the
// returned error is errDuplicate.
func (s *SQLiteStore) insert(ctx context.Context, rec *model.MergeRecord, diags []model.DiagnosticRecord, ignoreExisting bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	verb := "INSERT"
	if ignoreExisting {
		verb = "INSERT OR IGNORE"
	}
	res, err := tx.ExecContext(ctx,
		verb+` INTO merges (id, name, chapter, slot, mode, lines, conflicts, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Chapter, rec.Slot, rec.Mode, rec.Lines, rec.Conflicts,
		rec.CreatedAt.Format(timeFormat))
	if err != nil {
		return fmt.Errorf("insert merge: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errDuplicate
	}

	rec.Diagnostics = make([]model.DiagnosticRecord, 0, len(diags))
	for i, d := range diags {
		d.ID = s.newID(rec.CreatedAt)
		d.MergeID = rec.ID
		d.Seq = i
		_, err = tx.ExecContext(ctx,
			`INSERT INTO diagnostics (id, merge_id, seq, kind, field, message)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			d.ID, d.MergeID, d.Seq, d.Kind, d.Field, d.Message)
		if err != nil {
			return fmt.Errorf("insert diagnostic: %w", err)
		}
		rec.Diagnostics = append(rec.Diagnostics, d)
	}

	return tx.Commit()
}

var errDuplicate = errors.New("duplicate merge id")

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.MergeRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, chapter, slot, mode, lines, conflicts, created_at
		 FROM merges WHERE id = ?`, id)
	rec, err := scanMerge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rec.Diagnostics, err = s.diagnostics(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLiteStore) diagnostics(ctx context.Context, mergeID string) ([]model.DiagnosticRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, merge_id, seq, kind, field, message
		 FROM diagnostics WHERE merge_id = ? ORDER BY seq`, mergeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diags []model.DiagnosticRecord
	for rows.Next() {
		var d model.DiagnosticRecord
		if err := rows.Scan(&d.ID, &d.MergeID, &d.Seq, &d.Kind, &d.Field, &d.Message); err != nil {
			return nil, err
		}
		diags = append(diags, d)
	}
	return diags, rows.Err()
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.MergeRecord, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1 = 1"}
	var args []interface{}

	if p.Chapter > 0 {
		where = append(where, "chapter = ?")
		args = append(args, p.Chapter)
	}
	if p.Slot >= 0 {
		where = append(where, "slot = ?")
		args = append(args, p.Slot)
	}
	if p.ConflictsOnly {
		where = append(where, "conflicts > 0")
	}

	query := fmt.Sprintf(`
		SELECT id, name, chapter, slot, mode, lines, conflicts, created_at
		FROM merges
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.MergeRecord
	for rows.Next() {
		r, err := scanMerge(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMerge(row scanner) (model.MergeRecord, error) {
	var r model.MergeRecord
	var createdAt string

	err := row.Scan(&r.ID, &r.Name, &r.Chapter, &r.Slot, &r.Mode, &r.Lines, &r.Conflicts, &createdAt)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeFormat, s)
	return t
}
