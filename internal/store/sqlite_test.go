package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcliao/deltakit/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var base = time.Date(2024, 9, 17, 12, 0, 0, 0, time.UTC)

func record(t *testing.T, s *SQLiteStore, p RecordParams) *model.MergeRecord {
	t.Helper()
	if p.Mode == "" {
		p.Mode = model.ModeThreeWay
	}
	rec, err := s.Record(context.Background(), p)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	return rec
}

func TestRecordAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	rec, err := s.Record(ctx, RecordParams{
		Name: "filech2_0", Chapter: 2, Slot: 0, Mode: model.ModeThreeWay,
		Lines: 3055, Conflicts: 2,
		Diagnostics: []model.DiagnosticRecord{
			{Kind: "delta", Field: "dark dollars", Message: "<<< o 15 ||| a 10 === t 12 >>> -> 17"},
			{Kind: "dropped", Field: "key item", Message: "could not add key item Egg to inventory"},
		},
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected non-empty ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected created_at to default to now")
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "filech2_0" || got.Chapter != 2 || got.Lines != 3055 || got.Conflicts != 2 {
		t.Errorf("unexpected record: %+v", got)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("created_at %v, want %v", got.CreatedAt, rec.CreatedAt)
	}
	if len(got.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(got.Diagnostics))
	}
	if got.Diagnostics[1].Seq != 1 || got.Diagnostics[1].Kind != "dropped" {
		t.Errorf("diagnostics out of order: %+v", got.Diagnostics)
	}
	if got.Diagnostics[0].MergeID != rec.ID {
		t.Errorf("expected merge_id %s, got %s", rec.ID, got.Diagnostics[0].MergeID)
	}
	if got.Clean() {
		t.Error("record with conflicts reported clean")
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "01J00000000000000000000000")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordInvalidMode(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Record(context.Background(), RecordParams{Name: "filech1_0", Mode: "octopus"})
	if err == nil {
		t.Fatal("expected error for invalid mode")
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	record(t, s, RecordParams{Name: "filech1_0", Chapter: 1, Slot: 0, CreatedAt: base})
	record(t, s, RecordParams{Name: "filech2_0", Chapter: 2, Slot: 0, CreatedAt: base.Add(time.Minute)})
	record(t, s, RecordParams{Name: "filech2_1", Chapter: 2, Slot: 1, Conflicts: 4, CreatedAt: base.Add(2 * time.Minute)})

	all, _ := s.List(ctx, ListParams{Slot: -1})
	if len(all) != 3 {
		t.Fatalf("expected 3, got %d", len(all))
	}
	if all[0].Name != "filech2_1" || all[2].Name != "filech1_0" {
		t.Errorf("expected newest first, got %s ... %s", all[0].Name, all[2].Name)
	}

	ch2, _ := s.List(ctx, ListParams{Chapter: 2, Slot: -1})
	if len(ch2) != 2 {
		t.Errorf("expected 2 chapter 2 merges, got %d", len(ch2))
	}

	slot0, _ := s.List(ctx, ListParams{Slot: 0})
	if len(slot0) != 2 {
		t.Errorf("expected 2 slot 0 merges, got %d", len(slot0))
	}

	conflicted, _ := s.List(ctx, ListParams{Slot: -1, ConflictsOnly: true})
	if len(conflicted) != 1 || conflicted[0].Conflicts != 4 {
		t.Errorf("expected the conflicted merge only, got %+v", conflicted)
	}

	limited, _ := s.List(ctx, ListParams{Slot: -1, Limit: 1})
	if len(limited) != 1 {
		t.Errorf("expected 1 with limit, got %d", len(limited))
	}
}

func TestListSameInstantKeepsInsertOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := record(t, s, RecordParams{Name: "a", CreatedAt: base})
	second := record(t, s, RecordParams{Name: "b", CreatedAt: base})

	got, _ := s.List(ctx, ListParams{Slot: -1})
	if len(got) != 2 || got[0].ID != second.ID || got[1].ID != first.ID {
		t.Fatalf("expected %s then %s, got %+v", second.ID, first.ID, got)
	}
}

func TestPruneKeep(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		record(t, s, RecordParams{Name: "filech2_0", Chapter: 2, CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Diagnostics: []model.DiagnosticRecord{{Kind: "max", Field: "flags", Message: "m"}}})
	}

	n, err := s.Prune(ctx, PruneParams{Keep: 2})
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 pruned, got %d", n)
	}

	left, _ := s.List(ctx, ListParams{Slot: -1})
	if len(left) != 2 {
		t.Fatalf("expected 2 left, got %d", len(left))
	}
	if !left[1].CreatedAt.Equal(base.Add(3 * time.Hour)) {
		t.Errorf("expected the newest to survive, got %v", left[1].CreatedAt)
	}

	var orphans int
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM diagnostics WHERE merge_id NOT IN (SELECT id FROM merges)`).Scan(&orphans)
	if orphans != 0 {
		t.Errorf("expected diagnostics to be removed with their merge, %d left", orphans)
	}
}

func TestPruneBefore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	record(t, s, RecordParams{Name: "old", CreatedAt: base})
	record(t, s, RecordParams{Name: "new", CreatedAt: base.Add(48 * time.Hour)})

	n, err := s.Prune(ctx, PruneParams{Before: base.Add(24 * time.Hour)})
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 pruned, got %d", n)
	}
	left, _ := s.List(ctx, ListParams{Slot: -1})
	if len(left) != 1 || left[0].Name != "new" {
		t.Errorf("expected only the new merge, got %+v", left)
	}
}

func TestPruneNegativeKeep(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Prune(context.Background(), PruneParams{Keep: -1}); err == nil {
		t.Fatal("expected error for negative keep")
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "journal.db")
	s, err := NewSQLiteStore(nested)
	if err != nil {
		t.Fatalf("expected nested dir creation, got: %v", err)
	}
	s.Close()
}
