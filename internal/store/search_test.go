package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcliao/deltakit/internal/model"
)

func TestSearch_Basic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	record(t, s, RecordParams{Name: "filech2_0", Chapter: 2, CreatedAt: base,
		Diagnostics: []model.DiagnosticRecord{
			{Kind: "dropped", Field: "key item", Message: "could not add key item Starwalker to inventory"},
			{Kind: "delta", Field: "dark dollars", Message: "<<< o 1 ||| a 0 === t 1 >>> -> 2"},
		}})
	record(t, s, RecordParams{Name: "filech2_1", Chapter: 2, Slot: 1, CreatedAt: base.Add(time.Hour),
		Diagnostics: []model.DiagnosticRecord{
			{Kind: "dropped", Field: "weapon", Message: "could not add weapon Starwalker Sword to inventory"},
		}})

	results, err := s.Search(ctx, SearchParams{Query: "Starwalker"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Merge.Name != "filech2_1" {
		t.Errorf("expected newest merge first, got %s", results[0].Merge.Name)
	}
	if results[1].Field != "key item" {
		t.Errorf("expected key item diagnostic, got %q", results[1].Field)
	}

	byField, _ := s.Search(ctx, SearchParams{Query: "dark dollars"})
	if len(byField) != 1 || byField[0].Kind != "delta" {
		t.Errorf("expected field match, got %+v", byField)
	}

	byKind, _ := s.Search(ctx, SearchParams{Query: "", Kind: "delta"})
	if len(byKind) != 1 {
		t.Errorf("expected 1 delta diagnostic, got %d", len(byKind))
	}

	none, _ := s.Search(ctx, SearchParams{Query: "Egg"})
	if len(none) != 0 {
		t.Errorf("expected no results, got %d", len(none))
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	ctx := context.Background()

	s.Record(ctx, RecordParams{Name: "filech2_0", Chapter: 2, Mode: model.ModeThreeWay, CreatedAt: base,
		Diagnostics: []model.DiagnosticRecord{{Kind: "delta", Field: "dark dollars", Message: "m"}}})
	s.Record(ctx, RecordParams{Name: "filech2_0", Chapter: 2, Mode: model.ModeTwoWay, Conflicts: 3, CreatedAt: base.Add(time.Hour),
		Diagnostics: []model.DiagnosticRecord{
			{Kind: "max", Field: "dark dollars", Message: "m"},
			{Kind: "max", Field: "flags", Message: "m"},
		}})
	s.Record(ctx, RecordParams{Name: "filech1_2", Chapter: 1, Slot: 2, Mode: model.ModeThreeWay, CreatedAt: base})

	stats, err := s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalMerges != 3 || stats.CleanMerges != 2 || stats.ConflictedMerges != 1 {
		t.Fatalf("unexpected merge counts: %+v", stats)
	}
	if stats.TotalConflicts != 3 || stats.TotalDiagnostics != 3 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if len(stats.DiagnosticKinds) != 2 || stats.DiagnosticKinds[0].Kind != "max" {
		t.Fatalf("expected max first, got %+v", stats.DiagnosticKinds)
	}
	if len(stats.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(stats.Slots))
	}
	ch2 := stats.Slots[1]
	if ch2.Chapter != 2 || ch2.Merges != 2 || !ch2.LastMerge.Equal(base.Add(time.Hour)) {
		t.Fatalf("unexpected slot stats: %+v", ch2)
	}
	if stats.DBSizeBytes == 0 {
		t.Fatal("expected non-zero db size")
	}
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	s1, _ := NewSQLiteStore(filepath.Join(dir, "src.db"))
	defer s1.Close()
	ctx := context.Background()

	s1.Record(ctx, RecordParams{Name: "filech2_0", Chapter: 2, Mode: model.ModeThreeWay, CreatedAt: base,
		Diagnostics: []model.DiagnosticRecord{{Kind: "delta", Field: "time played", Message: "m"}}})
	s1.Record(ctx, RecordParams{Name: "filech2_1", Chapter: 2, Slot: 1, Mode: model.ModeTwoWay, CreatedAt: base.Add(time.Hour)})

	exported, err := s1.ExportAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(exported) != 2 {
		t.Fatalf("expected 2 exported, got %d", len(exported))
	}
	if exported[0].Name != "filech2_0" || len(exported[0].Diagnostics) != 1 {
		t.Fatalf("expected oldest first with diagnostics, got %+v", exported[0])
	}

	s2, _ := NewSQLiteStore(filepath.Join(dir, "dst.db"))
	defer s2.Close()

	n, err := s2.Import(ctx, exported)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2 imported, got %d", n)
	}

	// Importing the same export again is a no-op.
	n, err = s2.Import(ctx, exported)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("expected duplicates to be skipped, imported %d", n)
	}

	got, err := s2.Get(ctx, exported[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Diagnostics) != 1 || got.Diagnostics[0].Field != "time played" {
		t.Fatalf("diagnostics not imported: %+v", got.Diagnostics)
	}
	if !got.CreatedAt.Equal(base) {
		t.Fatalf("created_at not preserved: %v", got.CreatedAt)
	}
}

func TestImportInvalidMode(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Import(context.Background(), []model.MergeRecord{{ID: "x", Mode: "sideways"}})
	if err == nil {
		t.Fatal("expected error for invalid mode")
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{"30d", 30 * 24 * time.Hour, true},
		{"12h", 12 * time.Hour, true},
		{"45m", 45 * time.Minute, true},
		{"90s", 90 * time.Second, true},
		{"invalid", 0, false},
		{"", 0, false},
		{"7x", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseAge(tt.input)
		if tt.ok && err != nil {
			t.Errorf("ParseAge(%q) unexpected error: %v", tt.input, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseAge(%q) expected error", tt.input)
		}
		if got != tt.want {
			t.Errorf("ParseAge(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
