package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rcliao/deltakit/internal/merge"
	"github.com/rcliao/deltakit/internal/model"
	"github.com/rcliao/deltakit/internal/save"
	"github.com/rcliao/deltakit/internal/store"
)

// Merge driver exit statuses, as git expects them.
const (
	exitClean     = 0
	exitConflicts = 1
	exitFailure   = 255
)

const mergeCmdName = "merge"

func init() {
	cmd := &cobra.Command{
		Use:   mergeCmdName + " <ancestor> <ours> <theirs> <marker-length> <output-name>",
		Short: "Merge two save files (git merge driver)",
		Long: `Merge theirs into ours, field by field, and write the result over ours.

Git calls this as "deltakit merge %O %A %B %L %P". An empty or missing
ancestor selects a two-way merge. Exits 0 when the merge is clean, 1 when
conflict markers were written and 255 on failure.`,
		Args: cobra.ArbitraryArgs,
		Run:  runMerge,
	}

	cmd.Flags().IntP("chapter", "c", 0, "Chapter of the saves (default: from the output name)")
	cmd.Flags().Bool("no-journal", false, "Do not record the merge in the journal")
	cmd.Flags().Bool("legacy-armor", false, "Reconcile armors against theirs' weapons, like the first releases")

	RootCmd.AddCommand(cmd)
}

type mergeParams struct {
	Ancestor     string
	Ours         string
	Theirs       string
	MarkerLength int
	Name         string
	Chapter      int // 0 means from Name
	LegacyArmor  bool
}

func runMerge(cmd *cobra.Command, args []string) {
	if len(args) != 5 {
		logger.Error("usage: deltakit merge <ancestor> <ours> <theirs> <marker-length> <output-name>",
			zap.Int("args", len(args)))
		_ = logger.Sync()
		os.Exit(exitFailure)
	}

	chapter, _ := cmd.Flags().GetInt("chapter")
	noJournal, _ := cmd.Flags().GetBool("no-journal")
	legacy, _ := cmd.Flags().GetBool("legacy-armor")

	markerLength := cfg.MarkerLength
	if args[3] != "" {
		n, err := strconv.Atoi(args[3])
		if err != nil || n < 1 {
			logger.Error("invalid marker length", zap.String("value", args[3]))
			_ = logger.Sync()
			os.Exit(exitFailure)
		}
		markerLength = n
	}

	var journal store.Store
	if cfg.Journal && !noJournal {
		s, err := openStore()
		if err != nil {
			logger.Warn("journal unavailable", zap.String("db", getDBPath()), zap.Error(err))
		} else {
			journal = s
		}
	}

	code := runMergeDriver(cmd.Context(), mergeParams{
		Ancestor:     args[0],
		Ours:         args[1],
		Theirs:       args[2],
		MarkerLength: markerLength,
		Name:         args[4],
		Chapter:      chapter,
		LegacyArmor:  legacy || cfg.LegacyArmorMerge,
	}, logger, journal)

	if journal != nil {
		journal.Close()
	}
	_ = logger.Sync()
	if code != exitClean {
		os.Exit(code)
	}
}

// runMergeDriver merges the theirs file into the ours file and returns the
// exit status for git. journal may be nil. A panic is reported as
// exitFailure.
func runMergeDriver(ctx context.Context, p mergeParams, log *zap.Logger, journal store.Store) (code int) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("merge panicked", zap.Any("panic", r), zap.Stack("stack"))
			code = exitFailure
		}
	}()

	chapter, slot, err := resolveChapter(p.Name, p.Chapter, log)
	if err != nil {
		log.Error("merge failed", zap.Error(err))
		return exitFailure
	}

	var ours, theirs, ancestor *save.SaveData
	var g errgroup.Group
	g.Go(func() (err error) {
		ours, err = decodeFile(p.Ours, chapter, false)
		return err
	})
	g.Go(func() (err error) {
		theirs, err = decodeFile(p.Theirs, chapter, false)
		return err
	})
	g.Go(func() (err error) {
		ancestor, err = decodeFile(p.Ancestor, chapter, true)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("merge failed", zap.Error(err))
		return exitFailure
	}

	mode := model.ModeThreeWay
	if ancestor == nil {
		mode = model.ModeTwoWay
	}
	log.Info("merging save",
		zap.Int("chapter", chapter), zap.Int("slot", slot), zap.String("mode", mode))
	log.Debug(ours.Info())

	merged, err := merge.Savefiles(ours, theirs, ancestor, merge.Options{
		Reporter: merge.ReporterFunc(func(d merge.Diagnostic) {
			log.Warn("merge diagnostic",
				zap.String("kind", string(d.Kind)),
				zap.String("field", d.Field),
				zap.String("message", d.Message))
		}),
		LegacyArmorSource: p.LegacyArmor,
	})
	if err != nil {
		log.Error("merge failed", zap.Error(err))
		return exitFailure
	}

	if err := writeMerged(p.Ours, merged.Render(p.MarkerLength)); err != nil {
		log.Error("write merged save", zap.String("path", p.Ours), zap.Error(err))
		return exitFailure
	}

	conflicts := merged.Conflicts()
	if journal != nil {
		_, err := journal.Record(ctx, store.RecordParams{
			Name:        p.Name,
			Chapter:     chapter,
			Slot:        slot,
			Mode:        mode,
			Lines:       len(merged.Lines),
			Conflicts:   conflicts,
			Diagnostics: diagnosticRecords(merged.Diagnostics),
		})
		if err != nil {
			log.Warn("record merge", zap.Error(err))
		}
	}

	if conflicts > 0 {
		log.Warn("conflicts written", zap.String("path", p.Name), zap.Int("conflicts", conflicts))
		return exitConflicts
	}
	log.Info("merged cleanly", zap.String("path", p.Name), zap.Int("diagnostics", len(merged.Diagnostics)))
	return exitClean
}

// writeMerged replaces the file at path, keeping its permissions.
func writeMerged(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func diagnosticRecords(diags []merge.Diagnostic) []model.DiagnosticRecord {
	out := make([]model.DiagnosticRecord, len(diags))
	for i, d := range diags {
		out[i] = model.DiagnosticRecord{Kind: string(d.Kind), Field: d.Field, Message: d.Message}
	}
	return out
}
