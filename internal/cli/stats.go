package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show journal statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		printJSON(out, stats)
		return
	}
	fmt.Fprintf(out, "Journal %s (%d bytes)\n", stats.DBPath, stats.DBSizeBytes)
	fmt.Fprintf(out, "Merges: %d (%d clean, %d with conflicts, %d conflicts total)\n",
		stats.TotalMerges, stats.CleanMerges, stats.ConflictedMerges, stats.TotalConflicts)
	fmt.Fprintf(out, "Diagnostics: %d\n", stats.TotalDiagnostics)
	for _, k := range stats.DiagnosticKinds {
		fmt.Fprintf(out, "  %-8s %d\n", k.Kind, k.Count)
	}
	for _, sl := range stats.Slots {
		fmt.Fprintf(out, "filech%d_%d: %d merges, %d conflicts, last %s\n",
			sl.Chapter, sl.Slot, sl.Merges, sl.Conflicts, sl.LastMerge.Local().Format("2006-01-02 15:04:05"))
	}
}
