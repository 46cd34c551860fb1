package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rcliao/deltakit/internal/model"
	"github.com/rcliao/deltakit/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded merges",
		Run:   runHistory,
	}

	cmd.Flags().IntP("chapter", "c", 0, "Filter by chapter")
	cmd.Flags().IntP("slot", "s", -1, "Filter by save slot")
	cmd.Flags().IntP("limit", "l", 20, "Max results")
	cmd.Flags().Bool("conflicts", false, "Only merges that wrote conflicts")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	chapter, _ := cmd.Flags().GetInt("chapter")
	slot, _ := cmd.Flags().GetInt("slot")
	limit, _ := cmd.Flags().GetInt("limit")
	conflictsOnly, _ := cmd.Flags().GetBool("conflicts")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.List(cmd.Context(), store.ListParams{
		Chapter:       chapter,
		Slot:          slot,
		ConflictsOnly: conflictsOnly,
		Limit:         limit,
	})
	if err != nil {
		exitErr("history", err)
	}

	if jsonOutput() {
		if records == nil {
			records = []model.MergeRecord{}
		}
		printJSON(cmd.OutOrStdout(), records)
		return
	}
	for _, r := range records {
		printRecordLine(cmd.OutOrStdout(), r)
	}
}

func printRecordLine(w io.Writer, r model.MergeRecord) {
	result := "clean"
	if !r.Clean() {
		result = fmt.Sprintf("%d conflicts", r.Conflicts)
	}
	fmt.Fprintf(w, "%s  %s  %s  ch%d/%d  %s  %s\n",
		r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Name, r.Chapter, r.Slot, r.Mode, result)
}
