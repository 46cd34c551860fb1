package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/deltakit/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a recorded merge and its diagnostics",
		Long:  "Show one merge from the journal. Without an id the latest merge is shown.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	var id string
	if len(args) == 1 {
		id = args[0]
	} else {
		latest, err := s.List(cmd.Context(), store.ListParams{Slot: -1, Limit: 1})
		if err != nil {
			exitErr("show", err)
		}
		if len(latest) == 0 {
			exitErr("show", store.ErrNotFound)
		}
		id = latest[0].ID
	}

	rec, err := s.Get(cmd.Context(), id)
	if err != nil {
		exitErr("show", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		printJSON(out, rec)
		return
	}
	printRecordLine(out, *rec)
	for _, d := range rec.Diagnostics {
		fmt.Fprintf(out, "  [%s] merging %s: %s\n", d.Kind, d.Field, d.Message)
	}
}
