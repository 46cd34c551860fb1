package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/deltakit/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old merges from the journal",
		Run:   runPrune,
	}

	cmd.Flags().Int("keep", -1, "Keep only the newest N merges")
	cmd.Flags().String("older-than", "", "Delete merges older than an age (e.g. 30d, 12h)")

	RootCmd.AddCommand(cmd)
}

func runPrune(cmd *cobra.Command, args []string) {
	keep, _ := cmd.Flags().GetInt("keep")
	olderThan, _ := cmd.Flags().GetString("older-than")

	p := store.PruneParams{Keep: keep}
	switch {
	case olderThan != "":
		age, err := store.ParseAge(olderThan)
		if err != nil {
			exitErr("prune", err)
		}
		p.Before = time.Now().Add(-age)
	case keep < 0:
		exitErr("prune", errors.New("one of --keep or --older-than is required"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Prune(cmd.Context(), p)
	if err != nil {
		exitErr("prune", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"pruned":%d}`+"\n", n)
}
