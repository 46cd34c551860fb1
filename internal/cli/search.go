package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/deltakit/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search merge diagnostics by keyword",
		Long:  "Search the fields and messages of recorded merge diagnostics, e.g. an item name that was dropped.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().String("kind", "", "Filter by diagnostic kind (delta, max, dropped)")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	kind, _ := cmd.Flags().GetString("kind")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		Query: query,
		Kind:  kind,
		Limit: limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		if len(results) == 0 {
			fmt.Fprintln(out, "[]")
			return
		}
		printJSON(out, results)
		return
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s  %s  [%s] merging %s: %s\n",
			r.Merge.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Merge.Name, r.Kind, r.Field, r.Message)
	}
}
