package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/deltakit/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the merge journal as JSON",
		Long:  "Export every recorded merge, with its diagnostics, as a JSON array. The output can be read back with import.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}
	if records == nil {
		records = []model.MergeRecord{}
	}

	printJSON(cmd.OutOrStdout(), records)
}
