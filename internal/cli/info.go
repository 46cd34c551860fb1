package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show a summary of a save file",
		Long:  "Decode a save file and print its chapter, names, money, room, play time and inventories.",
		Args:  cobra.ExactArgs(1),
		Run:   runInfo,
	}

	cmd.Flags().IntP("chapter", "c", 0, "Chapter of the save (default: from the file name)")

	RootCmd.AddCommand(cmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	chapter, _ := cmd.Flags().GetInt("chapter")

	s, err := readSave(args[0], chapter)
	if err != nil {
		exitErr("read save", err)
	}

	if jsonOutput() {
		printJSON(cmd.OutOrStdout(), s.Summary())
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), s.Info())
}
