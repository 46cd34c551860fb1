// Package cli implements the deltakit CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rcliao/deltakit/internal/config"
	"github.com/rcliao/deltakit/internal/store"
)

var (
	dbPath     string
	formatFlag string
	verbose    bool

	cfg    = config.Default()
	logger = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "deltakit",
	Short: "Save file tooling for git",
	Long: `Inspect, merge and commit game save files kept in a git repository.

Register the merge driver with:

  git config merge.deltakit.driver "deltakit merge %O %A %B %L %P"

and mark saves with "filech*_* merge=deltakit" in .gitattributes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(".")
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Journal path (default: $DELTAKIT_DB or ~/.deltakit/journal.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

// Execute runs the root command and returns the process exit status. Any
// error from the merge command, including config and flag errors, maps to
// exitFailure since git reads other non-zero statuses as conflicts.
func Execute() int {
	cmd, err := RootCmd.ExecuteC()
	if err == nil {
		return 0
	}
	if cmd != nil && cmd.Name() == mergeCmdName {
		return exitFailure
	}
	return 1
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl.SetLevel(zapcore.DebugLevel)
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.Level = lvl
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return config.Build()
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func jsonOutput() bool {
	return formatFlag == "json"
}

func printJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
