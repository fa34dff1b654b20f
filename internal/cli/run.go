package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/sofi/internal/agent"
	"github.com/roach88/sofi/internal/config"
	"github.com/roach88/sofi/internal/sofi"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <feed>",
		Short: "Drive a request feed against the SQLite store",
		Long: `Reads an ordered request feed (YAML), imports subject/object entities
from the SQLite store for each record, drives the SOFI engine, exports the
resulting entities, and writes a result-sink document to stdout.

Example:
  sofi run ./requests.yaml --db ./sofi.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRun(opts *RunOptions, feedPath string, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	feed, err := config.LoadFeedYAML(feedPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load request feed", err)
	}

	store, err := agent.OpenSQLite(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer store.Close()

	eng := sofi.New(SlogObserver{})
	results, err := driveFeed(store, eng, feed)
	if err != nil {
		return WrapExitError(ExitCommandError, "request feed aborted", err)
	}

	out, err := config.WriteResultsYAML(results)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to encode results", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
