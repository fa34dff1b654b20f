package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/sofi/internal/agent"
	"github.com/roach88/sofi/internal/config"
	"github.com/roach88/sofi/internal/demo"
	"github.com/roach88/sofi/internal/sofi"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Entities string
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <feed>",
		Short: "Drive a request feed against an in-memory store",
		Long: `Same as "run", but against agent.Memory instead of a SQLite
database: a deterministic demonstration with no persistent state.

Example:
  sofi replay ./requests.yaml --entities ./entities.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Entities, "entities", "", "path to entity definitions (required)")
	_ = cmd.MarkFlagRequired("entities")

	return cmd
}

func runReplay(opts *ReplayOptions, feedPath string, cmd *cobra.Command) error {
	specs, err := loadEntitySpecs(opts.Entities)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load entities", err)
	}
	feed, err := config.LoadFeedYAML(feedPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load request feed", err)
	}

	store := agent.NewMemory()
	known := demo.KnownOps()
	for _, spec := range specs {
		e, err := spec.ToEntity(known)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("entity %q", spec.Name), err)
		}
		e.SetPayload(&demo.Data{Name: spec.Name, Data: spec.Data})
		if res, err := store.Export(spec.Name, e); !res.OK() {
			return WrapExitError(ExitCommandError, fmt.Sprintf("entity %q", spec.Name), err)
		}
	}

	eng := sofi.New(nil)
	results, err := driveFeed(store, eng, feed)
	if err != nil {
		return WrapExitError(ExitCommandError, "request feed aborted", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return formatter.Success(results)
	}
	return writeReplayText(formatter, results)
}

func writeReplayText(f *OutputFormatter, results []config.ResultRecord) error {
	titleCaser := cases.Title(language.English)
	for _, r := range results {
		status := "denied"
		if r.Allowed {
			status = "allowed"
		}
		if r.Error {
			status = "error"
		}
		fmt.Fprintf(f.Writer, "%s -> %s: %s (%s)\n",
			r.Subject, r.Object, titleCaser.String(r.OpKey), status)
	}
	return nil
}
