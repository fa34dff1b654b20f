package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/sofi/internal/agent"
	"github.com/roach88/sofi/internal/config"
	"github.com/roach88/sofi/internal/demo"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Database string
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <path>",
		Short: "Load entity and ACL definitions into the store",
		Long: `Loads entity documents (CUE directory or YAML file) via
internal/config and imports them into the SQLite store.

Example:
  sofi load ./entities.yaml --db ./sofi.db
  sofi load ./entities --db ./sofi.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func loadEntitySpecs(path string) ([]config.EntitySpec, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &config.LoadError{Code: config.ErrCodeNotFound, Path: path, Message: err.Error()}
	}
	if info.IsDir() {
		return config.LoadEntitiesCUE(path)
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return config.LoadEntitiesYAML(path)
	default:
		return nil, &config.LoadError{Code: config.ErrCodeLoadFailed, Path: path, Message: "unrecognized entity document extension, want .yaml/.yml or a CUE directory"}
	}
}

func runLoad(opts *LoadOptions, path string) error {
	specs, err := loadEntitySpecs(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load entities", err)
	}

	store, err := agent.OpenSQLite(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer store.Close()

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

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "loaded %d entities from %s\n", len(specs), path)
	}
	return nil
}
