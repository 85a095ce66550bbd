package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/storage"
)

// options holds the global flags
type options struct {
	dbURI      string
	verbose    bool
	jsonOutput bool
}

// NewRootCmd builds the campctl command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "campctl",
		Short: "Camp database tooling",
		Long: `campctl manages the camp signup database.

Commands:
  migrate  - Apply the schema to the database
  schema   - Print the schema DDL
  seed     - Load activities, campers and signups from a YAML file`,
		SilenceUsage: true,
	}

	defaultURI := os.Getenv("DB_URI")
	if defaultURI == "" {
		defaultURI = database.DefaultURI
	}
	rootCmd.PersistentFlags().StringVar(&opts.dbURI, "db", defaultURI, "Database URI (sqlite://, postgres://, ws://)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(
		newMigrateCmd(opts),
		newSchemaCmd(opts),
		newSeedCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logger writes to stderr so command output stays parseable
func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// open connects to the configured database
func (o *options) open(ctx context.Context, cmd *cobra.Command, migrate bool) (*storage.Handle, error) {
	h, err := storage.Open(ctx, storage.Options{
		URI:     o.dbURI,
		Migrate: migrate,
		Logger:  o.logger(cmd.ErrOrStderr()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return h, nil
}
