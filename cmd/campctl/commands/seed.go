package commands

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgo/camp/internal/model"
	"github.com/forgo/camp/internal/service"
)

//go:embed seed.yaml
var defaultSeed []byte

func newSeedCmd(opts *options) *cobra.Command {
	var (
		file  string
		reset bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture data",
		Long: `Load activities, campers and signups from a YAML file in one transaction.
Without --file the built-in sample data is used.

Examples:
  campctl seed
  campctl seed --file fixtures.yaml --reset`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := defaultSeed
			if file != "" {
				var err error
				if raw, err = os.ReadFile(file); err != nil {
					return fmt.Errorf("failed to read seed file: %w", err)
				}
			}
			data, err := model.ParseSeedData(raw)
			if err != nil {
				return err
			}

			h, err := opts.open(cmd.Context(), cmd, true)
			if err != nil {
				return err
			}
			defer func() { _ = h.Close() }()

			result, err := service.NewSeederService(h.Store).Seed(cmd.Context(), data, reset)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			if reset {
				fmt.Fprintf(out, "deleted %d rows\n", result.Deleted)
			}
			fmt.Fprintf(out, "seeded %d activities, %d campers, %d signups in %dms\n",
				result.Activities, result.Campers, result.Signups, result.Duration)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file")
	cmd.Flags().BoolVar(&reset, "reset", false, "Delete existing campers and activities first")
	return cmd
}
