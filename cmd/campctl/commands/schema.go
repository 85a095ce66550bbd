package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgo/camp/internal/storage"
)

func newSchemaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the schema DDL",
		Long: `Print the statements migrate would apply for the --db backend.
No connection is made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ddl, err := storage.SchemaFor(opts.dbURI)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ddl)
			return nil
		},
	}
}
