package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/mutaprompt/internal/report"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the json report",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the structure
of mutaprompt generate --format=json output. Useful for validating
output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

// schemaCmd represents the schema command.
var schemaCmd = newSchemaCmd()

func init() {
	rootCmd.AddCommand(schemaCmd)
}
