package cmd

import (
	"github.com/spf13/cobra"
)

// browseCmd represents the browse command.
var browseCmd = newBrowseCmd()

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [paths...]",
		Short: "Browse mutant groups interactively",
		Long:  browseLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Browse(cmd.Context(), analyzeArgs(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
