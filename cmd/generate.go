package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mutaprompt/internal/domain"
	m "gooze.dev/pkg/mutaprompt/internal/model"
	"gooze.dev/pkg/mutaprompt/internal/report"
)

var formatFlag string
var flatFlag bool
var outputFlag string

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Generate a mutation report",
		Long:  generateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			return workflow.Generate(cmd.Context(), domain.GenerateArgs{
				AnalyzeArgs: analyzeArgs(args),
				Format:      format,
				Flat:        viper.GetBool(flatConfigKey),
				Output:      m.Path(outputFlag),
			})
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "report format: markdown, json or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().BoolVar(&flatFlag, flatFlagName, viper.GetBool(flatConfigKey), "list every mutant instead of grouping identical patterns")
	bindFlagToConfig(cmd.Flags().Lookup(flatFlagName), flatConfigKey)

	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", "", "write the report to a file instead of stdout")
}
