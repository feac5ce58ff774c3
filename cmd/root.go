// Package cmd provides the root command and CLI setup for mutaprompt.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mutaprompt/internal/adapter"
	"gooze.dev/pkg/mutaprompt/internal/controller"
	"gooze.dev/pkg/mutaprompt/internal/domain"
	m "gooze.dev/pkg/mutaprompt/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var treeAdapter adapter.SyntaxTreeAdapter
var changeSetAdapter adapter.ChangeSetAdapter
var reportStore adapter.ReportStore
var mutagen domain.Mutagen
var aggregator domain.Aggregator
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for every analysis.
var excludePatterns []string

// verboseFlag enables debug logging to the log file and stderr.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

var parallelFlag int
var changedFlag bool
var baseFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	treeAdapter = adapter.NewTreeSitterAdapter()
	changeSetAdapter = adapter.NewGitChangeSetAdapter(".")
	reportStore = adapter.NewReportStore()
	mutagen = domain.NewMutagen()
	aggregator = domain.NewAggregator(fsAdapter, treeAdapter, mutagen)
	workflow = domain.NewWorkflow(
		fsAdapter,
		changeSetAdapter,
		reportStore,
		ui,
		aggregator,
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./src ./lib    scan the top level of multiple directories
  - src/clamp.ts   a single file

Recognized sources: .ts .mts .cts .tsx .js .jsx .mjs .cjs. Test files
(*.test.*, *.spec.*, __tests__/) and node_modules, dist, build, coverage
and .git directories are skipped.

With --changed (or --base REF) the files changed in git are analyzed
instead of the path arguments.`

const rootLongDescription = `Mutaprompt finds the places in TypeScript and JavaScript code where a small
change (a mutant) would introduce a plausible bug, groups identical bug
patterns and turns them into a prompt for writing tests that catch them.

` + pathPatternsHelp

const generateLongDescription = `Generate a mutation report for the given paths (default: ./...).

The default markdown report is written for humans and AI assistants alike;
json and yaml follow the schema printed by "mutaprompt schema".

` + pathPatternsHelp

const listLongDescription = `List analyzed files and their mutant counts by kind.

` + pathPatternsHelp

const browseLongDescription = `Browse mutant groups interactively. Without a terminal the markdown
report is printed instead.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "mutaprompt",
		Short:         "Mutation prompts for TypeScript and JavaScript",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "debug logging, also printed to stderr")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files analyzed in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.PersistentFlags().BoolVar(&changedFlag, changedFlagName, false, "analyze files changed in git instead of paths")

	cmd.PersistentFlags().StringVar(&baseFlag, baseFlagName, viper.GetString(baseConfigKey), "git revision the change-set is computed against (implies --changed)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(baseFlagName), baseConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// analyzeArgs collects the analysis selection shared by every command.
func analyzeArgs(args []string) domain.AnalyzeArgs {
	return domain.AnalyzeArgs{
		Paths:   parsePaths(args),
		Exclude: viper.GetStringSlice(excludeConfigKey),
		Changed: changedFlag,
		Base:    viper.GetString(baseConfigKey),
		Threads: viper.GetInt(parallelConfigKey),
	}
}
