package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gooze.dev/pkg/mutaprompt/internal/report"
)

func newTestGenerateRoot(t *testing.T, args ...string) (*cobra.Command, string) {
	t.Helper()

	dir := t.TempDir()

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newGenerateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"generate", "--log-file", filepath.Join(dir, "test.log")}, args...))
	t.Cleanup(func() { resetChangedFlags(cmd) })

	return cmd, dir
}

// resetChangedFlags hands the bound config keys back to their defaults once
// a test command has run.
func resetChangedFlags(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) { flag.Changed = false }

	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		sub.Flags().VisitAll(reset)
	}
}

func TestGenerateCmd_WritesJSONReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "reports", "report.json")

	cmd, _ := newTestGenerateRoot(t, "--format", "json", "--flat=false", "--output", out, "../examples/clamp")
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Files, 1)
	assert.Equal(t, "../examples/clamp/clamp.ts", string(doc.Files[0].Path))
	assert.Equal(t, 10, doc.Summary.Mutants)
	assert.Len(t, doc.Groups, 10)
}

func TestGenerateCmd_FlatYAML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.yaml")

	cmd, _ := newTestGenerateRoot(t, "--format", "yml", "--flat", "--output", out, "../examples/duplicate")
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "groups")
	assert.Len(t, raw["mutants"], 2)
}

func TestGenerateCmd_MarkdownExcludes(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.md")

	cmd, _ := newTestGenerateRoot(t, "--format", "markdown", "--flat=false", "-x", `b\.ts$`, "-o", out, "../examples/duplicate")
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Analyzed 1 file(s): 1 mutant(s) in 1 group(s).")
	assert.Contains(t, string(data), "## 1. BinaryOperator: `+` → `-` (×1)")
}

func TestGenerateCmd_InvalidFormat(t *testing.T) {
	cmd, _ := newTestGenerateRoot(t, "--format", "html", "../examples/clamp")

	err := cmd.Execute()
	assert.ErrorContains(t, err, "invalid format")
}

func TestGenerateCmd_Flags(t *testing.T) {
	cmd := newGenerateCmd()

	for _, name := range []string{formatFlagName, flatFlagName, outputFlagName} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}

	assert.Equal(t, "f", cmd.Flags().Lookup(formatFlagName).Shorthand)
	assert.Equal(t, "o", cmd.Flags().Lookup(outputFlagName).Shorthand)
}
