package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

const promptPreamble = `Each section below describes a small change ("mutant") that could be made
to the code under test. None of these changes have been applied. Write or
extend unit tests so that every mutant would make at least one test fail:
assert exact results, check both sides of every boundary and exercise both
branches of every condition. A test that still passes with the mutant in
place does not protect against that bug.

Patterns seen several times are listed once; a single well-placed test
usually covers every instance.`

// WriteMarkdown renders the analysis as a markdown prompt. With flat set,
// every mutant gets its own section; otherwise one section per group.
func WriteMarkdown(w io.Writer, analysis m.Analysis, flat bool) error {
	var b strings.Builder

	b.WriteString("# Mutation testing guide\n\n")
	b.WriteString(promptPreamble)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Analyzed %d file(s): %d mutant(s) in %d group(s).\n",
		len(analysis.Files), len(analysis.Mutants), len(analysis.Groups))

	if len(analysis.Mutants) == 0 {
		b.WriteString("\nNo mutants were found.\n")
	}

	if flat {
		for i, mutant := range analysis.Mutants {
			writeMutantSection(&b, i+1, mutant)
		}
	} else {
		for i, group := range analysis.Groups {
			writeGroupSection(&b, i+1, group)
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func writeGroupSection(b *strings.Builder, index int, group m.MutantGroup) {
	first := group.Representative()

	fmt.Fprintf(b, "\n## %d. %s: %s (×%d)\n\n", index, group.Signature.Kind, Headline(first), group.Count())
	fmt.Fprintf(b, "%s.\n\n", first.Description)
	fmt.Fprintf(b, "- Group: `%s`\n", group.ID())
	fmt.Fprintf(b, "- Expression: `%s`\n", group.Signature.Expression)
	fmt.Fprintf(b, "- First seen: `%s` (%s)\n", FormatLocation(first), first.ID)

	writeSnippet(b, first)

	if group.Count() > 1 {
		b.WriteString("\nAlso at:\n\n")

		for _, mutant := range group.Instances[1:] {
			fmt.Fprintf(b, "- `%s` (%s)\n", FormatLocation(mutant), mutant.ID)
		}
	}
}

func writeMutantSection(b *strings.Builder, index int, mutant m.Mutant) {
	fmt.Fprintf(b, "\n## %d. %s: %s\n\n", index, mutant.Kind, Headline(mutant))
	fmt.Fprintf(b, "%s.\n\n", mutant.Description)
	fmt.Fprintf(b, "- Mutant: %s\n", mutant.ID)
	fmt.Fprintf(b, "- Location: `%s`\n", FormatLocation(mutant))

	writeSnippet(b, mutant)
}

func writeSnippet(b *strings.Builder, mutant m.Mutant) {
	fmt.Fprintf(b, "\n```%s\n", FenceLanguage(mutant.FileName))

	for i, line := range strings.Split(mutant.Context.Text, "\n") {
		fmt.Fprintf(b, "%4d | %s\n", mutant.Context.StartLine+i, line)
	}

	b.WriteString("```\n")

	diff, err := Preview(mutant)
	if err != nil || diff == "" {
		return
	}

	b.WriteString("\n```diff\n")
	b.WriteString(strings.TrimRight(diff, "\n"))
	b.WriteString("\n```\n")
}

// Headline renders "original → replacement" for a mutant, collapsing
// multi-line originals.
func Headline(mutant m.Mutant) string {
	return fmt.Sprintf("`%s` → `%s`", m.NormalizeWhitespace(mutant.Original), mutant.Replacement)
}

// FormatLocation renders file:line:column of the mutant's start.
func FormatLocation(mutant m.Mutant) string {
	return fmt.Sprintf("%s:%d:%d", mutant.FileName, mutant.Location.Start.Line, mutant.Location.Start.Column)
}

// FenceLanguage returns the code fence language for a file.
func FenceLanguage(path m.Path) string {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".ts", ".mts", ".cts":
		return "ts"
	case ".tsx":
		return "tsx"
	case ".jsx":
		return "jsx"
	case ".js", ".mjs", ".cjs":
		return "js"
	}

	return ""
}
