package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// MutatedContext returns the mutant's context lines with the mutation
// applied. It reports false when the location falls outside the context.
func MutatedContext(mutant m.Mutant) (string, bool) {
	lines := strings.Split(mutant.Context.Text, "\n")
	first := mutant.Location.Start.Line - mutant.Context.StartLine
	last := mutant.Location.End.Line - mutant.Context.StartLine

	if first < 0 || last < first || last >= len(lines) {
		return "", false
	}

	head := []rune(lines[first])
	tail := []rune(lines[last])
	startCol := mutant.Location.Start.Column - 1
	endCol := mutant.Location.End.Column - 1

	if startCol < 0 || startCol > len(head) || endCol < 0 || endCol > len(tail) {
		return "", false
	}

	replacement := mutant.Replacement
	if mutant.IsRemoval() {
		replacement = ""
	}

	spliced := string(head[:startCol]) + replacement + string(tail[endCol:])

	mutated := make([]string, 0, len(lines))
	mutated = append(mutated, lines[:first]...)
	mutated = append(mutated, spliced)
	mutated = append(mutated, lines[last+1:]...)

	return strings.Join(mutated, "\n"), true
}

// Preview renders a unified diff between the mutant's context and the
// mutated context. Hunk line numbers are file line numbers.
func Preview(mutant m.Mutant) (string, error) {
	mutated, ok := MutatedContext(mutant)
	if !ok {
		return "", fmt.Errorf("mutant %s: location outside context", mutant.ID)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(mutant.Context.Text),
		B:        difflib.SplitLines(mutated),
		FromFile: string(mutant.FileName),
		ToFile:   string(mutant.FileName) + " (mutant " + mutant.ID + ")",
		Context:  1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff mutant %s: %w", mutant.ID, err)
	}

	return shiftHunks(diff, mutant.Context.StartLine-1), nil
}

var hunkHeader = regexp.MustCompile(`^@@ -(\d+)((?:,\d+)?) \+(\d+)((?:,\d+)?) @@`)

// shiftHunks offsets the line numbers of every hunk header by delta so they
// refer to the file rather than the context window.
func shiftHunks(diff string, delta int) string {
	if delta == 0 {
		return diff
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		match := hunkHeader.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		fromStart, _ := strconv.Atoi(match[1])
		toStart, _ := strconv.Atoi(match[3])
		lines[i] = fmt.Sprintf("@@ -%d%s +%d%s @@", fromStart+delta, match[2], toStart+delta, match[4]) + line[len(match[0]):]
	}

	return strings.Join(lines, "\n")
}
