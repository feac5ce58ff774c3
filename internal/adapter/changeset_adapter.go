package adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

const defaultBaseRef = "HEAD"

// ChangeSetAdapter resolves the files changed relative to a git revision.
type ChangeSetAdapter interface {
	// ChangedFiles returns changed source files, excluding test files, in the
	// order git reports them. An empty base compares the working tree to
	// HEAD and also includes untracked files.
	ChangedFiles(ctx context.Context, base string) ([]m.Path, error)
}

// CommandRunner executes an external command and returns its stdout.
type CommandRunner func(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

// GitChangeSetAdapter is a ChangeSetAdapter backed by the git CLI.
type GitChangeSetAdapter struct {
	workDir string
	timeout time.Duration
	run     CommandRunner
}

// NewGitChangeSetAdapter constructs a GitChangeSetAdapter rooted at workDir
// with a default 30s timeout per git invocation.
func NewGitChangeSetAdapter(workDir string) *GitChangeSetAdapter {
	return &GitChangeSetAdapter{
		workDir: workDir,
		timeout: 30 * time.Second,
		run:     runCommand,
	}
}

// WithRunner replaces the command runner, mainly for tests.
func (a *GitChangeSetAdapter) WithRunner(run CommandRunner) *GitChangeSetAdapter {
	a.run = run
	return a
}

// ChangedFiles lists changed, non-test source files.
func (a *GitChangeSetAdapter) ChangedFiles(ctx context.Context, base string) ([]m.Path, error) {
	ref := strings.TrimSpace(base)
	if ref == "" {
		ref = defaultBaseRef
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	out, err := a.run(ctx, a.workDir, "git", "diff", "--name-only", "--relative", "--diff-filter=ACMR", ref)
	if err != nil {
		return nil, fmt.Errorf("failed to diff against %s: %w", ref, err)
	}

	names := splitLines(out)

	if strings.TrimSpace(base) == "" {
		untracked, err := a.run(ctx, a.workDir, "git", "ls-files", "--others", "--exclude-standard")
		if err != nil {
			return nil, fmt.Errorf("failed to list untracked files: %w", err)
		}

		names = append(names, splitLines(untracked)...)
	}

	seen := make(map[m.Path]struct{}, len(names))
	files := make([]m.Path, 0, len(names))

	for _, name := range names {
		path := m.Path(filepath.Join(a.workDir, filepath.FromSlash(name)))
		if !IsSupportedSource(path) || IsTestFile(path) {
			continue
		}

		if _, ok := seen[path]; ok {
			continue
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	return files, nil
}

func splitLines(out []byte) []string {
	var lines []string

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

func runCommand(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}
