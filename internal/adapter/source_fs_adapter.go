// Package adapter contains the infrastructure behind the mutation engine:
// filesystem access, parsing, change-set discovery and report storage.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

const recursiveSuffix = "/..."

// skippedDirs are never descended into when expanding directories.
var skippedDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"dist":         {},
	"build":        {},
	"coverage":     {},
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get resolves path arguments into candidate source files. Directories
	// are expanded (recursively for the "dir/..." form); explicit files are
	// kept even when they do not exist so the caller decides how to drop them.
	Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Walk traverses root. When recursive is false only the root directory
	// itself is listed.
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the SourceFSAdapter backed by the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get expands paths into an ordered, de-duplicated list of candidates.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Path, error) {
	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})
	result := make([]m.Path, 0, len(paths))

	add := func(path m.Path) {
		if isExcluded(path, patterns) {
			slog.Debug("Excluded source", "path", path)
			return
		}

		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		result = append(result, path)
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		expanded, err := a.expand(ctx, path)
		if err != nil {
			return nil, err
		}

		for _, candidate := range expanded {
			add(candidate)
		}
	}

	return result, nil
}

func (a *LocalSourceFSAdapter) expand(ctx context.Context, path m.Path) ([]m.Path, error) {
	root, recursive := splitRecursive(path)

	info, err := a.FileInfo(ctx, root)
	if err != nil || !info.IsDir() {
		if recursive {
			return nil, fmt.Errorf("path %s is not a directory", root)
		}

		return []m.Path{path}, nil
	}

	var files []m.Path

	err = a.Walk(ctx, root, recursive, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, skip := skippedDirs[info.Name()]; skip && p != string(root) {
				return filepath.SkipDir
			}

			return nil
		}

		candidate := m.Path(p)
		if IsSupportedSource(candidate) && !IsTestFile(candidate) {
			files = append(files, candidate)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func splitRecursive(path m.Path) (m.Path, bool) {
	p := filepath.ToSlash(string(path))
	if p == "..." {
		return ".", true
	}

	if strings.HasSuffix(p, recursiveSuffix) {
		root := strings.TrimSuffix(p, recursiveSuffix)
		if root == "" {
			root = "/"
		}

		return m.Path(filepath.FromSlash(root)), true
	}

	return path, false
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func isExcluded(path m.Path, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(filepath.ToSlash(string(path))) {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path is a user-selected source file
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// IsTestFile reports whether path looks like a unit test file
// (foo.test.ts, foo.spec.js, anything under __tests__).
func IsTestFile(path m.Path) bool {
	slashed := filepath.ToSlash(string(path))
	if strings.Contains("/"+slashed, "/__tests__/") {
		return true
	}

	base := strings.ToLower(filepath.Base(slashed))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return strings.HasSuffix(stem, ".test") || strings.HasSuffix(stem, ".spec")
}
