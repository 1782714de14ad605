package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathNotFound indicates the target path does not exist.
var ErrPathNotFound = errors.New("path does not exist")

// Runner executes git commands against a fixed repository directory and
// returns stdout. git.Client is the real implementation; tests use fakes.
type Runner interface {
	Output(ctx context.Context, args ...string) ([]byte, error)
}

// Result is the outcome of a single check: whether a problem was found and
// a human-readable detail string, possibly empty or multi-line.
type Result struct {
	Found  bool
	Detail string
}

// Target is a resolved, existing filesystem path under evaluation.
type Target struct {
	Path   string
	IsRepo bool
}

// ResolveTarget expands ~, makes the path absolute, verifies it exists and
// detects whether it contains version-control metadata at its root.
// Returns ErrPathNotFound if the path does not exist.
func ResolveTarget(path string) (Target, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return Target{}, err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return Target{}, err
	}

	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return Target{}, fmt.Errorf("%w: %s", ErrPathNotFound, abs)
		}
		return Target{}, err
	}

	// .git may be a directory (regular repo) or a file (worktree/submodule)
	_, err = os.Stat(filepath.Join(abs, ".git"))
	return Target{Path: abs, IsRepo: err == nil}, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
