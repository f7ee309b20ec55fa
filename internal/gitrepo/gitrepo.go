// Package gitrepo reads commit-scoped file information from the enclosing
// git repository by shelling out to the git CLI.
package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotARepository is returned when the working directory is not inside
// a git work tree.
var ErrNotARepository = errors.New("not inside a git repository")

// Root returns the absolute path of the repository containing the current
// working directory.
func Root(ctx context.Context) (string, error) {
	out, err := runGit(ctx, "", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotARepository, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ModifiedFiles lists the paths added or modified by the given commit,
// relative to the repository root, in the order git reports them.
func ModifiedFiles(ctx context.Context, root, commit string) ([]string, error) {
	out, err := runGit(ctx, root,
		"diff-tree", "--no-commit-id", "--name-only", "--diff-filter=AM", "-r", commit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list files modified at %s: %w", commit, err)
	}

	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// Show returns the content of path as it exists at the given commit.
func Show(ctx context.Context, root, commit, path string) ([]byte, error) {
	out, err := runGit(ctx, root, "show", commit+":"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s at %s: %w", path, commit, err)
	}
	return out, nil
}

func runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("git %s: %s", args[0], msg)
		}
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return out, nil
}
