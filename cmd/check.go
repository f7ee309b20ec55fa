package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pixel-tools/cfgcheck/internal/filter"
	"github.com/pixel-tools/cfgcheck/internal/gitrepo"
)

// errCheckFailed signals that a check command already reported its
// failure (message plus support banner) on stdout; callers only need to
// exit non-zero.
var errCheckFailed = errors.New("preupload check failed")

func isReported(err error) bool {
	return errors.Is(err, errCheckFailed)
}

// configFile is a collected config file's repository path and its content
// at the commit being checked. Collection order is preserved so failure
// messages are deterministic.
type configFile struct {
	path    string
	content []byte
}

// collectConfigFiles lists the JSON files touched by the commit whose
// path contains the family substring, and fetches each file's content at
// that commit.
func collectConfigFiles(ctx context.Context, commit, family string) ([]configFile, error) {
	root, err := gitrepo.Root(ctx)
	if err != nil {
		return nil, err
	}

	paths, err := gitrepo.ModifiedFiles(ctx, root, commit)
	if err != nil {
		return nil, err
	}
	paths = filter.Select(paths, filter.All(filter.Suffix(".json"), filter.Partial(family)))

	files := make([]configFile, 0, len(paths))
	for _, p := range paths {
		content, err := gitrepo.Show(ctx, root, commit, p)
		if err != nil {
			return nil, err
		}
		files = append(files, configFile{path: p, content: content})
	}

	return files, nil
}

// reportFailure prints the failure message followed by the fixed support
// banner. The hook UI surfaces stdout to the uploader, so this is the
// user-facing error report.
func reportFailure(w io.Writer, supportLink string, err error) {
	fmt.Fprintln(w, err)

	banner := fmt.Sprintf("| !! Please see %s !! |", supportLink)
	border := strings.Repeat("-", len(banner))
	fmt.Fprintln(w, border)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, border)
}
