package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/pixel-tools/cfgcheck/internal/flags"
)

// initRepo creates a throwaway git repository and makes it the working
// directory for the duration of the test.
func initRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}

	dir := t.TempDir()
	runGitCmd(t, dir, "init")
	runGitCmd(t, dir, "config", "user.email", "test@example.com")
	runGitCmd(t, dir, "config", "user.name", "Test")
	t.Chdir(dir)

	return dir
}

func commitFiles(t *testing.T, dir, message string, files map[string]string) string {
	t.Helper()

	for path, content := range files {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	runGitCmd(t, dir, "add", "-A")
	runGitCmd(t, dir, "commit", "-m", message)

	return strings.TrimSpace(runGitCmd(t, dir, "rev-parse", "HEAD"))
}

func runGitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return string(out)
}

// writeVocabulary writes a field-name vocabulary file outside the repo.
func writeVocabulary(t *testing.T, tokens ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "field_names.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(tokens, "\n")+"\n"), 0o644))
	return path
}

// writeConfigFile writes a .cfgcheck.toml with the given content and
// restores the sticky config-file flag value once the test finishes.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	prev := flags.ConfigFile
	t.Cleanup(func() {
		flags.ConfigFile = prev
	})

	path := filepath.Join(t.TempDir(), ".cfgcheck.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execCfgcheck executes the full command tree with the given args and
// returns the captured output along with the execution error.
func execCfgcheck(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd, err := NewRootCmd(hclog.NewNullLogger())
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	execErr := rootCmd.Execute()
	return out.String(), execErr
}

const supportBanner = "| !! Please see go/pixel-perf-thermal-preupload !! |"
