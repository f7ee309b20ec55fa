// Package cmd wires up the cfgcheck command tree.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/pixel-tools/cfgcheck/internal/cmd"
	"github.com/pixel-tools/cfgcheck/internal/flags"
)

var version = "dev" // Set at build time using -ldflags

type RootCmd struct {
	*cmd.BaseCmd
}

// Execute runs the root command and returns the process exit code.
// Check commands print their own failure output (message plus support
// banner) to stdout before returning, so failures here only need to be
// translated into a non-zero exit.
func Execute() int {
	logger, err := configureLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error executing root command: %s\n", err)
		return 1
	}

	rootCmd, err := NewRootCmd(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error executing root command: %s\n", err)
		return 1
	}

	if err := rootCmd.Execute(); err != nil {
		if !isReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}

	return 0
}

func NewRootCmd(logger hclog.Logger) (*cobra.Command, error) {
	c := &RootCmd{
		BaseCmd: &cmd.BaseCmd{},
	}
	c.SetLogger(logger)

	rootCmd := &cobra.Command{
		Use:           "cfgcheck <command> [args]",
		Short:         "Preupload checks for Pixel power-hint and thermal JSON configs.",
		Long:          c.longDescription(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	powerHintCmd, err := NewPowerHintCmd(c.BaseCmd)
	if err != nil {
		return nil, err
	}
	thermalCmd, err := NewThermalCmd(c.BaseCmd)
	if err != nil {
		return nil, err
	}
	traceRCCmd, err := NewTraceRCCmd(c.BaseCmd)
	if err != nil {
		return nil, err
	}

	rootCmd.AddCommand(powerHintCmd)
	rootCmd.AddCommand(thermalCmd)
	rootCmd.AddCommand(traceRCCmd)

	return rootCmd, nil
}

func (c *RootCmd) longDescription() string {
	return `cfgcheck validates Pixel device configuration files before upload:
power-hint and thermal JSON configs are checked against a field-name
vocabulary and per-family consistency rules, and trace-rc generates the
init rc file that fixes vendor ftrace event permissions.`
}

func configureLogger() (hclog.Logger, error) {
	logPath := strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))

	// If CFGCHECK_LOG_PATH is not set, don't log anywhere.
	logOutput := io.Discard

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", logPath, err)
		}
		logOutput = f
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "cfgcheck",
		Level:  hclog.LevelFromString(getLogLevel()),
		Output: logOutput,
	})

	return logger, nil
}

func getLogLevel() string {
	lvl := strings.ToLower(os.Getenv(flags.EnvVarLogLevel))
	switch lvl {
	case "trace", "debug", "info", "warn", "error", "off":
		return lvl
	default:
		return "info"
	}
}
