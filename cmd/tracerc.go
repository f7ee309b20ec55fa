package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixel-tools/cfgcheck/internal/cmd"
	"github.com/pixel-tools/cfgcheck/internal/tracerc"
)

// TraceRCCmd should be used to represent the 'trace-rc' command.
type TraceRCCmd struct {
	*cmd.BaseCmd
}

// NewTraceRCCmd creates a newly configured (Cobra) command.
func NewTraceRCCmd(baseCmd *cmd.BaseCmd) (*cobra.Command, error) {
	c := &TraceRCCmd{
		BaseCmd: baseCmd,
	}

	cobraCommand := &cobra.Command{
		Use:   "trace-rc <categories-file>",
		Short: "Generates an init rc file fixing vendor ftrace event permissions",
		Long: "Generates an init .rc file that fixes the permissions for all the ftrace " +
			"events listed in the given atrace_categories.txt file. The script is written " +
			"to standard output.",
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}

	return cobraCommand, nil
}

// run is configured (via NewTraceRCCmd) to be called by the Cobra framework when the command is executed.
func (c *TraceRCCmd) run(cobraCmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open categories file (%s): %w", args[0], err)
	}
	defer func() {
		_ = f.Close()
	}()

	return tracerc.Generate(cobraCmd.OutOrStdout(), f)
}
