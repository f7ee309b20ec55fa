package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixel-tools/cfgcheck/internal/checker"
	"github.com/pixel-tools/cfgcheck/internal/cmd"
	cmdopts "github.com/pixel-tools/cfgcheck/internal/cmd/options"
	"github.com/pixel-tools/cfgcheck/internal/config"
	"github.com/pixel-tools/cfgcheck/internal/flags"
	"github.com/pixel-tools/cfgcheck/internal/jsonwalk"
	"github.com/pixel-tools/cfgcheck/internal/vocab"
)

// PowerHintCmd should be used to represent the 'powerhint' command.
type PowerHintCmd struct {
	*cmd.BaseCmd
	cfgLoader config.Loader

	commit     string
	fieldNames string
}

// NewPowerHintCmd creates a newly configured (Cobra) command.
func NewPowerHintCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &PowerHintCmd{
		BaseCmd:   baseCmd,
		cfgLoader: opts.ConfigLoader,
	}

	cobraCommand := &cobra.Command{
		Use:   "powerhint --commit <sha> --field_names <path>",
		Short: "Validates power-hint JSON configs modified by a commit",
		Long: "Validates power-hint JSON configs modified by a commit: every field name " +
			"must appear in the vocabulary file, node names must be unique, and action " +
			"references to nodes, values and other hints must resolve.",
		RunE: c.run,
	}

	cobraCommand.Flags().StringVarP(&c.commit, "commit", "c", "", "commit to check")
	cobraCommand.Flags().StringVarP(&c.fieldNames, "field_names", "l", "", "path to the field name vocabulary file")

	return cobraCommand, nil
}

// run is configured (via NewPowerHintCmd) to be called by the Cobra framework when the command is executed.
func (c *PowerHintCmd) run(cobraCmd *cobra.Command, _ []string) error {
	cfg, err := c.cfgLoader.Load(flags.ConfigFile)
	if err == nil {
		err = c.check(cobraCmd.Context(), cfg)
	}
	if err != nil {
		reportFailure(cobraCmd.OutOrStdout(), cfg.Link(), err)
		return errCheckFailed
	}

	return nil
}

func (c *PowerHintCmd) check(ctx context.Context, cfg *config.Config) error {
	logger, err := c.Logger()
	if err != nil {
		return err
	}

	commit := strings.TrimSpace(c.commit)
	if commit == "" {
		return fmt.Errorf("invalid commit provided")
	}

	fieldNames := strings.TrimSpace(c.fieldNames)
	if fieldNames == "" {
		fieldNames = cfg.FieldNames
	}
	if fieldNames == "" {
		return fmt.Errorf("no field names path provided")
	}

	files, err := collectConfigFiles(ctx, commit, "powerhint")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Debug("No powerhint configs modified", "commit", commit)
		return nil
	}

	parsed := make([]checker.PowerHintFile, 0, len(files))
	for _, f := range files {
		var phCfg checker.PowerHintConfig
		if err := json.Unmarshal(f.content, &phCfg); err != nil {
			return fmt.Errorf("Malformed JSON file %s with message %v", f.path, err)
		}
		parsed = append(parsed, checker.PowerHintFile{Path: f.path, Config: phCfg})
	}

	vocabulary, err := vocab.Load(fieldNames)
	if err != nil {
		return err
	}

	for _, f := range files {
		if token, ok := jsonwalk.Check(f.content, vocabulary, jsonwalk.FieldNames); !ok {
			return fmt.Errorf("powerhint JSON field name check error: File %s: Unknown string: %s", f.path, token)
		}
	}

	if err := checker.CheckPowerHint(parsed); err != nil {
		return fmt.Errorf("powerhint JSON field name check error: %s", err)
	}

	logger.Debug("Powerhint configs valid", "commit", commit, "files", len(files))
	return nil
}
