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

// ThermalCmd should be used to represent the 'thermal' command.
type ThermalCmd struct {
	*cmd.BaseCmd
	cfgLoader config.Loader

	commit     string
	fieldNames string
}

// NewThermalCmd creates a newly configured (Cobra) command.
func NewThermalCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ThermalCmd{
		BaseCmd:   baseCmd,
		cfgLoader: opts.ConfigLoader,
	}

	cobraCommand := &cobra.Command{
		Use:   "thermal --commit <sha> --field_names <path>",
		Short: "Validates thermal JSON configs modified by a commit",
		Long: "Validates thermal JSON configs modified by a commit: every field name " +
			"must appear in the vocabulary file, and each sensor's Combination, " +
			"Coefficient, CombinationType and CoefficientType arrays must agree in size.",
		RunE: c.run,
	}

	cobraCommand.Flags().StringVarP(&c.commit, "commit", "c", "", "commit to check")
	cobraCommand.Flags().StringVarP(&c.fieldNames, "field_names", "l", "", "path to the field name vocabulary file")

	return cobraCommand, nil
}

// run is configured (via NewThermalCmd) to be called by the Cobra framework when the command is executed.
func (c *ThermalCmd) run(cobraCmd *cobra.Command, _ []string) error {
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

func (c *ThermalCmd) check(ctx context.Context, cfg *config.Config) error {
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

	files, err := collectConfigFiles(ctx, commit, "thermal")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Debug("No thermal configs modified", "commit", commit)
		return nil
	}

	// Thermal consistency rules run per file as content is decoded, the
	// vocabulary walk follows over the whole set.
	for _, f := range files {
		var thCfg checker.ThermalConfig
		if err := json.Unmarshal(f.content, &thCfg); err != nil {
			return fmt.Errorf("Malformed JSON file %s with message %v", f.path, err)
		}
		if err := checker.CheckThermal(f.path, thCfg); err != nil {
			return fmt.Errorf("Thermal config check error: %s", err)
		}
	}

	vocabulary, err := vocab.Load(fieldNames)
	if err != nil {
		return err
	}

	for _, f := range files {
		if token, ok := jsonwalk.Check(f.content, vocabulary, jsonwalk.FieldNames); !ok {
			return fmt.Errorf("Thermal JSON field name check error: File %s: Unknown string: %s", f.path, token)
		}
	}

	logger.Debug("Thermal configs valid", "commit", commit, "files", len(files))
	return nil
}
