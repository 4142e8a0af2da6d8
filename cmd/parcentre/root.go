package main

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/pulsarkit/parcentre/internal/centre"
	"github.com/pulsarkit/parcentre/internal/config"
	"github.com/pulsarkit/parcentre/internal/messages"
)

// newRootCmd builds the parcentre command. The tool is single-purpose, so
// the root command carries the whole CLI surface.
func newRootCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		targetMJD  float64
		showDiff   bool
		diffLines  int
		dryRun     bool
		configPath string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   messages.RootUse,
		Short: messages.RootShort,
		Long:  messages.RootLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			if inputPath == "" {
				return fmt.Errorf(messages.RootInputRequired)
			}

			opts := centre.Options{
				Input:        inputPath,
				Output:       outputPath,
				Diff:         showDiff,
				DiffMaxLines: diffLines,
				DryRun:       dryRun,
				Quiet:        quiet,
				Out:          cmd.OutOrStdout(),
			}
			if cmd.Flags().Changed("epoch") {
				target := targetMJD
				opts.Epoch = &target
			}

			if configPath != "" {
				cfg, err := loadConfigAt(configPath)
				if err != nil {
					return err
				}
				applyConfig(&opts, cfg, cmd.Flags().Changed("diff-lines"))
			}

			for _, path := range []*string{&opts.Input, &opts.Output} {
				expanded, err := expandPath(*path)
				if err != nil {
					return err
				}
				*path = expanded
			}

			_, err := centre.Run(opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", messages.RootFlagInput)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", messages.RootFlagOutput)
	cmd.Flags().Float64VarP(&targetMJD, "epoch", "e", 0, messages.RootFlagEpoch)
	cmd.Flags().BoolVar(&showDiff, "diff", false, messages.RootFlagDiff)
	cmd.Flags().IntVar(&diffLines, "diff-lines", centre.DefaultDiffMaxLines, messages.RootFlagDiffLines)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.RootFlagDryRun)
	cmd.Flags().StringVar(&configPath, "config", "", messages.RootFlagConfig)
	cmd.Flags().BoolVar(&quiet, "quiet", false, messages.RootFlagQuiet)

	return cmd
}

// loadConfigAt expands and loads a parcentre.toml path.
func loadConfigAt(path string) (*config.Config, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return config.Load(expanded)
}

// applyConfig fills opts with config defaults for anything not set on the
// command line. Flags always win.
func applyConfig(opts *centre.Options, cfg *config.Config, diffLinesSet bool) {
	if opts.Output == "" && cfg.Output != "" {
		opts.Output = cfg.Output
	}
	if !diffLinesSet && cfg.DiffLines > 0 {
		opts.DiffMaxLines = cfg.DiffLines
	}
	opts.Ignore = append(opts.Ignore, cfg.Ignore...)
}

// expandPath resolves a leading ~ in path; empty paths pass through.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ExpandPathFmt, path, err)
	}
	return expanded, nil
}
