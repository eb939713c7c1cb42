// Package main provides the CLI entry point for pmsheet.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pmsheet-go/pkg/pmsheet"
	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/output"
)

func main() {
	// .env is optional; flag defaults fall back to built-ins without it.
	loadDotEnv(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pmsheet [dir]",
		Short: "Extract maintenance schedules from Excel workbooks",
		Long: `pmsheet reads every Excel workbook (*.xls*) in a directory, locates the
machine table and the linked machine sheets, and writes one JSON document
per workbook named output_<workbook>.json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Dir = args[0]
			}
			return run(cmd, cfg)
		},
		SilenceUsage: true,
	}

	bindFlags(rootCmd, &cfg)
	return rootCmd
}

func run(cmd *cobra.Command, cfg config) error {
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	attach, err := pmsheet.ParseHistoryAttach(cfg.HistoryAttach)
	if err != nil {
		return err
	}
	reader, err := pmsheet.ParseReader(cfg.Reader)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	opts := pmsheet.DefaultOptions()
	opts.HistoryAttach = attach
	opts.Reader = reader
	opts.Vocabulary.MinHeaderMatches = cfg.MinHeaderMatches
	opts.Logger = logger

	stdout := cmd.OutOrStdout()

	files, err := pmsheet.Discover(cfg.Dir)
	if err != nil {
		return fmt.Errorf("failed to list workbooks: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintf(stdout, "No Excel files found in %s.\n", cfg.Dir)
		return nil
	}

	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	runner := &pmsheet.Runner{
		Options: opts,
		Format:  format,
		OutDir:  cfg.OutDir,
		Console: stdout,
	}
	results := runner.Run(files)

	succeeded, failed := pmsheet.Summary(results)
	fmt.Fprintf(stdout, "Processed %d file(s): %d succeeded, %d failed.\n", len(results), succeeded, failed)
	return nil
}
