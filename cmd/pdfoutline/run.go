package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfoutline/internal/batch"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process every PDF in the input directory once (default)",
	Long: `Process every PDF in the input directory once.

Results of PDFs no longer present in the input directory are deleted first.
A document that fails is logged and skipped; the run continues. The command
exits non-zero only when the input directory is missing or has no PDFs.`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cm, err := loadConfig(cmd)
	if err != nil {
		return fail(err)
	}
	cfg := cm.Get()
	logger := newLogger(cfg, os.Stderr)
	if f := cm.ConfigFile(); f != "" {
		logger.Debug("using config file", "path", f)
	}

	if _, err := batch.New(cfg, logger).Run(cmd.Context()); err != nil {
		return fail(err)
	}
	return nil
}
