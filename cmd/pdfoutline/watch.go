package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfoutline/internal/batch"
	"github.com/tsawler/pdfoutline/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process the input directory, then keep processing changes",
	Long: `Process the input directory once, then watch it and process PDFs as
they are added or modified. Removing a PDF removes its result.

Edits to the config file take effect for the next document; the input and
output directories stay fixed until restart. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := loadConfig(cmd)
		if err != nil {
			return fail(err)
		}
		cfg := cm.Get()
		logger := newLogger(cfg, os.Stderr)

		runner := batch.New(cfg, logger)
		if cm.ConfigFile() != "" {
			cm.OnChange(func(c *config.Config) {
				logger.Info("config reloaded", "path", cm.ConfigFile())
				runner.SetConfig(c)
			})
			cm.WatchConfig()
		}

		if err := runner.Watch(cmd.Context()); err != nil {
			return fail(err)
		}
		return nil
	},
}
