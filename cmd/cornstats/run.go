package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/invertedv/cornstats"
	"github.com/invertedv/cornstats/internal/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the analysis pipeline once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// flags win over env and config file
		if flagDataPath != "" {
			cfg.DataPath = flagDataPath
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		if flagOutDir != "" {
			cfg.OutputDir = flagOutDir
		}

		lg := slog.New(slog.NewTextHandler(os.Stderr, nil))

		return cornstats.Run(cfg, lg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
