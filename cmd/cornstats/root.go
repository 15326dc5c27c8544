package main

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	flagDataPath string
	flagDataDir  string
	flagOutDir   string
)

var rootCmd = &cobra.Command{
	Use:   "cornstats",
	Short: "County-level analysis of precision-ag adoption and corn yields",
	Long: `cornstats runs a one-shot statistical analysis of the association between
precision-agriculture technology adoption and 2022 corn yields across U.S.
counties: cleaning, descriptives, figures, a Welch t-test and three OLS
models, with every result written to disk as a tidy table.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataPath, "data", "", "path to the raw delimited data file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "root directory for processed data")
	rootCmd.PersistentFlags().StringVar(&flagOutDir, "out", "", "root directory for tables and figures")
}
