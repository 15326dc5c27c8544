package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set via -ldflags at build time
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cornstats version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cornstats", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
