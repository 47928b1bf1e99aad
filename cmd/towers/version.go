package main

import (
	"fmt"

	"github.com/aretw0/towers"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of towers",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "towers version %s\n", towers.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
