package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/inikit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of inikit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inikit version %s\n", inikit.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
