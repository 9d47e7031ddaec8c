package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the internal state of the registry and the open file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reg, _ := openTarget()
		defer reg.CloseAll()

		state := reg.State()
		switch inspectFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(state); err != nil {
				fatal("Error encoding state", err)
			}
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(state); err != nil {
				fatal("Error encoding state", err)
			}
			enc.Close()
		default:
			fatal("Error", fmt.Errorf("unknown format %q (want json or yaml)", inspectFormat))
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "json", "Output format: json or yaml")
}
