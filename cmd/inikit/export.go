package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/inikit/pkg/adapters/fs"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the file content in another format",
	Long: `Print the sections and items of the file as YAML or JSON, in file order.
All values are written as strings. Comments and unknown lines are not exported.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, ok := fs.DefaultSerializers()[exportFormat]
		if !ok {
			fatal("Error", fmt.Errorf("unknown format %q (want one of %s)", exportFormat, strings.Join(fs.Formats(), ", ")))
		}
		_, f := openTarget()

		data, err := s.Serialize(f.Document())
		if err != nil {
			fatal("Error exporting", err)
		}
		os.Stdout.Write(data)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "yaml", "Output format: ini, yaml or json")
}
