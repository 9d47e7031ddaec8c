package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/inikit/pkg/adapters/fs"
)

var importFormat string

var importCmd = &cobra.Command{
	Use:   "import [source]",
	Short: "Merge sections and items from a YAML, JSON or INI file",
	Long: `Read every item of source and write it into the file, then save.
Existing items are updated in place and new ones are appended, as with set.
The format defaults to the source file extension.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := args[0]
		format := importFormat
		if format == "" {
			format = strings.TrimPrefix(filepath.Ext(source), ".")
		}
		s, ok := fs.DefaultSerializers()[strings.ToLower(format)]
		if !ok {
			fatal("Error", fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(fs.Formats(), ", ")))
		}

		in, err := os.Open(source)
		if err != nil {
			fatal("Error opening source", err)
		}
		defer in.Close()
		src, err := s.Parse(in)
		if err != nil {
			fatal("Error parsing source", err)
		}

		_, f := openTarget()
		doc := f.Document()
		count := 0
		for _, section := range src.Sections() {
			if err := doc.AddSection(section); err != nil {
				fatal("Error importing", err)
			}
			for _, key := range src.Items(section) {
				v, _ := src.Get(section, key)
				if err := doc.Set(section, key, v); err != nil {
					fatal("Error importing", err)
				}
				count++
			}
		}
		if err := f.Save(); err != nil {
			fatal("Error saving file", err)
		}
		slog.Info("import complete", "source", source, "items", count)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importFormat, "format", "", "Source format: ini, yaml or json")
}
