package main

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var sectionsMatch string

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List section names in file order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if sectionsMatch != "" && !doublestar.ValidatePattern(sectionsMatch) {
			fatal("Error", fmt.Errorf("invalid pattern %q: %w", sectionsMatch, doublestar.ErrBadPattern))
		}
		_, f := openTarget()

		for _, name := range f.Sections() {
			if sectionsMatch != "" {
				if ok, _ := doublestar.Match(sectionsMatch, name); !ok {
					continue
				}
			}
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	sectionsCmd.Flags().StringVar(&sectionsMatch, "match", "", "Only list sections matching a glob, e.g. 'Q*'")
}
