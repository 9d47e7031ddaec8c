package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemsValues bool

var itemsCmd = &cobra.Command{
	Use:   "items [section]",
	Short: "List the items of a section in file order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		section := args[0]
		_, f := openTarget()
		requireSection(f, section)

		for _, key := range f.Items(section) {
			if itemsValues {
				v, _ := f.Read(section, key)
				fmt.Printf("%s=%s\n", key, v)
				continue
			}
			fmt.Println(key)
		}
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd)
	itemsCmd.Flags().BoolVar(&itemsValues, "values", false, "Print key=value pairs")
}
