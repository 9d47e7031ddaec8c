package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	getDeref bool
	getSub   string
)

var getCmd = &cobra.Command{
	Use:   "get [section] [item]",
	Short: "Print the value of an item",
	Long: `Print the value of an item.

With --deref the value is read as the name of another item of the same
section, and that item is printed instead (e.g. the Answer of a question).
With --sub the value is read as packed {K=V} pairs and only K is printed.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		section, item := args[0], args[1]
		_, f := openTarget()

		var (
			value string
			ok    bool
		)
		switch {
		case getDeref:
			value, ok = f.Deref(section, item)
		case getSub != "":
			value, ok = f.SubItems(section, item).Get(getSub)
		default:
			value, ok = f.Read(section, item)
		}
		if !ok {
			fatal("Error reading item", fmt.Errorf("[%s] %s: %w", section, item, errNotFound))
		}
		fmt.Println(value)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getDeref, "deref", false, "Follow the value to the item it names")
	getCmd.Flags().StringVar(&getSub, "sub", "", "Print one packed sub-item of the value")
	getCmd.MarkFlagsMutuallyExclusive("deref", "sub")
}
