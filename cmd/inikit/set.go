package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	setNoSave bool
	setSub    string
)

var setCmd = &cobra.Command{
	Use:   "set [section] [item] [value]",
	Short: "Write the value of an item",
	Long: `Write the value of an item, creating the section if needed, and save.

Only the item's line changes in the file. New items are added at the end of
their section and new sections at the end of the file. With --sub the value
is stored as one packed {K=V} pair inside the item, keeping the others.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		section, item, value := args[0], args[1], args[2]
		_, f := openTarget()

		var err error
		if setSub != "" {
			sub := f.SubItems(section, item)
			sub.Set(setSub, value)
			err = f.WriteSubItems(section, item, sub, !setNoSave)
		} else {
			err = f.Write(section, item, value, !setNoSave)
		}
		if err != nil {
			fatal("Error writing item", err)
		}
		slog.Info("item written", "section", section, "item", item, "saved", !setNoSave)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().BoolVar(&setNoSave, "no-save", false, "Validate the write without saving")
	setCmd.Flags().StringVar(&setSub, "sub", "", "Store the value as this packed sub-item")
}
