package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [section] [item]",
	Short: "Remove an item, or a whole section",
	Long: `Remove an item and its line. Without an item the whole section is
removed: its header, its items and anything else in its block.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		section := args[0]
		_, f := openTarget()

		var (
			removed bool
			err     error
		)
		if len(args) == 2 {
			removed, err = f.Remove(section, args[1], true)
		} else {
			removed, err = f.RemoveSection(section, true)
		}
		if err != nil {
			fatal("Error deleting", err)
		}
		if !removed {
			fatal("Error deleting", fmt.Errorf("%v: %w", args, errNotFound))
		}
		slog.Info("deleted", "args", args)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
