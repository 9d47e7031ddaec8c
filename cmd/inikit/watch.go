package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/inikit/pkg/adapters/lifecycle"
	"github.com/aretw0/inikit/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes made to the file by other programs",
	Long: `Watch the file until interrupted. Each change is printed and the file is
reloaded; with --verbose the reloaded item count is logged.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, f := openTarget()
		defer f.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		src := lifecycle.NewSource(f, slog.Default())
		if err := src.Start(ctx); err != nil {
			fatal("Error watching file", err)
		}
		slog.Info("watching", "path", f.Path())

		for e := range src.Events() {
			fmt.Println(e)
			if event, ok := e.(core.Event); ok && event.Type != core.EventDelete {
				slog.Debug("reloaded", "path", f.Path(), "sections", f.Document().Len())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
