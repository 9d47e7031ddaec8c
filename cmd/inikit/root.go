package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/inikit"
	"github.com/aretw0/inikit/pkg/core"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "inikit",
	Short: "Read and edit sectioned key=value files without losing their layout",
	Long: `inikit edits INI-style configuration files in place.
Only the lines whose values change are rewritten; comments, blank lines and
unknown content are kept as they are.

Flags can also be set through the environment, e.g. INIKIT_FILE=game.ini.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("file", "f", "Quiz.ini", "Configuration file to operate on")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("enclosers", "{}", "Two characters around packed sub-items")
	for _, name := range []string{"file", "verbose", "enclosers"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func initConfig() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("INIKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}

// newRegistry builds the registry shared by a command run.
func newRegistry() *inikit.Registry {
	return inikit.NewRegistry(
		inikit.WithLogger(slog.Default()),
		inikit.WithEnclosers(core.ParseEnclosers(viper.GetString("enclosers"))),
	)
}

// targetPath resolves --file. A bare file name that is not in the working
// directory is looked up in the parent directories.
func targetPath() string {
	path := viper.GetString("file")
	if filepath.Base(path) != path {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	found, err := inikit.FindFile(wd, path)
	if err != nil {
		return path
	}
	slog.Debug("using file from parent directory", "path", found)
	return found
}

// openTarget opens --file in a fresh registry.
func openTarget() (*inikit.Registry, *inikit.File) {
	reg := newRegistry()
	f, err := reg.Open(targetPath(), false)
	if err != nil {
		fatal("Error opening file", err)
	}
	return reg, f
}

// requireSection exits when a command addresses a section that does not exist.
func requireSection(f *inikit.File, section string) {
	if !f.HasSection(section) {
		fatal("Error", fmt.Errorf("[%s]: %w", section, core.ErrSectionNotFound))
	}
}

var errNotFound = errors.New("not found")
