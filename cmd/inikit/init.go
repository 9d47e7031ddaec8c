package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/inikit/pkg/quiz"
)

var (
	initLevels int
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a quiz file with default settings and sample questions",
	Long: `Create a quiz file that passes validate: a [CONFIG] section and one sample
question per difficulty level. An existing file is only replaced with --force.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if initLevels < 1 {
			fatal("Error", fmt.Errorf("--levels must be at least 1"))
		}
		path := viper.GetString("file")
		if _, err := os.Stat(path); err == nil && !initForce {
			fatal("Error creating quiz", fmt.Errorf("%s already exists (use --force to replace it)", path))
		}

		reg := newRegistry()
		f, err := reg.Create(path)
		if err != nil {
			fatal("Error creating quiz", err)
		}

		doc := f.Document()
		settings := quiz.Settings{QuestionsPerDificultLevel: 1, MaxDificult: initLevels}
		if err := quiz.WriteSettings(doc, settings); err != nil {
			fatal("Error creating quiz", err)
		}
		for level := 1; level <= initLevels; level++ {
			q := quiz.Question{
				Section:  "Q" + strconv.Itoa(level),
				Dificult: level,
				Question: fmt.Sprintf("Sample question of level %d?", level),
				Answer:   "1",
				Options:  []string{"Right answer", "Wrong answer"},
			}
			if err := quiz.WriteQuestion(doc, q); err != nil {
				fatal("Error creating quiz", err)
			}
		}
		if err := f.Save(); err != nil {
			fatal("Error saving quiz", err)
		}
		slog.Info("quiz created", "path", path, "levels", initLevels)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().IntVar(&initLevels, "levels", 2, "Number of difficulty levels")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Replace an existing file")
}
