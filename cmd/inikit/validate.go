package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/inikit/pkg/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate [pattern...]",
	Short: "Check quiz files against the quiz contract",
	Long: `Check that a file can start a quiz: a [CONFIG] section with every setting,
well formed questions, and enough questions for each difficulty level.

Without arguments the file given by --file is checked. Patterns may use ** to
match any number of directories, e.g. 'quizzes/**/*.ini'.`,
	Run: func(cmd *cobra.Command, args []string) {
		reg := newRegistry()

		if len(args) == 0 {
			path := targetPath()
			q, err := quiz.Load(reg, path)
			if err != nil {
				fatal("Invalid quiz "+path, err)
			}
			fmt.Printf("ok %s (%d questions, %d levels)\n", path, len(q.Questions), q.Settings.MaxDificult)
			return
		}

		failed := 0
		for _, pattern := range args {
			files, err := reg.OpenGlob(pattern)
			if err != nil {
				fatal("Error opening files", err)
			}
			if len(files) == 0 {
				fmt.Printf("no files match %s\n", pattern)
				failed++
				continue
			}
			for _, f := range files {
				q, err := quiz.Validate(f.Document())
				if err != nil {
					var ve *quiz.ValidationError
					if !errors.As(err, &ve) {
						fatal("Error validating "+f.Path(), err)
					}
					fmt.Printf("FAIL %s: %v\n", f.Path(), err)
					failed++
					continue
				}
				fmt.Printf("ok %s (%d questions, %d levels)\n", f.Path(), len(q.Questions), q.Settings.MaxDificult)
			}
		}
		if failed > 0 {
			fatal("Error", fmt.Errorf("%d file(s) failed validation", failed))
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
