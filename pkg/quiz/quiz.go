// Package quiz validates quiz definition files.
//
// A quiz file has one [CONFIG] section with the game settings and one
// section per question:
//
//	[CONFIG]
//	QuestionsPerDificultLevel=1
//	RandomQuestionsOrder=true
//	MaxDificult=2
//	GameOverOnFirstError=false
//
//	[Q1]
//	Dificult=1
//	Question=2+2?
//	Answer=1
//	1=4
//	2=5
//
// Answer names the option item holding the right answer.
package quiz

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/inikit/internal/platform"
	"github.com/aretw0/inikit/pkg/core"
	"github.com/aretw0/inikit/pkg/typed"
)

// ConfigSection holds the game settings. Every other section is a question.
const ConfigSection = "CONFIG"

// Settings are the required game settings.
type Settings struct {
	QuestionsPerDificultLevel int  `ini:",required"`
	RandomQuestionsOrder      bool `ini:",required"`
	MaxDificult               int  `ini:",required"`
	GameOverOnFirstError      bool `ini:",required"`
}

// Question is one question record.
type Question struct {
	Section  string   `ini:"-"`
	Dificult int      `ini:",required"`
	Question string   `ini:",required"`
	Answer   string   `ini:",required"`
	Options  []string `ini:"-"` // items 1, 2, ... in order

	// AnswerText is the value of the item Answer names. Validate fills it.
	AnswerText string `ini:"-"`
}

// Correct returns the value of the item Answer names.
// For a question that did not come from Validate, Answer is taken as an
// option number.
func (q Question) Correct() string {
	if q.AnswerText != "" {
		return q.AnswerText
	}
	n, err := strconv.Atoi(q.Answer)
	if err != nil || n < 1 || n > len(q.Options) {
		return ""
	}
	return q.Options[n-1]
}

// Quiz is a validated quiz definition.
type Quiz struct {
	Settings  Settings
	Questions []Question // file order, levels 1..MaxDificult only
}

// Level returns the questions of difficulty n, in file order.
func (q *Quiz) Level(n int) []Question {
	var out []Question
	for _, question := range q.Questions {
		if question.Dificult == n {
			out = append(out, question)
		}
	}
	return out
}

// Load opens path through reg and validates it.
// Unlike the registry, it refuses a missing file.
func Load(reg *platform.Registry, path string) (*Quiz, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	f, err := reg.Open(path, false)
	if err != nil {
		return nil, err
	}
	return Validate(f.Document())
}

// Validate checks doc against the quiz contract:
//   - [CONFIG] carries every Settings item with the right type and MaxDificult >= 1;
//   - every other section is a question with Dificult, Question, Answer and
//     at least two options numbered from 1, where Answer names an existing item;
//   - each level from 1 to MaxDificult has at least QuestionsPerDificultLevel
//     questions, and at least one.
//
// Questions outside 1..MaxDificult are checked but not kept.
func Validate(doc *core.Document) (*Quiz, error) {
	settings, err := typed.Decode[Settings](doc, ConfigSection)
	if err != nil {
		return nil, invalid(ConfigSection, err)
	}
	if settings.MaxDificult < 1 {
		return nil, &ValidationError{Section: ConfigSection, Item: "MaxDificult", Message: "must be at least 1"}
	}
	if settings.QuestionsPerDificultLevel < 0 {
		return nil, &ValidationError{Section: ConfigSection, Item: "QuestionsPerDificultLevel", Message: "must not be negative"}
	}

	q := &Quiz{Settings: settings}
	counts := make(map[int]int)
	for _, section := range doc.Sections() {
		if section == ConfigSection {
			continue
		}
		question, err := decodeQuestion(doc, section)
		if err != nil {
			return nil, err
		}
		if question.Dificult < 1 || question.Dificult > settings.MaxDificult {
			continue
		}
		counts[question.Dificult]++
		q.Questions = append(q.Questions, question)
	}

	need := max(settings.QuestionsPerDificultLevel, 1)
	for level := 1; level <= settings.MaxDificult; level++ {
		if counts[level] < need {
			return nil, &ValidationError{
				Section: ConfigSection,
				Item:    "MaxDificult",
				Message: fmt.Sprintf("level %d has %d questions, at least %d required", level, counts[level], need),
			}
		}
	}
	return q, nil
}

func decodeQuestion(doc *core.Document, section string) (Question, error) {
	question, err := typed.Decode[Question](doc, section)
	if err != nil {
		return Question{}, invalid(section, err)
	}
	question.Section = section

	for n := 1; ; n++ {
		v, ok := doc.Get(section, strconv.Itoa(n))
		if !ok {
			break
		}
		question.Options = append(question.Options, v)
	}
	if len(question.Options) < 2 {
		return Question{}, &ValidationError{
			Section: section,
			Item:    strconv.Itoa(len(question.Options) + 1),
			Message: "at least two options numbered from 1 are required",
		}
	}
	text, ok := doc.Deref(section, "Answer")
	if !ok {
		return Question{}, &ValidationError{
			Section: section,
			Item:    "Answer",
			Message: fmt.Sprintf("points to missing item %q", question.Answer),
		}
	}
	question.AnswerText = text
	return question, nil
}

// WriteSettings stores s in the [CONFIG] section of doc.
func WriteSettings(doc *core.Document, s Settings) error {
	return typed.Encode(doc, ConfigSection, s)
}

// WriteQuestion stores q, options included, in section q.Section of doc.
func WriteQuestion(doc *core.Document, q Question) error {
	if err := typed.Encode(doc, q.Section, q); err != nil {
		return err
	}
	for i, opt := range q.Options {
		if err := doc.Set(q.Section, strconv.Itoa(i+1), opt); err != nil {
			return err
		}
	}
	return nil
}
