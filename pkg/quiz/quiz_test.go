package quiz_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/inikit/internal/platform"
	"github.com/aretw0/inikit/pkg/adapters/fs"
	"github.com/aretw0/inikit/pkg/core"
	"github.com/aretw0/inikit/pkg/quiz"
)

const validQuiz = `[CONFIG]
QuestionsPerDificultLevel=1
RandomQuestionsOrder=true
MaxDificult=2
GameOverOnFirstError=false

[Q1]
Dificult=1
Question=2+2?
Answer=1
1=4
2=5

[Q2]
Dificult=2
Question=Capital of France?
Answer=2
1=Rome
2=Paris
3=Berlin

[Q3]
Dificult=5
Question=Out of range
Answer=1
1=a
2=b
`

func parse(t *testing.T, content string) *core.Document {
	t.Helper()
	doc, err := fs.INISerializer{}.Parse(strings.NewReader(content))
	require.NoError(t, err)
	return doc
}

func TestValidate(t *testing.T) {
	q, err := quiz.Validate(parse(t, validQuiz))
	require.NoError(t, err)

	want := quiz.Settings{
		QuestionsPerDificultLevel: 1,
		RandomQuestionsOrder:      true,
		MaxDificult:               2,
		GameOverOnFirstError:      false,
	}
	if diff := cmp.Diff(want, q.Settings); diff != "" {
		t.Errorf("settings (-want +got):\n%s", diff)
	}

	wantQ2 := quiz.Question{
		Section:  "Q2",
		Dificult: 2,
		Question: "Capital of France?",
		Answer:   "2",
		Options:  []string{"Rome", "Paris", "Berlin"},

		AnswerText: "Paris",
	}
	if diff := cmp.Diff([]quiz.Question{wantQ2}, q.Level(2)); diff != "" {
		t.Errorf("level 2 (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Paris", wantQ2.Correct())
	assert.Len(t, q.Questions, 2, "questions above MaxDificult are not kept")
	assert.Empty(t, q.Level(5))
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(doc *core.Document)
		section string
		item    string
	}{
		{
			name:    "Missing Config",
			edit:    func(doc *core.Document) { doc.DeleteSection("CONFIG") },
			section: "CONFIG",
		},
		{
			name:    "Missing Setting",
			edit:    func(doc *core.Document) { doc.DeleteItem("CONFIG", "GameOverOnFirstError") },
			section: "CONFIG",
			item:    "GameOverOnFirstError",
		},
		{
			name:    "Setting Not An Int",
			edit:    func(doc *core.Document) { _ = doc.Set("CONFIG", "MaxDificult", "two") },
			section: "CONFIG",
			item:    "MaxDificult",
		},
		{
			name:    "Setting Not A Bool",
			edit:    func(doc *core.Document) { _ = doc.Set("CONFIG", "RandomQuestionsOrder", "sometimes") },
			section: "CONFIG",
			item:    "RandomQuestionsOrder",
		},
		{
			name:    "Zero Levels",
			edit:    func(doc *core.Document) { _ = doc.Set("CONFIG", "MaxDificult", "0") },
			section: "CONFIG",
			item:    "MaxDificult",
		},
		{
			name:    "Question Without Text",
			edit:    func(doc *core.Document) { doc.DeleteItem("Q1", "Question") },
			section: "Q1",
			item:    "Question",
		},
		{
			name:    "Bad Difficulty",
			edit:    func(doc *core.Document) { _ = doc.Set("Q1", "Dificult", "easy") },
			section: "Q1",
			item:    "Dificult",
		},
		{
			name:    "Single Option",
			edit:    func(doc *core.Document) { doc.DeleteItem("Q1", "2") },
			section: "Q1",
			item:    "2",
		},
		{
			name: "Options Not From One",
			edit: func(doc *core.Document) {
				doc.DeleteItem("Q2", "1")
			},
			section: "Q2",
			item:    "1",
		},
		{
			name:    "Dangling Answer",
			edit:    func(doc *core.Document) { _ = doc.Set("Q2", "Answer", "7") },
			section: "Q2",
			item:    "Answer",
		},
		{
			name:    "Empty Level",
			edit:    func(doc *core.Document) { doc.DeleteSection("Q2") },
			section: "CONFIG",
			item:    "MaxDificult",
		},
		{
			name:    "Too Few Per Level",
			edit:    func(doc *core.Document) { _ = doc.Set("CONFIG", "QuestionsPerDificultLevel", "2") },
			section: "CONFIG",
			item:    "MaxDificult",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, validQuiz)
			tt.edit(doc)

			_, err := quiz.Validate(doc)
			var ve *quiz.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.section, ve.Section)
			assert.Equal(t, tt.item, ve.Item)
			assert.Contains(t, err.Error(), "["+tt.section+"]")
		})
	}
}

func TestAnswerPointsToAnyItem(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		extra  [2]string
		want   string
	}{
		{"Named Item", "Right", [2]string{"Right", "4"}, "4"},
		{"Number Past The Options", "4", [2]string{"4", "four"}, "four"},
		{"Empty Target", "Blank", [2]string{"Blank", ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, validQuiz)
			require.NoError(t, doc.Set("Q1", tt.extra[0], tt.extra[1]))
			require.NoError(t, doc.Set("Q1", "Answer", tt.answer))

			q, err := quiz.Validate(doc)
			require.NoError(t, err)

			first := q.Level(1)[0]
			deref, ok := doc.Deref("Q1", "Answer")
			require.True(t, ok)
			assert.Equal(t, tt.want, first.Correct())
			assert.Equal(t, deref, first.Correct())
		})
	}
}

func TestValidateRejectsFractions(t *testing.T) {
	doc := parse(t, validQuiz)
	require.NoError(t, doc.Set("CONFIG", "MaxDificult", "1.9"))
	_, err := quiz.Validate(doc)
	var ve *quiz.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "MaxDificult", ve.Item)

	doc = parse(t, validQuiz)
	require.NoError(t, doc.Set("Q1", "Dificult", "1.5"))
	_, err = quiz.Validate(doc)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Q1", ve.Section)
	assert.Equal(t, "Dificult", ve.Item)
}

func TestLevelsCountedIndependently(t *testing.T) {
	// Two level-1 questions must not make up for a missing level-2 one.
	doc := parse(t, validQuiz)
	doc.DeleteSection("Q2")
	require.NoError(t, quiz.WriteQuestion(doc, quiz.Question{
		Section: "Q4", Dificult: 1, Question: "1+1?", Answer: "2", Options: []string{"1", "2"},
	}))

	_, err := quiz.Validate(doc)
	var ve *quiz.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "level 2")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	reg := platform.NewRegistry()

	t.Run("Missing File", func(t *testing.T) {
		_, err := quiz.Load(reg, filepath.Join(dir, "missing.ini"))
		assert.True(t, errors.Is(err, quiz.ErrConfigNotFound))
		assert.Empty(t, reg.Files(), "a missing quiz must not be registered")
	})

	t.Run("Valid File", func(t *testing.T) {
		path := filepath.Join(dir, "Quiz.ini")
		require.NoError(t, os.WriteFile(path, []byte(validQuiz), 0644))

		q, err := quiz.Load(reg, path)
		require.NoError(t, err)
		assert.Equal(t, 2, q.Settings.MaxDificult)
		assert.Len(t, q.Level(1), 1)
	})
}

func TestWriteRoundTrip(t *testing.T) {
	doc := core.NewDocument()
	require.NoError(t, quiz.WriteSettings(doc, quiz.Settings{QuestionsPerDificultLevel: 1, MaxDificult: 1}))
	require.NoError(t, quiz.WriteQuestion(doc, quiz.Question{
		Section: "Q1", Dificult: 1, Question: "Sky color?", Answer: "1", Options: []string{"blue", "green"},
	}))

	data, err := fs.INISerializer{}.Serialize(doc)
	require.NoError(t, err)
	assert.Equal(t, `[CONFIG]
QuestionsPerDificultLevel=1
RandomQuestionsOrder=false
MaxDificult=1
GameOverOnFirstError=false

[Q1]
Dificult=1
Question=Sky color?
Answer=1
1=blue
2=green
`, string(data))

	q, err := quiz.Validate(doc)
	require.NoError(t, err)
	assert.Equal(t, "blue", q.Questions[0].Correct())
}
