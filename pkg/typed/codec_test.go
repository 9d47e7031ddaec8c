package typed_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/inikit/pkg/core"
	"github.com/aretw0/inikit/pkg/typed"
)

type Settings struct {
	QuestionsPerDificultLevel int  `ini:",required"`
	RandomQuestionsOrder      bool `ini:",required"`
	MaxDificult               int  `ini:"MaxDificult,required"`
	Title                     string
	Ratio                     float64 `yaml:"ratio,omitempty"`
	Limit                     *int    `ini:",omitempty"`
	internal                  string
	Ignored                   string `ini:"-"`
}

func configDocument(t *testing.T, items map[string]string) *core.Document {
	t.Helper()
	doc := core.NewDocument()
	require.NoError(t, doc.AddSection("CONFIG"))
	for k, v := range items {
		require.NoError(t, doc.Set("CONFIG", k, v))
	}
	return doc
}

func TestDecode(t *testing.T) {
	doc := configDocument(t, map[string]string{
		"QuestionsPerDificultLevel": " 2 ",
		"RandomQuestionsOrder":      "true",
		"MaxDificult":               "3",
		"Title":                     "007: the quiz",
		"ratio":                     "0.5",
		"Ignored":                   "x",
		"Limit":                     "10",
	})

	s, err := typed.Decode[Settings](doc, "CONFIG")
	require.NoError(t, err)
	assert.Equal(t, 2, s.QuestionsPerDificultLevel)
	assert.True(t, s.RandomQuestionsOrder)
	assert.Equal(t, 3, s.MaxDificult)
	assert.Equal(t, "007: the quiz", s.Title, "strings are taken verbatim")
	assert.Equal(t, 0.5, s.Ratio)
	require.NotNil(t, s.Limit)
	assert.Equal(t, 10, *s.Limit)
	assert.Empty(t, s.Ignored)
}

func TestDecodeErrors(t *testing.T) {
	valid := map[string]string{
		"QuestionsPerDificultLevel": "1",
		"RandomQuestionsOrder":      "false",
		"MaxDificult":               "1",
	}

	t.Run("Missing Section", func(t *testing.T) {
		_, err := typed.Decode[Settings](core.NewDocument(), "CONFIG")
		assert.ErrorIs(t, err, core.ErrSectionNotFound)
	})

	t.Run("Missing Required Item", func(t *testing.T) {
		items := map[string]string{"QuestionsPerDificultLevel": "1", "RandomQuestionsOrder": "true"}
		_, err := typed.Decode[Settings](configDocument(t, items), "CONFIG")

		var ie *core.ItemError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "MaxDificult", ie.Item)
		assert.ErrorIs(t, err, core.ErrItemNotFound)
	})

	for _, tc := range []struct{ item, value string }{
		{"MaxDificult", "three"},
		{"MaxDificult", ""},
		{"MaxDificult", "~"},
		{"RandomQuestionsOrder", "maybe"},
		{"MaxDificult", "2.5"},
		{"MaxDificult", "0x10"},
		{"RandomQuestionsOrder", "yes"},
		{"RandomQuestionsOrder", "on"},
		{"ratio", "fast"},
		{"Limit", "1.5"},
	} {
		t.Run("Invalid "+tc.item+" "+tc.value, func(t *testing.T) {
			items := map[string]string{}
			for k, v := range valid {
				items[k] = v
			}
			items[tc.item] = tc.value

			_, err := typed.Decode[Settings](configDocument(t, items), "CONFIG")
			var ve *core.ValueError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.item, ve.Item)
			assert.ErrorIs(t, err, core.ErrInvalidValue)
		})
	}

	t.Run("Same Rules As Document Accessors", func(t *testing.T) {
		items := map[string]string{}
		for k, v := range valid {
			items[k] = v
		}
		items["RandomQuestionsOrder"] = "1"
		items["MaxDificult"] = "+4"
		doc := configDocument(t, items)

		s, err := typed.Decode[Settings](doc, "CONFIG")
		require.NoError(t, err)
		b, err := doc.Bool("CONFIG", "RandomQuestionsOrder")
		require.NoError(t, err)
		n, err := doc.Int("CONFIG", "MaxDificult")
		require.NoError(t, err)
		assert.Equal(t, b, s.RandomQuestionsOrder)
		assert.Equal(t, n, s.MaxDificult)
	})

	t.Run("Not A Struct", func(t *testing.T) {
		_, err := typed.Decode[int](configDocument(t, valid), "CONFIG")
		assert.ErrorIs(t, err, typed.ErrNotStruct)
	})
}

func TestEncode(t *testing.T) {
	doc := core.NewDocument()
	require.NoError(t, doc.Set("CONFIG", "Existing", "kept"))

	s := Settings{QuestionsPerDificultLevel: 2, MaxDificult: 3, Title: "Quiz"}
	require.NoError(t, typed.Encode(doc, "CONFIG", &s))

	assert.Equal(t,
		[]string{"Existing", "QuestionsPerDificultLevel", "RandomQuestionsOrder", "MaxDificult", "Title"},
		doc.Items("CONFIG"), "omitempty fields are skipped and order follows the struct")
	v, _ := doc.Get("CONFIG", "RandomQuestionsOrder")
	assert.Equal(t, "false", v)
	v, _ = doc.Get("CONFIG", "MaxDificult")
	assert.Equal(t, "3", v)

	// Encode then Decode gives the value back.
	back, err := typed.Decode[Settings](doc, "CONFIG")
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestEncodeErrors(t *testing.T) {
	type withSlice struct {
		Name string
		Tags []string
	}
	type multiline struct {
		Body string
	}

	doc := core.NewDocument()

	err := typed.Encode(doc, "S", withSlice{Name: "x", Tags: []string{"a"}})
	var ie *core.ItemError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "Tags", ie.Item)

	err = typed.Encode(doc, "S", multiline{Body: "a\nb"})
	assert.True(t, errors.Is(err, core.ErrInvalidValue))

	type bracketed struct {
		Open string `ini:"[x"`
	}
	err = typed.Encode(doc, "S", bracketed{Open: "]"})
	assert.ErrorIs(t, err, core.ErrInvalidName, "[x=] would be read back as a header")

	assert.ErrorIs(t, typed.Encode(doc, "S", 42), typed.ErrNotStruct)
	assert.ErrorIs(t, typed.Encode(doc, "bad name", multiline{}), core.ErrInvalidName)

	assert.Equal(t, 0, doc.Len(), "failed encodes must not touch the document")
}
