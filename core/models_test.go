package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		a := IDFromContent("what is the capital of france")
		b := IDFromContent("what is the capital of france")
		assert.Equal(t, a, b)
	})

	t.Run("differs on content", func(t *testing.T) {
		a := IDFromContent("what is the capital of france")
		b := IDFromContent("what is the capital of spain")
		assert.NotEqual(t, a, b)
	})
}

func TestDocumentID(t *testing.T) {
	t.Run("same question from different sources gets different ids", func(t *testing.T) {
		a := DocumentID("what is go", "chapter1.md", 10)
		b := DocumentID("what is go", "chapter2.md", 10)
		c := DocumentID("what is go", "chapter1.md", 11)
		assert.NotEqual(t, a, b)
		assert.NotEqual(t, a, c)
		assert.NotEqual(t, b, c)
	})

	t.Run("is stable across calls", func(t *testing.T) {
		a := DocumentID("what is go", "chapter1.md", 10)
		b := DocumentID("what is go", "chapter1.md", 10)
		assert.Equal(t, a, b)
	})
}

func TestKeywordStrings(t *testing.T) {
	doc := &Document{
		Keywords: []Keyword{
			{Word: "capital", Importance: 0.9, Type: KeywordTypeCommon},
			{Word: "france", Importance: 1.0, Type: KeywordTypeEntity},
		},
	}
	assert.Equal(t, []string{"capital", "france"}, doc.KeywordStrings())
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := Document{
		Id:                 DocumentID("what is the capital of france", "geo.md", 42),
		Question:           "What is the capital of France?",
		Answer:             "Paris",
		SourceFile:         "geo.md",
		SourceLine:         42,
		NormalizedQuestion: "what is the capital of france",
		Keywords: []Keyword{
			{Word: "capital", Importance: 0.8, Type: KeywordTypeCommon},
			{Word: "france", Importance: 1.0, Type: KeywordTypeEntity},
		},
		QuestionType:   QuestionTypeShortAnswer,
		TypeConfidence: 0.75,
		CharCount:      30,
		WordCount:      7,
		HasNumbers:     false,
		HasDates:       false,
		InsertedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
	}

	buf := make([]byte, DocumentMUS.Size(doc))
	n := DocumentMUS.Marshal(doc, buf)
	require.Equal(t, len(buf), n)

	got, n, err := DocumentMUS.Unmarshal(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	assert.Equal(t, doc, got)
}

func TestQuestionTypeString(t *testing.T) {
	assert.Equal(t, "multiple-choice", QuestionTypeMultipleChoice.String())
	assert.Equal(t, "true-false", QuestionTypeTrueFalse.String())
	assert.Equal(t, "fill-blank", QuestionTypeFillBlank.String())
	assert.Equal(t, "short-answer", QuestionTypeShortAnswer.String())
	assert.Equal(t, "essay", QuestionTypeEssay.String())
	assert.Equal(t, "unknown", QuestionTypeUnknown.String())
}
