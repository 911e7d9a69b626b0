package ingestion

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
	badgerstore "github.com/poiesic/answerit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPipeline(t *testing.T, opts ...Option) (*Pipeline, storage.DocumentRepository) {
	t.Helper()
	repo, backend, err := badgerstore.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	pipeline, err := NewPipeline(repo, opts...)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)
	return pipeline, repo
}

func TestNewPipeline(t *testing.T) {
	t.Run("requires a repository", func(t *testing.T) {
		_, err := NewPipeline(nil)
		assert.ErrorIs(t, err, ErrRepositoryRequired)
	})

	t.Run("clamps pool size to one", func(t *testing.T) {
		pipeline, _ := setupPipeline(t, WithPoolSize(-3))
		assert.NotNil(t, pipeline)
	})
}

func TestIngestProcessesPairs(t *testing.T) {
	pipeline, repo := setupPipeline(t)

	count, err := pipeline.Ingest(context.Background(), core.QAPair{
		Question:   "What is the capital of France?",
		Answer:     "Paris",
		SourceFile: "geography.md",
		SourceLine: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	doc, err := repo.GetByNormalizedText(context.Background(), "what is the capital of france")
	require.NoError(t, err)

	assert.Equal(t, "What is the capital of France?", doc.Question)
	assert.Equal(t, "Paris", doc.Answer)
	assert.Equal(t, "geography.md", doc.SourceFile)
	assert.Equal(t, 12, doc.SourceLine)
	assert.NotZero(t, doc.Id)
	assert.NotEmpty(t, doc.Keywords)
	assert.Contains(t, doc.KeywordStrings(), "capital")
	assert.Equal(t, core.QuestionTypeShortAnswer, doc.QuestionType)
	assert.Equal(t, len("what is the capital of france"), doc.CharCount)
	assert.Equal(t, 6, doc.WordCount)
	assert.False(t, doc.HasNumbers)
	assert.False(t, doc.HasDates)
	assert.False(t, doc.InsertedAt.IsZero())
}

func TestIngestStatistics(t *testing.T) {
	pipeline, repo := setupPipeline(t)

	tests := []struct {
		name       string
		question   string
		hasNumbers bool
		hasDates   bool
	}{
		{"plain question", "What is a deadlock?", false, false},
		{"numeric question", "How many bytes are in 2 kilobytes?", true, false},
		{"year question", "What happened in 1969?", true, true},
		{"weekday question", "Why is friday called friday?", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pipeline.Ingest(context.Background(), core.QAPair{
				Question: tt.question,
				Answer:   "because",
			})
			require.NoError(t, err)

			norm := mustNormalized(t, repo, tt.question)
			assert.Equal(t, tt.hasNumbers, norm.HasNumbers, "HasNumbers")
			assert.Equal(t, tt.hasDates, norm.HasDates, "HasDates")
		})
	}
}

func mustNormalized(t *testing.T, repo storage.DocumentRepository, question string) *core.Document {
	t.Helper()
	docs, err := repo.GetAllDocuments(context.Background())
	require.NoError(t, err)
	for _, d := range docs {
		if d.Question == question {
			return d
		}
	}
	t.Fatalf("document for %q not found", question)
	return nil
}

func TestIngestValidation(t *testing.T) {
	pipeline, repo := setupPipeline(t)

	t.Run("empty batch", func(t *testing.T) {
		_, err := pipeline.Ingest(context.Background())
		assert.ErrorIs(t, err, ErrNoPairs)
	})

	t.Run("invalid pair aborts the whole batch", func(t *testing.T) {
		_, err := pipeline.Ingest(context.Background(),
			core.QAPair{Question: "What is Go?", Answer: "A language"},
			core.QAPair{Question: "What is Rust?", Answer: "   "},
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidQAPair)
		assert.ErrorIs(t, err, core.ErrEmptyAnswer)

		count, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count, "nothing should be stored when validation fails")
	})
}

func TestIngestIdempotent(t *testing.T) {
	pipeline, repo := setupPipeline(t)

	pair := core.QAPair{
		Question:   "What is the capital of France?",
		Answer:     "Paris",
		SourceFile: "geography.md",
		SourceLine: 12,
	}

	first, err := pipeline.Ingest(context.Background(), pair)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := pipeline.Ingest(context.Background(), pair)
	require.NoError(t, err)
	assert.Equal(t, 1, second)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count, "re-importing identical content overwrites in place")
}

func TestIngestConcurrent(t *testing.T) {
	pipeline, repo := setupPipeline(t, WithPoolSize(4))

	pairs := make([]core.QAPair, 50)
	for i := range pairs {
		pairs[i] = core.QAPair{
			Question:   fmt.Sprintf("What is fact number %d about planets?", i),
			Answer:     fmt.Sprintf("answer %d", i),
			SourceFile: "planets.md",
			SourceLine: i + 1,
		}
	}

	count, err := pipeline.Ingest(context.Background(), pairs...)
	require.NoError(t, err)
	assert.Equal(t, 50, count)

	stored, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, stored)
}
