package reindex

import (
	"bytes"
	"context"
	"testing"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/ingestion"
	"github.com/poiesic/answerit/normalize"
	"github.com/poiesic/answerit/storage"
	badgerstore "github.com/poiesic/answerit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) storage.DocumentRepository {
	t.Helper()
	repo, backend, err := badgerstore.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func ingestPairs(t *testing.T, repo storage.DocumentRepository, pairs ...core.QAPair) {
	t.Helper()
	pipeline, err := ingestion.NewPipeline(repo)
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.Ingest(context.Background(), pairs...)
	require.NoError(t, err)
}

func TestReindexerEmptyStore(t *testing.T) {
	repo := setupRepo(t)

	var out bytes.Buffer
	reindexer, err := NewReindexer(repo, nil, nil, &out)
	require.NoError(t, err)

	summary, err := reindexer.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
	assert.Contains(t, out.String(), "No documents found")
}

func TestReindexerNoChanges(t *testing.T) {
	repo := setupRepo(t)
	ingestPairs(t, repo,
		core.QAPair{Question: "What is the capital of France?", Answer: "Paris"},
		core.QAPair{Question: "Who wrote Hamlet?", Answer: "Shakespeare"},
	)

	reindexer, err := NewReindexer(repo, nil, nil, nil)
	require.NoError(t, err)

	summary, err := reindexer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Zero(t, summary.Updated, "freshly ingested documents are already current")
	assert.Zero(t, summary.Rekeyed)
	assert.Zero(t, summary.Failed)
}

func TestReindexerRewritesStaleFields(t *testing.T) {
	repo := setupRepo(t)

	// Stored with correct identity but no derived fields beyond the
	// normalized question, as if extraction rules were added later.
	question := "What is the capital of France?"
	norm := normalize.Normalize(question, normalize.MatchingOptions())
	_, err := repo.AddDocuments(context.Background(), &core.Document{
		Question:           question,
		Answer:             "Paris",
		NormalizedQuestion: norm,
	})
	require.NoError(t, err)

	reindexer, err := NewReindexer(repo, nil, nil, nil)
	require.NoError(t, err)

	summary, err := reindexer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Updated)
	assert.Zero(t, summary.Rekeyed)

	doc, err := repo.GetByNormalizedText(context.Background(), norm)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Keywords)
	assert.Equal(t, core.QuestionTypeShortAnswer, doc.QuestionType)
	assert.Equal(t, len(norm), doc.CharCount)
}

func TestReindexerRekeysChangedIdentity(t *testing.T) {
	repo := setupRepo(t)

	// Stored under an identity derived from an outdated normalization that
	// kept the question mark.
	question := "What is the capital of France?"
	staleNorm := "what is the capital of france?"
	added, err := repo.AddDocuments(context.Background(), &core.Document{
		Question:           question,
		Answer:             "Paris",
		NormalizedQuestion: staleNorm,
	})
	require.NoError(t, err)
	oldID := added[0].Id
	insertedAt := added[0].InsertedAt

	reindexer, err := NewReindexer(repo, nil, nil, nil)
	require.NoError(t, err)

	summary, err := reindexer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Rekeyed)
	assert.Zero(t, summary.Updated)

	_, err = repo.GetDocument(context.Background(), oldID)
	assert.ErrorIs(t, err, storage.ErrNotFound, "old identity should be removed")

	currentNorm := normalize.Normalize(question, normalize.MatchingOptions())
	doc, err := repo.GetByNormalizedText(context.Background(), currentNorm)
	require.NoError(t, err)
	assert.NotEqual(t, oldID, doc.Id)
	assert.Equal(t, "Paris", doc.Answer)
	assert.Equal(t, insertedAt, doc.InsertedAt, "rekeying preserves the original insertion time")

	t.Run("second run is a no-op", func(t *testing.T) {
		summary, err := reindexer.Run(context.Background())
		require.NoError(t, err)
		assert.Zero(t, summary.Updated)
		assert.Zero(t, summary.Rekeyed)
	})
}

func TestReindexerRequiresRepository(t *testing.T) {
	_, err := NewReindexer(nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}
