package badger

import (
	"context"
	"testing"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) storage.DocumentRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func testDocument(question, answer string) *core.Document {
	norm := question // tests pass pre-normalized text
	return &core.Document{
		Question:           question,
		Answer:             answer,
		SourceFile:         "test.md",
		SourceLine:         1,
		NormalizedQuestion: norm,
		Keywords: []core.Keyword{
			{Word: "capital", Importance: 0.8, Type: core.KeywordTypeCommon},
			{Word: "france", Importance: 1.0, Type: core.KeywordTypeEntity},
		},
		QuestionType:   core.QuestionTypeShortAnswer,
		TypeConfidence: 0.5,
	}
}

func TestAddDocuments(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	t.Run("derives content-based ids", func(t *testing.T) {
		doc := testDocument("what is the capital of france", "Paris")
		added, err := repo.AddDocuments(ctx, doc)
		require.NoError(t, err)
		require.Len(t, added, 1)
		assert.NotZero(t, added[0].Id)
		assert.Equal(t, core.DocumentID(doc.NormalizedQuestion, doc.SourceFile, doc.SourceLine), added[0].Id)
		assert.False(t, added[0].InsertedAt.IsZero())
		assert.False(t, added[0].UpdatedAt.IsZero())
	})

	t.Run("re-adding identical content keeps identity and insertion time", func(t *testing.T) {
		doc := testDocument("what is the capital of spain", "Madrid")
		first, err := repo.AddDocuments(ctx, doc)
		require.NoError(t, err)
		insertedAt := first[0].InsertedAt

		again := testDocument("what is the capital of spain", "Madrid")
		second, err := repo.AddDocuments(ctx, again)
		require.NoError(t, err)

		assert.Equal(t, first[0].Id, second[0].Id)
		assert.Equal(t, insertedAt, second[0].InsertedAt)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count) // france doc from previous subtest plus this one
	})
}

func TestGetDocument(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, testDocument("what is the capital of france", "Paris"))
	require.NoError(t, err)

	t.Run("returns the stored document", func(t *testing.T) {
		got, err := repo.GetDocument(ctx, added[0].Id)
		require.NoError(t, err)
		assert.Equal(t, "Paris", got.Answer)
		assert.Equal(t, added[0].Keywords, got.Keywords)
	})

	t.Run("missing id yields ErrNotFound", func(t *testing.T) {
		_, err := repo.GetDocument(ctx, core.ID(12345))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetByNormalizedText(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AddDocuments(ctx, testDocument("what is the capital of france", "Paris"))
	require.NoError(t, err)

	t.Run("exact normalized text hits", func(t *testing.T) {
		got, err := repo.GetByNormalizedText(ctx, "what is the capital of france")
		require.NoError(t, err)
		assert.Equal(t, "Paris", got.Answer)
	})

	t.Run("near miss does not hit", func(t *testing.T) {
		_, err := repo.GetByNormalizedText(ctx, "what is the capital of France")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetByKeywords(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	france := testDocument("what is the capital of france", "Paris")
	spain := testDocument("what is the capital of spain", "Madrid")
	spain.Keywords = []core.Keyword{
		{Word: "capital", Importance: 0.8, Type: core.KeywordTypeCommon},
		{Word: "spain", Importance: 1.0, Type: core.KeywordTypeEntity},
	}
	_, err := repo.AddDocuments(ctx, france, spain)
	require.NoError(t, err)

	t.Run("shared keyword returns both documents deduplicated", func(t *testing.T) {
		docs, err := repo.GetByKeywords(ctx, "capital", "france")
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("unique keyword returns one document", func(t *testing.T) {
		docs, err := repo.GetByKeywords(ctx, "spain")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Madrid", docs[0].Answer)
	})

	t.Run("unknown keyword returns nothing", func(t *testing.T) {
		docs, err := repo.GetByKeywords(ctx, "germany")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("keyword is not matched as a prefix", func(t *testing.T) {
		docs, err := repo.GetByKeywords(ctx, "cap")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestDeleteDocuments(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, testDocument("what is the capital of france", "Paris"))
	require.NoError(t, err)

	t.Run("removes record and indices", func(t *testing.T) {
		require.NoError(t, repo.DeleteDocuments(ctx, added[0].Id))

		_, err := repo.GetDocument(ctx, added[0].Id)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = repo.GetByNormalizedText(ctx, "what is the capital of france")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		docs, err := repo.GetByKeywords(ctx, "france")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("deleting a missing id yields ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, repo.DeleteDocuments(ctx, core.ID(999)), storage.ErrNotFound)
	})
}

func TestClear(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AddDocuments(ctx,
		testDocument("what is the capital of france", "Paris"),
		testDocument("what is the capital of spain", "Madrid"),
	)
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	docs, err := repo.GetByKeywords(ctx, "capital")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestGetAllDocuments(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AddDocuments(ctx,
		testDocument("what is the capital of france", "Paris"),
		testDocument("what is the capital of spain", "Madrid"),
	)
	require.NoError(t, err)

	docs, err := repo.GetAllDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestStaleIndexCleanup(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	doc := testDocument("what is the capital of france", "Paris")
	added, err := repo.AddDocuments(ctx, doc)
	require.NoError(t, err)

	// re-add under the same identity with a different keyword set
	updated := testDocument("what is the capital of france", "Paris")
	updated.Id = added[0].Id
	updated.Keywords = []core.Keyword{
		{Word: "paris", Importance: 1.0, Type: core.KeywordTypeEntity},
	}
	_, err = repo.AddDocuments(ctx, updated)
	require.NoError(t, err)

	docs, err := repo.GetByKeywords(ctx, "france")
	require.NoError(t, err)
	assert.Empty(t, docs, "stale keyword index entries must be removed")

	docs, err = repo.GetByKeywords(ctx, "paris")
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
