package reindex

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/poiesic/answerit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentIteratorBatches(t *testing.T) {
	repo := setupRepo(t)

	pairs := make([]core.QAPair, 7)
	for i := range pairs {
		pairs[i] = core.QAPair{
			Question: fmt.Sprintf("What is fact %d about oceans?", i),
			Answer:   fmt.Sprintf("answer %d", i),
		}
	}
	ingestPairs(t, repo, pairs...)

	it := NewDocumentIterator(repo, 3)

	var batchSizes []int
	seen := 0
	err := it.ForEach(context.Background(), func(docs []*core.Document) error {
		batchSizes = append(batchSizes, len(docs))
		seen += len(docs)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 7, seen)
	assert.Equal(t, []int{3, 3, 1}, batchSizes)
}

func TestDocumentIteratorEmptyStore(t *testing.T) {
	repo := setupRepo(t)

	it := NewDocumentIterator(repo, 10)
	calls := 0
	err := it.ForEach(context.Background(), func(docs []*core.Document) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestDocumentIteratorStopsOnError(t *testing.T) {
	repo := setupRepo(t)
	ingestPairs(t, repo,
		core.QAPair{Question: "What is the capital of France?", Answer: "Paris"},
		core.QAPair{Question: "Who wrote Hamlet?", Answer: "Shakespeare"},
	)

	it := NewDocumentIterator(repo, 1)
	wantErr := errors.New("boom")

	calls := 0
	err := it.ForEach(context.Background(), func(docs []*core.Document) error {
		calls++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
}

func TestDocumentIteratorCancellation(t *testing.T) {
	repo := setupRepo(t)
	ingestPairs(t, repo,
		core.QAPair{Question: "What is the capital of France?", Answer: "Paris"},
		core.QAPair{Question: "Who wrote Hamlet?", Answer: "Shakespeare"},
	)

	ctx, cancel := context.WithCancel(context.Background())
	it := NewDocumentIterator(repo, 1)

	calls := 0
	err := it.ForEach(ctx, func(docs []*core.Document) error {
		calls++
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "cancellation is honored between batches")
}

func TestDocumentIteratorDefaultBatchSize(t *testing.T) {
	repo := setupRepo(t)
	it := NewDocumentIterator(repo, 0)
	assert.Equal(t, DefaultBatchSize, it.batchSize)
}
