package match

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/answerit/ai"
	"github.com/poiesic/answerit/ai/mock"
	"github.com/poiesic/answerit/classify"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/keywords"
	"github.com/poiesic/answerit/normalize"
	"github.com/poiesic/answerit/storage"
	badgerstore "github.com/poiesic/answerit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingMonitor records cascade activity for short-circuit assertions.
type countingMonitor struct {
	mu        sync.Mutex
	evaluated map[MatchType]int
	matched   map[MatchType]int
	cacheHits int
	remote    int
}

func newCountingMonitor() *countingMonitor {
	return &countingMonitor{
		evaluated: make(map[MatchType]int),
		matched:   make(map[MatchType]int),
	}
}

func (m *countingMonitor) CacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *countingMonitor) TierEvaluated(t MatchType, matched bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluated[t]++
	if matched {
		m.matched[t]++
	}
}

func (m *countingMonitor) RemoteInvoked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remote++
}

func setupEngine(t *testing.T, opts ...EngineOption) (*Engine, storage.DocumentRepository) {
	t.Helper()
	repo, backend, err := badgerstore.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	engine, err := NewEngine(repo, opts...)
	require.NoError(t, err)
	return engine, repo
}

// buildDoc processes a question/answer pair the way ingestion does.
func buildDoc(t *testing.T, question, answer string) *core.Document {
	t.Helper()
	extractor, err := keywords.NewExtractor()
	require.NoError(t, err)

	classification := classify.Classify(question)
	return &core.Document{
		Question:           question,
		Answer:             answer,
		SourceFile:         "test.md",
		SourceLine:         1,
		NormalizedQuestion: normalize.Normalize(question, normalize.MatchingOptions()),
		Keywords:           extractor.Extract(question),
		QuestionType:       classification.Type,
		TypeConfidence:     classification.Confidence,
	}
}

func storeDocs(t *testing.T, repo storage.DocumentRepository, pairs ...[2]string) {
	t.Helper()
	docs := make([]*core.Document, 0, len(pairs))
	for _, p := range pairs {
		docs = append(docs, buildDoc(t, p[0], p[1]))
	}
	_, err := repo.AddDocuments(context.Background(), docs...)
	require.NoError(t, err)
}

func TestFindAnswerExactTier(t *testing.T) {
	engine, repo := setupEngine(t)
	storeDocs(t, repo, [2]string{"What is the capital of france", "Paris"})

	mon := newCountingMonitor()
	result, err := engine.FindAnswerWithMonitor(context.Background(), "What is the capital of France?", DefaultOptions(), mon)
	require.NoError(t, err)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Tier)
	assert.Equal(t, MatchTypeExact, result.Match.Type)
	assert.Equal(t, ExactConfidence, result.Match.Confidence)
	assert.Equal(t, "Paris", result.Match.Document.Answer)

	// short-circuit: no later tier ran
	assert.Equal(t, 1, mon.evaluated[MatchTypeExact])
	assert.Zero(t, mon.evaluated[MatchTypeKeyword])
	assert.Zero(t, mon.evaluated[MatchTypeFuzzy])
	assert.Zero(t, mon.evaluated[MatchTypePartial])
	assert.Zero(t, mon.remote)
}

func TestFindAnswerPartialTier(t *testing.T) {
	engine, repo := setupEngine(t)
	storeDocs(t, repo, [2]string{"What is the capital of france", "Paris"})

	mon := newCountingMonitor()
	result, err := engine.FindAnswerWithMonitor(context.Background(), "capital France", DefaultOptions(), mon)
	require.NoError(t, err)

	require.True(t, result.Success)
	assert.Equal(t, 4, result.Tier)
	assert.Equal(t, MatchTypePartial, result.Match.Type)
	assert.Equal(t, "Paris", result.Match.Document.Answer)
	assert.GreaterOrEqual(t, result.Match.Confidence, 0.30)
	assert.LessOrEqual(t, result.Match.Confidence, 0.60)

	// exact, keyword and fuzzy all ran and failed first
	assert.Equal(t, 1, mon.evaluated[MatchTypeExact])
	assert.Equal(t, 1, mon.evaluated[MatchTypeKeyword])
	assert.Equal(t, 1, mon.evaluated[MatchTypeFuzzy])
	assert.Equal(t, 1, mon.evaluated[MatchTypePartial])
	assert.Equal(t, 1, mon.matched[MatchTypePartial])
}

func TestFindAnswerEmptyStore(t *testing.T) {
	engine, _ := setupEngine(t)

	opts := DefaultOptions()
	opts.RemoteEnabled = false

	mon := newCountingMonitor()
	result, err := engine.FindAnswerWithMonitor(context.Background(), "What is the capital of France?", opts, mon)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Zero(t, result.Tier)
	assert.Nil(t, result.Match)
	assert.Contains(t, result.Message, "no documents loaded")

	// local tiers are skipped entirely on an empty collection
	assert.Zero(t, mon.evaluated[MatchTypeExact])
	assert.Zero(t, mon.evaluated[MatchTypeKeyword])
}

func TestFindAnswerValidation(t *testing.T) {
	engine, repo := setupEngine(t)
	storeDocs(t, repo, [2]string{"What is the capital of france", "Paris"})

	t.Run("too-short query errors before any tier", func(t *testing.T) {
		mon := newCountingMonitor()
		_, err := engine.FindAnswerWithMonitor(context.Background(), "hi", DefaultOptions(), mon)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrQueryEmpty)
		assert.Empty(t, mon.evaluated)
	})

	t.Run("too-long query errors", func(t *testing.T) {
		long := make([]byte, core.MaxQueryLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := engine.FindAnswer(context.Background(), string(long), DefaultOptions())
		assert.ErrorIs(t, err, core.ErrQueryTooLong)
	})
}

func TestFindAnswerCache(t *testing.T) {
	engine, repo := setupEngine(t)
	storeDocs(t, repo, [2]string{"What is the capital of france", "Paris"})

	query := "What is the capital of France?"

	first, err := engine.FindAnswer(context.Background(), query, DefaultOptions())
	require.NoError(t, err)
	require.True(t, first.Success)

	t.Run("second call is served from cache", func(t *testing.T) {
		mon := newCountingMonitor()
		second, err := engine.FindAnswerWithMonitor(context.Background(), query, DefaultOptions(), mon)
		require.NoError(t, err)
		assert.True(t, second.Success)
		assert.Equal(t, first.Match, second.Match)
		assert.Equal(t, 1, mon.cacheHits)
		assert.Empty(t, mon.evaluated)
	})

	t.Run("cache can be bypassed", func(t *testing.T) {
		opts := DefaultOptions()
		opts.UseCache = false
		mon := newCountingMonitor()
		_, err := engine.FindAnswerWithMonitor(context.Background(), query, opts, mon)
		require.NoError(t, err)
		assert.Zero(t, mon.cacheHits)
		assert.Equal(t, 1, mon.evaluated[MatchTypeExact])
	})

	t.Run("invalidation forces re-evaluation", func(t *testing.T) {
		engine.InvalidateCache()
		size, _ := engine.CacheStats()
		assert.Zero(t, size)

		mon := newCountingMonitor()
		_, err := engine.FindAnswerWithMonitor(context.Background(), query, DefaultOptions(), mon)
		require.NoError(t, err)
		assert.Zero(t, mon.cacheHits)
		assert.Equal(t, 1, mon.evaluated[MatchTypeExact])
	})
}

func TestFindAnswerRemoteTier(t *testing.T) {
	generator := mock.NewMockAnswerGenerator()
	generator.GenerateAnswerFunc = func(ctx context.Context, req *ai.AnswerRequest) (*ai.GeneratedAnswer, error) {
		return &ai.GeneratedAnswer{
			Answer:     "Magma pressure forces an eruption.",
			Reasoning:  "general knowledge",
			Confidence: 0.7,
		}, nil
	}

	engine, repo := setupEngine(t, WithGenerator(generator))
	storeDocs(t, repo, [2]string{"What is the capital of france", "Paris"})

	mon := newCountingMonitor()
	result, err := engine.FindAnswerWithMonitor(context.Background(), "how do volcanoes erupt", DefaultOptions(), mon)
	require.NoError(t, err)

	require.True(t, result.Success)
	assert.Equal(t, 5, result.Tier)
	assert.Equal(t, MatchTypeRemote, result.Match.Type)
	assert.Equal(t, 0.7, result.Match.Confidence)
	assert.Equal(t, "Magma pressure forces an eruption.", result.Match.Document.Answer)
	assert.Equal(t, "how do volcanoes erupt", result.Match.Document.Question)
	assert.Equal(t, 1, mon.remote)
	assert.Equal(t, 1, generator.CallCount())
}

func TestFindAnswerRemoteFailure(t *testing.T) {
	generator := mock.NewMockAnswerGenerator()
	generator.GenerateAnswerFunc = func(ctx context.Context, req *ai.AnswerRequest) (*ai.GeneratedAnswer, error) {
		return nil, errors.New("upstream unavailable")
	}

	engine, repo := setupEngine(t, WithGenerator(generator))
	storeDocs(t, repo, [2]string{"What is the capital of france", "Paris"})

	result, err := engine.FindAnswerWithMonitor(context.Background(), "how do volcanoes erupt", DefaultOptions(), nil)
	require.NoError(t, err, "remote failures degrade to a no-match result")

	assert.False(t, result.Success)
	assert.Zero(t, result.Tier)
	assert.Contains(t, result.Message, "remote fallback failed")

	// failures are not cached
	size, _ := engine.CacheStats()
	assert.Zero(t, size)
}

func TestFindAnswerRemoteDisabled(t *testing.T) {
	generator := mock.NewMockAnswerGenerator()
	engine, repo := setupEngine(t, WithGenerator(generator))
	storeDocs(t, repo, [2]string{"What is the capital of france", "Paris"})

	opts := DefaultOptions()
	opts.RemoteEnabled = false

	result, err := engine.FindAnswer(context.Background(), "how do volcanoes erupt", opts)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "remote fallback is disabled")
	assert.Zero(t, generator.CallCount())
}

func TestFindAnswerRemoteNotInvokedOnLocalMatch(t *testing.T) {
	generator := mock.NewMockAnswerGenerator()
	engine, repo := setupEngine(t, WithGenerator(generator))
	storeDocs(t, repo, [2]string{"What is the capital of france", "Paris"})

	result, err := engine.FindAnswer(context.Background(), "What is the capital of France?", DefaultOptions())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Zero(t, generator.CallCount())
}

func TestFindAnswerDisabledTiers(t *testing.T) {
	engine, repo := setupEngine(t)
	storeDocs(t, repo, [2]string{"What is the capital of france", "Paris"})

	opts := DefaultOptions()
	opts.FuzzyEnabled = false
	opts.PartialEnabled = false
	opts.RemoteEnabled = false

	mon := newCountingMonitor()
	result, err := engine.FindAnswerWithMonitor(context.Background(), "capital France", opts, mon)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Zero(t, mon.evaluated[MatchTypeFuzzy])
	assert.Zero(t, mon.evaluated[MatchTypePartial])
}

func TestFindAnswerConcurrent(t *testing.T) {
	engine, repo := setupEngine(t)
	storeDocs(t, repo,
		[2]string{"What is the capital of france", "Paris"},
		[2]string{"What is the capital of spain", "Madrid"},
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			query := "What is the capital of France?"
			if i%2 == 1 {
				query = "What is the capital of Spain?"
			}
			result, err := engine.FindAnswer(context.Background(), query, DefaultOptions())
			assert.NoError(t, err)
			assert.True(t, result.Success)
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("concurrent queries deadlocked")
	}
}
