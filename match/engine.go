// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package match

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/poiesic/answerit/ai"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/keywords"
	"github.com/poiesic/answerit/normalize"
	"github.com/poiesic/answerit/storage"
)

// Engine orchestrates the matching cascade over a document repository.
// An Engine is safe for concurrent use; each query runs independently.
type Engine struct {
	repo      storage.DocumentRepository
	extractor *keywords.Extractor
	generator ai.AnswerGenerator
	cache     *QueryCache
	logger    *slog.Logger

	exact   exactMatcher
	keyword keywordMatcher
	fuzzy   fuzzyMatcher
	partial partialMatcher
}

// EngineOption configures an Engine.
type EngineOption func(*Engine) error

// WithLogger sets the engine's logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		e.logger = logger
		return nil
	}
}

// WithGenerator sets the remote answer generator used as tier 5.
// Without one, remote fallback is unavailable regardless of options.
func WithGenerator(generator ai.AnswerGenerator) EngineOption {
	return func(e *Engine) error {
		e.generator = generator
		return nil
	}
}

// WithExtractor replaces the default keyword extractor.
func WithExtractor(extractor *keywords.Extractor) EngineOption {
	return func(e *Engine) error {
		if extractor == nil {
			return fmt.Errorf("extractor cannot be nil")
		}
		e.extractor = extractor
		return nil
	}
}

// WithCache replaces the default query cache.
func WithCache(maxSize int, ttl time.Duration) EngineOption {
	return func(e *Engine) error {
		e.cache = NewQueryCache(maxSize, ttl)
		return nil
	}
}

// NewEngine creates a matching engine over repo.
func NewEngine(repo storage.DocumentRepository, opts ...EngineOption) (*Engine, error) {
	extractor, err := keywords.NewExtractor()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		repo:      repo,
		extractor: extractor,
		cache:     NewQueryCache(DefaultCacheSize, DefaultCacheTTL),
		logger:    slog.Default().With("component", "match-engine"),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("invalid engine option: %w", err)
		}
	}

	e.exact = exactMatcher{repo: e.repo}
	e.keyword = keywordMatcher{repo: e.repo}
	return e, nil
}

// FindAnswer runs the matching cascade for query.
//
// Validation errors (empty, too-short, too-long query) and store failures
// are returned as errors. Remote-generation failures degrade to a no-match
// Result instead; local tiers already evaluated are never discarded by a
// downstream remote failure.
func (e *Engine) FindAnswer(ctx context.Context, query string, opts Options) (*Result, error) {
	return e.FindAnswerWithMonitor(ctx, query, opts, nil)
}

// FindAnswerWithMonitor is FindAnswer with instrumentation callbacks.
func (e *Engine) FindAnswerWithMonitor(ctx context.Context, query string, opts Options, mon Monitor) (*Result, error) {
	start := time.Now()
	if mon == nil {
		mon = noopMonitor{}
	}

	if err := core.ValidateQuery(query); err != nil {
		e.logger.Debug("query rejected", "err", err)
		return nil, err
	}

	cacheKey := xxhash.Sum64String(query)
	if opts.UseCache {
		if cached, ok := e.cache.Get(cacheKey); ok {
			mon.CacheHit()
			e.logger.Debug("cache hit", "key", cacheKey)
			return &Result{
				Success: cached.Success,
				Match:   cached.Match,
				Tier:    cached.Tier,
				Message: cached.Message,
				Elapsed: time.Since(start),
			}, nil
		}
	}

	normQuery := normalize.Normalize(query, normalize.MatchingOptions())
	queryKeywords := e.extractor.Extract(query)

	count, err := e.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
	}

	var lastCandidates []*core.Document
	if count > 0 {
		result, candidates, err := e.runLocalTiers(ctx, normQuery, queryKeywords, opts, mon)
		if err != nil {
			return nil, err
		}
		lastCandidates = candidates
		if result != nil {
			return e.finish(result, cacheKey, opts, start), nil
		}
	}

	if opts.RemoteEnabled && e.generator != nil {
		result := e.runRemoteTier(ctx, query, queryKeywords, lastCandidates, mon)
		if result != nil {
			return e.finish(result, cacheKey, opts, start), nil
		}
		return &Result{
			Success: false,
			Tier:    0,
			Message: "remote fallback failed; no local match met the confidence threshold",
			Elapsed: time.Since(start),
		}, nil
	}

	msg := "no local match met the confidence threshold"
	switch {
	case count == 0:
		msg = "no documents loaded; import question/answer pairs first"
	case !opts.RemoteEnabled || e.generator == nil:
		msg = "no local match met the confidence threshold and remote fallback is disabled"
	}

	return &Result{
		Success: false,
		Tier:    0,
		Message: msg,
		Elapsed: time.Since(start),
	}, nil
}

// runLocalTiers evaluates tiers 1 through 4 with early exit. It returns the
// winning match (or nil) and whichever candidate set was last gathered.
func (e *Engine) runLocalTiers(ctx context.Context, normQuery string, queryKeywords []core.Keyword, opts Options, mon Monitor) (*MatchResult, []*core.Document, error) {
	// tier 1: exact
	m, err := e.exact.match(ctx, normQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
	}
	mon.TierEvaluated(MatchTypeExact, m != nil)
	if m != nil && m.Confidence >= opts.MinConfidence {
		return m, nil, nil
	}

	// tier 2: keyword overlap
	m, candidates, err := e.keyword.match(ctx, normQuery, queryKeywords)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
	}
	mon.TierEvaluated(MatchTypeKeyword, m != nil)
	if m != nil && m.Confidence >= opts.MinConfidence {
		return m, candidates, nil
	}

	// tiers 3 and 4 fall back to the full collection when keyword
	// retrieval gathered nothing
	if len(candidates) == 0 && (opts.FuzzyEnabled || opts.PartialEnabled) {
		candidates, err = e.repo.GetAllDocuments(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
		}
	}

	// tier 3: fuzzy
	if opts.FuzzyEnabled {
		m = e.fuzzy.match(normQuery, candidates, opts.MaxFuzzyCandidates)
		mon.TierEvaluated(MatchTypeFuzzy, m != nil)
		if m != nil && m.Confidence >= opts.MinConfidence {
			return m, candidates, nil
		}
	}

	// tier 4: partial
	if opts.PartialEnabled {
		m = e.partial.match(normQuery, candidates)
		mon.TierEvaluated(MatchTypePartial, m != nil)
		if m != nil && m.Confidence >= opts.MinConfidence {
			return m, candidates, nil
		}
	}

	return nil, candidates, nil
}

// runRemoteTier delegates to the external generator. Failures degrade to nil
// (which the caller reports as no match) rather than propagating an error.
func (e *Engine) runRemoteTier(ctx context.Context, query string, queryKeywords []core.Keyword, candidates []*core.Document, mon Monitor) *MatchResult {
	mon.RemoteInvoked()

	generated, err := e.generator.GenerateAnswer(ctx, &ai.AnswerRequest{
		Question:   query,
		Keywords:   queryKeywords,
		Candidates: candidates,
	})
	if err != nil {
		e.logger.Warn("remote generation failed", "query_hash", xxhash.Sum64String(query), "err", err)
		return nil
	}
	if generated.Answer == "" {
		e.logger.Debug("remote generator declined to answer")
		return nil
	}

	conf := Confidence(MatchTypeRemote, generated.Confidence, ConfidenceContext{})
	return &MatchResult{
		Document: &core.Document{
			Question: query,
			Answer:   generated.Answer,
		},
		Type:        MatchTypeRemote,
		Confidence:  conf,
		RawScore:    generated.Confidence,
		Explanation: Explain(MatchTypeRemote, conf),
		Metadata: map[string]string{
			"reasoning": generated.Reasoning,
		},
	}
}

// finish packages a winning match and caches it.
func (e *Engine) finish(m *MatchResult, cacheKey uint64, opts Options, start time.Time) *Result {
	result := &Result{
		Success: true,
		Match:   m,
		Tier:    m.Type.Tier(),
		Elapsed: time.Since(start),
	}
	if opts.UseCache {
		e.cache.Set(cacheKey, result)
	}
	e.logger.Debug("match found",
		"tier", result.Tier,
		"type", m.Type.String(),
		"confidence", m.Confidence,
		"raw_score", m.RawScore,
		"elapsed", result.Elapsed)
	return result
}

// InvalidateCache wipes the query cache. Call after any change to the
// document collection.
func (e *Engine) InvalidateCache() {
	e.cache.Clear()
}

// CacheStats returns the cache's current size and fill fraction.
func (e *Engine) CacheStats() (size int, utilization float64) {
	return e.cache.Len(), e.cache.Utilization()
}
