package match

import (
	"context"
	"fmt"
	"strconv"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
)

const (
	// KeywordOverlapThreshold is the minimum boosted overlap score for a
	// keyword-tier match. It doubles as the raw-score floor fed into the
	// confidence band.
	KeywordOverlapThreshold = 0.75

	// importanceBoostMax bounds the importance-mass boost at 20%.
	importanceBoostMax = 0.2
)

// keywordMatcher is tier 2: retrieve documents sharing at least one keyword
// with the query, score by Jaccard similarity of keyword sets, boosted by
// shared importance mass.
type keywordMatcher struct {
	repo storage.DocumentRepository
}

// match returns the best keyword match plus the full candidate set it
// gathered, so later tiers can reuse the candidates.
func (m *keywordMatcher) match(ctx context.Context, normQuery string, queryKeywords []core.Keyword) (*MatchResult, []*core.Document, error) {
	if len(queryKeywords) == 0 {
		return nil, nil, nil
	}

	words := make([]string, 0, len(queryKeywords))
	totalMass := 0.0
	for _, kw := range queryKeywords {
		words = append(words, kw.Word)
		totalMass += kw.Importance
	}

	candidates, err := m.repo.GetByKeywords(ctx, words...)
	if err != nil {
		return nil, nil, fmt.Errorf("keyword lookup: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil, nil
	}

	var best *core.Document
	bestScore := 0.0
	for _, doc := range candidates {
		score := m.score(queryKeywords, totalMass, words, doc)
		if score > bestScore {
			bestScore = score
			best = doc
		}
	}

	if best == nil || bestScore < KeywordOverlapThreshold {
		return nil, candidates, nil
	}

	conf := Confidence(MatchTypeKeyword, bestScore, ConfidenceContext{
		QueryLength:    len(normQuery),
		QuestionLength: len(best.NormalizedQuestion),
	})
	return &MatchResult{
		Document:    best,
		Type:        MatchTypeKeyword,
		Confidence:  conf,
		RawScore:    bestScore,
		Explanation: Explain(MatchTypeKeyword, conf),
		Metadata: map[string]string{
			"candidates": strconv.Itoa(len(candidates)),
		},
	}, candidates, nil
}

// score computes Jaccard overlap of keyword words, boosted up to 20% by the
// fraction of the query's importance mass the candidate also contains.
func (m *keywordMatcher) score(queryKeywords []core.Keyword, totalMass float64, queryWords []string, doc *core.Document) float64 {
	docWords := doc.KeywordStrings()
	jaccard := JaccardStrings(queryWords, docWords)
	if jaccard == 0 {
		return 0
	}

	docSet := make(map[string]struct{}, len(docWords))
	for _, w := range docWords {
		docSet[w] = struct{}{}
	}
	sharedMass := 0.0
	for _, kw := range queryKeywords {
		if _, ok := docSet[kw.Word]; ok {
			sharedMass += kw.Importance
		}
	}

	boost := 0.0
	if totalMass > 0 {
		boost = importanceBoostMax * (sharedMass / totalMass)
	}
	return clamp01(jaccard * (1 + boost))
}
