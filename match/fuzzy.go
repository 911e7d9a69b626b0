package match

import (
	"strconv"

	"github.com/poiesic/answerit/core"
)

const (
	// FuzzyScoreThreshold is the minimum blended similarity for a fuzzy-tier
	// match.
	FuzzyScoreThreshold = 0.60

	// DefaultMaxFuzzyCandidates caps how many candidates the fuzzy tier
	// scores when the caller does not set its own bound.
	DefaultMaxFuzzyCandidates = 50
)

// fuzzyMatcher is tier 3: blended edit-distance and Jaro-Winkler similarity
// over a bounded candidate subset.
type fuzzyMatcher struct{}

// match scores at most maxCandidates candidates, first-N by arrival order,
// and returns the best one at or above the threshold. Ties keep the first
// encountered.
func (m *fuzzyMatcher) match(normQuery string, candidates []*core.Document, maxCandidates int) *MatchResult {
	if len(candidates) == 0 {
		return nil
	}
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxFuzzyCandidates
	}
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	var best *core.Document
	bestScore := 0.0
	for _, doc := range candidates {
		score := FuzzyScore(normQuery, doc.NormalizedQuestion)
		if score > bestScore {
			bestScore = score
			best = doc
		}
	}

	if best == nil || bestScore < FuzzyScoreThreshold {
		return nil
	}

	conf := Confidence(MatchTypeFuzzy, bestScore, ConfidenceContext{
		QueryLength:    len(normQuery),
		QuestionLength: len(best.NormalizedQuestion),
	})
	return &MatchResult{
		Document:    best,
		Type:        MatchTypeFuzzy,
		Confidence:  conf,
		RawScore:    bestScore,
		Explanation: Explain(MatchTypeFuzzy, conf),
		Metadata: map[string]string{
			"candidates": strconv.Itoa(len(candidates)),
		},
	}
}
