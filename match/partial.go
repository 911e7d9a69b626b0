package match

import (
	"strconv"

	"github.com/poiesic/answerit/core"
)

// PartialScoreThreshold is the minimum blended score for a partial-tier
// match.
const PartialScoreThreshold = 0.30

// partialMatcher is tier 4: substring containment plus positional word
// overlap. The least precise local tier.
type partialMatcher struct{}

func (m *partialMatcher) match(normQuery string, candidates []*core.Document) *MatchResult {
	if len(candidates) == 0 {
		return nil
	}

	var best *core.Document
	bestScore := 0.0
	for _, doc := range candidates {
		score := PartialScore(normQuery, doc.NormalizedQuestion)
		if score > bestScore {
			bestScore = score
			best = doc
		}
	}

	if best == nil || bestScore < PartialScoreThreshold {
		return nil
	}

	conf := Confidence(MatchTypePartial, bestScore, ConfidenceContext{
		QueryLength:    len(normQuery),
		QuestionLength: len(best.NormalizedQuestion),
	})
	return &MatchResult{
		Document:    best,
		Type:        MatchTypePartial,
		Confidence:  conf,
		RawScore:    bestScore,
		Explanation: Explain(MatchTypePartial, conf),
		Metadata: map[string]string{
			"candidates": strconv.Itoa(len(candidates)),
		},
	}
}
