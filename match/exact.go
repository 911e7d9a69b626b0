package match

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/poiesic/answerit/storage"
)

// exactMatcher is tier 1: a single lookup of the normalized query against
// the normalized-text index. Equality only.
type exactMatcher struct {
	repo storage.DocumentRepository
}

func (m *exactMatcher) match(ctx context.Context, normQuery string) (*MatchResult, error) {
	doc, err := m.repo.GetByNormalizedText(ctx, normQuery)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("exact lookup: %w", err)
	}

	conf := Confidence(MatchTypeExact, 1.0, ConfidenceContext{
		QueryLength:    len(normQuery),
		QuestionLength: len(doc.NormalizedQuestion),
	})
	return &MatchResult{
		Document:    doc,
		Type:        MatchTypeExact,
		Confidence:  conf,
		RawScore:    1.0,
		Explanation: Explain(MatchTypeExact, conf),
		Metadata: map[string]string{
			"query_length": strconv.Itoa(len(normQuery)),
		},
	}, nil
}
