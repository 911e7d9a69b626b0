package match

import (
	"time"

	"github.com/poiesic/answerit/core"
)

// MatchType identifies which cascade tier produced a match.
type MatchType int

const (
	// MatchTypeNone means no tier produced a satisfying match.
	MatchTypeNone MatchType = iota
	// MatchTypeExact is an equality hit on normalized question text.
	MatchTypeExact
	// MatchTypeKeyword is a keyword-set overlap match.
	MatchTypeKeyword
	// MatchTypeFuzzy is an edit-distance similarity match.
	MatchTypeFuzzy
	// MatchTypePartial is a substring-containment match.
	MatchTypePartial
	// MatchTypeRemote is an answer produced by the remote generator.
	MatchTypeRemote
)

// String returns the lowercase name of the match type.
func (t MatchType) String() string {
	switch t {
	case MatchTypeExact:
		return "exact"
	case MatchTypeKeyword:
		return "keyword"
	case MatchTypeFuzzy:
		return "fuzzy"
	case MatchTypePartial:
		return "partial"
	case MatchTypeRemote:
		return "remote"
	default:
		return "none"
	}
}

// Tier returns the cascade position of the match type, 1 through 5,
// or 0 for none.
func (t MatchType) Tier() int {
	return int(t)
}

// MatchResult is a single best match produced by one cascade tier.
type MatchResult struct {
	// Document is the matched document. For remote matches this is a
	// synthetic document carrying the generated answer.
	Document *core.Document

	// Type identifies the producing tier.
	Type MatchType

	// Confidence is the unified reliability score in [0,1]. Within a fixed
	// Type it is monotonic non-decreasing in RawScore; exact matches always
	// carry ExactConfidence.
	Confidence float64

	// RawScore is the tier-specific similarity in [0,1] before confidence
	// mapping.
	RawScore float64

	// Explanation is a human-readable summary of the match quality.
	Explanation string

	// Metadata carries tier-specific diagnostic values.
	Metadata map[string]string
}

// Result is the caller-facing outcome of a FindAnswer call.
type Result struct {
	// Success reports whether any tier produced a match.
	Success bool

	// Match is the winning match, nil when Success is false.
	Match *MatchResult

	// Tier is the winning cascade tier, 1 through 5, or 0 for no match.
	Tier int

	// Message explains a no-match outcome; empty on success.
	Message string

	// Elapsed is the total processing time for the call.
	Elapsed time.Duration
}
