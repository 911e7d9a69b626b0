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

import "fmt"

// ExactConfidence is the fixed confidence of an exact-tier match.
const ExactConfidence = 1.0

// Per-type confidence bands. Raw scores rescale linearly into these.
const (
	keywordConfidenceMin = 0.60
	keywordConfidenceMax = 0.90

	fuzzyConfidenceMin = 0.50
	fuzzyConfidenceMax = 0.80

	partialConfidenceMin = 0.35
	partialConfidenceMax = 0.65
)

// Contextual adjustments.
const (
	// longQueryChars is the query length above which keyword matches get a
	// small boost; long queries make keyword overlap more discriminating.
	longQueryChars = 40
	longQueryBoost = 1.05

	// shortLengthRatio penalizes fuzzy matches between strings of very
	// different lengths.
	shortLengthRatio   = 0.5
	lengthRatioPenalty = 0.85

	// partialDiscount reflects the inherent unreliability of substring
	// matching.
	partialDiscount = 0.9
)

// Confidence label thresholds.
const (
	highConfidence   = 0.8
	mediumConfidence = 0.6
	lowConfidence    = 0.4
)

// ConfidenceContext carries the string lengths used for contextual
// adjustments.
type ConfidenceContext struct {
	// QueryLength is the character length of the normalized query.
	QueryLength int

	// QuestionLength is the character length of the matched document's
	// normalized question.
	QuestionLength int
}

// Confidence maps a tier-specific raw score into the unified [0,1]
// confidence scale. Within a fixed match type the mapping is monotonic
// non-decreasing in rawScore.
func Confidence(t MatchType, rawScore float64, c ConfidenceContext) float64 {
	var conf float64

	switch t {
	case MatchTypeExact:
		conf = ExactConfidence

	case MatchTypeKeyword:
		conf = rescale(rawScore, keywordConfidenceMin, keywordConfidenceMax)
		if c.QueryLength > longQueryChars {
			conf *= longQueryBoost
		}

	case MatchTypeFuzzy:
		conf = rescale(rawScore, fuzzyConfidenceMin, fuzzyConfidenceMax)
		if ratio := lengthRatio(c.QueryLength, c.QuestionLength); ratio < shortLengthRatio {
			conf *= lengthRatioPenalty
		}

	case MatchTypePartial:
		conf = rescale(rawScore, partialConfidenceMin, partialConfidenceMax)
		conf *= partialDiscount

	case MatchTypeRemote:
		conf = rawScore

	default:
		conf = 0
	}

	return clamp01(conf)
}

// Label maps a confidence value to a four-level human-readable label.
func Label(confidence float64) string {
	switch {
	case confidence >= highConfidence:
		return "HIGH"
	case confidence >= mediumConfidence:
		return "MEDIUM"
	case confidence >= lowConfidence:
		return "LOW"
	default:
		return "NONE"
	}
}

// Explain combines the match type and confidence label into a short
// human-readable explanation.
func Explain(t MatchType, confidence float64) string {
	return fmt.Sprintf("%s match (%s confidence)", t, Label(confidence))
}

func rescale(raw, min, max float64) float64 {
	return min + clamp01(raw)*(max-min)
}

func lengthRatio(a, b int) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > b {
		a, b = b, a
	}
	return float64(a) / float64(b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
