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


// Package classify labels a question's rhetorical form using deterministic
// pattern and keyword scoring. Classification is a pure function of the
// input text.
package classify

import (
	"regexp"
	"strings"

	"github.com/poiesic/answerit/core"
)

const (
	// patternWeight and keywordWeight combine the two match ratios into a
	// single confidence.
	patternWeight = 0.7
	keywordWeight = 0.3

	// confidenceFloor is the minimum winning confidence; below it the
	// question is labeled unknown.
	confidenceFloor = 0.1
)

type typeProfile struct {
	qtype    core.QuestionType
	patterns []*regexp.Regexp
	keywords []string
}

// profiles are evaluated in priority order; ties resolve to the earlier entry.
var profiles = []typeProfile{
	{
		qtype: core.QuestionTypeMultipleChoice,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b[a-d][\).]\s`),
			regexp.MustCompile(`(?i)\bwhich of the following\b`),
			regexp.MustCompile(`(?i)\bselect (?:one|all|the)\b`),
			regexp.MustCompile(`(?i)\ball of the above\b`),
			regexp.MustCompile(`(?i)\bnone of the above\b`),
		},
		keywords: []string{"choose", "select", "option", "options", "following", "pick"},
	},
	{
		qtype: core.QuestionTypeTrueFalse,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^\s*true or false\b`),
			regexp.MustCompile(`(?i)\btrue or false\b`),
			regexp.MustCompile(`(?i)\bt\s*/\s*f\b`),
			regexp.MustCompile(`(?i)^\s*(?:is it true|is the following)\b`),
		},
		keywords: []string{"true", "false", "correct", "incorrect", "statement"},
	},
	{
		qtype: core.QuestionTypeFillBlank,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`_{2,}`),
			regexp.MustCompile(`(?i)\bfill in\b`),
			regexp.MustCompile(`(?i)\bcomplete the (?:sentence|statement|phrase)\b`),
			regexp.MustCompile(`\[\s*\.{3}\s*\]|\[\s*blank\s*\]`),
		},
		keywords: []string{"blank", "complete", "missing", "fill"},
	},
	{
		qtype: core.QuestionTypeShortAnswer,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^\s*(?:what|who|where|when|which)\b`),
			regexp.MustCompile(`(?i)^\s*(?:name|list|state|give)\b`),
			regexp.MustCompile(`(?i)\bhow (?:many|much|old|long|far)\b`),
			regexp.MustCompile(`(?i)\bdefine\b`),
		},
		keywords: []string{"what", "who", "where", "when", "which", "name", "list", "define"},
	},
	{
		qtype: core.QuestionTypeEssay,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^\s*(?:why|how)\b`),
			regexp.MustCompile(`(?i)\b(?:explain|discuss|describe|compare|contrast|analyze|evaluate|justify)\b`),
			regexp.MustCompile(`(?i)\bin your own words\b`),
			regexp.MustCompile(`(?i)\b(?:advantages|disadvantages|pros and cons)\b`),
		},
		keywords: []string{"why", "how", "explain", "discuss", "describe", "compare", "analyze", "essay"},
	},
}

// Classify labels the rhetorical type of a question. If no type scores at or
// above the floor, the result is unknown with confidence 0.
func Classify(text string) core.Classification {
	if strings.TrimSpace(text) == "" {
		return core.Classification{Type: core.QuestionTypeUnknown, Confidence: 0}
	}

	tokens := tokenSet(text)

	best := core.Classification{Type: core.QuestionTypeUnknown, Confidence: 0}
	for _, p := range profiles {
		score := p.score(text, tokens)
		if score > best.Confidence {
			best = core.Classification{Type: p.qtype, Confidence: score}
		}
	}
	if best.Confidence < confidenceFloor {
		return core.Classification{Type: core.QuestionTypeUnknown, Confidence: 0}
	}
	return best
}

func (p typeProfile) score(text string, tokens map[string]struct{}) float64 {
	patternHits := 0
	for _, re := range p.patterns {
		if re.MatchString(text) {
			patternHits++
		}
	}
	keywordHits := 0
	for _, kw := range p.keywords {
		if _, ok := tokens[kw]; ok {
			keywordHits++
		}
	}
	patternRatio := float64(patternHits) / float64(len(p.patterns))
	keywordRatio := float64(keywordHits) / float64(len(p.keywords))
	return patternWeight*patternRatio + keywordWeight*keywordRatio
}

func tokenSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[strings.Trim(f, ".,;:!?\"'()")] = struct{}{}
	}
	return set
}
