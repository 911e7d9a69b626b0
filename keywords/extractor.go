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


// Package keywords extracts scored, typed keywords from question text.
package keywords

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/normalize"
)

const (
	// DefaultMaxKeywords caps the extracted keyword list.
	DefaultMaxKeywords = 10

	// DefaultMinWordLength drops tokens shorter than this many characters
	// unless they are protected.
	DefaultMinWordLength = 3

	// DefaultMinImportance discards tokens scoring below this threshold.
	DefaultMinImportance = 0.1

	// phraseBoost multiplies the mean constituent importance of a phrase.
	phraseBoost = 1.2
)

// Extractor turns question text into a ranked keyword list. An Extractor is
// immutable after construction and safe for concurrent use.
type Extractor struct {
	maxKeywords   int
	minWordLength int
	minImportance float64
	phrases       bool
	stopwordSet   map[string]struct{}
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithMaxKeywords sets the output cap.
func WithMaxKeywords(n int) Option {
	return func(e *Extractor) error {
		if n < 1 {
			return fmt.Errorf("max keywords must be positive, got %d", n)
		}
		e.maxKeywords = n
		return nil
	}
}

// WithMinWordLength sets the minimum token length.
func WithMinWordLength(n int) Option {
	return func(e *Extractor) error {
		if n < 1 {
			return fmt.Errorf("min word length must be positive, got %d", n)
		}
		e.minWordLength = n
		return nil
	}
}

// WithMinImportance sets the importance cutoff.
func WithMinImportance(v float64) Option {
	return func(e *Extractor) error {
		if v < 0 || v > 1 {
			return fmt.Errorf("min importance must be in [0,1], got %f", v)
		}
		e.minImportance = v
		return nil
	}
}

// WithPhrases enables or disables 2- and 3-gram phrase extraction.
func WithPhrases(enabled bool) Option {
	return func(e *Extractor) error {
		e.phrases = enabled
		return nil
	}
}

// WithStopwords replaces the default English stopword set. Protected
// question and polarity words stay protected regardless.
func WithStopwords(words []string) Option {
	return func(e *Extractor) error {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[strings.ToLower(w)] = struct{}{}
		}
		e.stopwordSet = set
		return nil
	}
}

// NewExtractor creates an Extractor with the given options applied over
// defaults.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		maxKeywords:   DefaultMaxKeywords,
		minWordLength: DefaultMinWordLength,
		minImportance: DefaultMinImportance,
		phrases:       true,
		stopwordSet:   stopwords,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("invalid extractor option: %w", err)
		}
	}
	return e, nil
}

func (e *Extractor) isStopword(word string) bool {
	if _, protected := protectedWords[word]; protected {
		return false
	}
	_, ok := e.stopwordSet[word]
	return ok
}

// Extract returns the ranked keyword list for text, capped, deduplicated,
// and sorted by descending importance. Empty input yields nil.
func (e *Extractor) Extract(text string) []core.Keyword {
	normalized := normalize.Normalize(text, normalize.KeywordOptions())
	if normalized == "" {
		return nil
	}

	tokens := strings.Fields(normalized)
	caseIdx := buildCaseIndex(text)

	// frequency over tokens that survive length and stopword filters
	counts := make(map[string]int)
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if e.isStopword(tok) {
			continue
		}
		if len(tok) < e.minWordLength && !IsProtected(tok) {
			continue
		}
		counts[tok]++
		kept = append(kept, tok)
	}
	if len(kept) == 0 {
		return nil
	}

	importances := scoreImportance(counts, len(tokens))

	out := make([]core.Keyword, 0, len(counts))
	seen := make(map[string]struct{}, len(counts))
	for _, tok := range kept {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		imp := importances[tok]
		if imp < e.minImportance {
			continue
		}
		out = append(out, core.Keyword{
			Word:       tok,
			Importance: imp,
			Type:       e.classifyToken(tok, caseIdx),
		})
	}

	if e.phrases {
		out = append(out, e.extractPhrases(tokens, importances, seen)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Importance > out[j].Importance
	})
	if len(out) > e.maxKeywords {
		out = out[:e.maxKeywords]
	}
	return out
}

// scoreImportance computes term-frequency weighted by rarity, normalized so
// the top term scores 1.0.
func scoreImportance(counts map[string]int, totalTokens int) map[string]float64 {
	scores := make(map[string]float64, len(counts))
	maxScore := 0.0
	for word, count := range counts {
		tf := float64(count) / float64(totalTokens)
		rarity := 1 + math.Log(float64(totalTokens)/float64(count))
		score := tf * rarity
		scores[word] = score
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore > 0 {
		for word := range scores {
			scores[word] /= maxScore
		}
	}
	return scores
}

func (e *Extractor) extractPhrases(tokens []string, importances map[string]float64, seen map[string]struct{}) []core.Keyword {
	var out []core.Keyword
	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := tokens[i : i+n]
			hasContent := false
			sum := 0.0
			for _, tok := range gram {
				if !e.isStopword(tok) {
					hasContent = true
				}
				sum += importances[tok]
			}
			if !hasContent {
				continue
			}
			phrase := strings.Join(gram, " ")
			if _, dup := seen[phrase]; dup {
				continue
			}
			imp := math.Min(1.0, sum/float64(n)*phraseBoost)
			if imp < e.minImportance {
				continue
			}
			seen[phrase] = struct{}{}
			out = append(out, core.Keyword{
				Word:       phrase,
				Importance: imp,
				Type:       core.KeywordTypeCommon,
			})
		}
	}
	return out
}

// tokenCase records how a token appeared in the original text.
type tokenCase struct {
	original    string
	midSentence bool
}

// buildCaseIndex maps each lowercased token to its first original-text form,
// tracking whether it appeared past the start of the text. Capitalization at
// position zero is ambiguous (sentence case) and does not mark an entity.
func buildCaseIndex(text string) map[string]tokenCase {
	idx := make(map[string]tokenCase)
	pos := 0
	for _, field := range strings.Fields(text) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" {
			continue
		}
		lower := strings.ToLower(word)
		if _, ok := idx[lower]; !ok {
			idx[lower] = tokenCase{original: word, midSentence: pos > 0}
		}
		pos++
	}
	return idx
}

// IsDateWord reports whether the lowercase token names a month, a weekday,
// or a relative day.
func IsDateWord(tok string) bool {
	_, ok := dateWords[tok]
	return ok
}

var dateWords = map[string]struct{}{
	"january": {}, "february": {}, "march": {}, "april": {}, "may": {},
	"june": {}, "july": {}, "august": {}, "september": {}, "october": {},
	"november": {}, "december": {},
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
	"today": {}, "yesterday": {}, "tomorrow": {},
}

func (e *Extractor) classifyToken(tok string, caseIdx map[string]tokenCase) core.KeywordType {
	// Protected words would be stopwords without the shield; keep them but
	// label them so scoring can discount them.
	if IsProtected(tok) {
		return core.KeywordTypeStopword
	}
	if isTechnicalTerm(tok, caseIdx) {
		return core.KeywordTypeTechnical
	}
	if isEntity(tok, caseIdx) {
		return core.KeywordTypeEntity
	}
	return core.KeywordTypeCommon
}

// isTechnicalTerm flags tokens with digits or technical symbols, all-caps
// originals, or an internal case shift ("JavaScript").
func isTechnicalTerm(tok string, caseIdx map[string]tokenCase) bool {
	for _, r := range tok {
		if unicode.IsDigit(r) && !isPureNumber(tok) {
			return true
		}
		if r == '@' || r == '#' || r == '$' || r == '%' {
			return true
		}
	}
	tc, ok := caseIdx[tok]
	if !ok {
		return false
	}
	if isAllCaps(tc.original) {
		return true
	}
	return hasInternalCaseShift(tc.original)
}

func isEntity(tok string, caseIdx map[string]tokenCase) bool {
	if _, ok := dateWords[tok]; ok {
		return true
	}
	if isPureNumber(tok) {
		return true
	}
	tc, ok := caseIdx[tok]
	if !ok {
		return false
	}
	return tc.midSentence && unicode.IsUpper(firstRune(tc.original))
}

func isPureNumber(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(tok) > 0
}

func isAllCaps(word string) bool {
	letters := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			letters++
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return letters >= 2
}

// hasInternalCaseShift reports an upper-case rune after the first position.
func hasInternalCaseShift(word string) bool {
	for i, r := range word {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
