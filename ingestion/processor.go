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


package ingestion

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/poiesic/answerit/classify"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/keywords"
	"github.com/poiesic/answerit/normalize"
)

// Processor converts raw question/answer pairs into processed documents.
// All derived fields are pure functions of the question text, so processing
// the same pair twice yields identical output. Reindexing reuses the same
// processor so stored documents and fresh imports never diverge.
type Processor struct {
	extractor *keywords.Extractor
}

// NewProcessor creates a document processor. A nil extractor means a fresh
// extractor with standard settings.
func NewProcessor(extractor *keywords.Extractor) (*Processor, error) {
	if extractor == nil {
		var err error
		extractor, err = keywords.NewExtractor()
		if err != nil {
			return nil, err
		}
	}
	return &Processor{extractor: extractor}, nil
}

// BuildDocument processes a validated pair into a storable document.
// The Id is left at zero so storage derives it from content on insert.
func (dp *Processor) BuildDocument(pair *core.QAPair) (*core.Document, error) {
	normalized := normalize.Normalize(pair.Question, normalize.MatchingOptions())
	classification := classify.Classify(pair.Question)

	doc := &core.Document{
		Question:           pair.Question,
		Answer:             pair.Answer,
		SourceFile:         pair.SourceFile,
		SourceLine:         pair.SourceLine,
		NormalizedQuestion: normalized,
		Keywords:           dp.extractor.Extract(pair.Question),
		QuestionType:       classification.Type,
		TypeConfidence:     classification.Confidence,
		CharCount:          len(normalized),
		WordCount:          len(strings.Fields(normalized)),
		HasNumbers:         containsNumbers(normalized),
		HasDates:           containsDates(normalized),
	}

	if err := core.ValidateDocument(doc); err != nil {
		return nil, fmt.Errorf("processing %q: %w", pair.Question, err)
	}
	return doc, nil
}

// yearPattern matches four-digit years in the range commonly used by
// study material.
var yearPattern = regexp.MustCompile(`\b(1[0-9]{3}|20[0-9]{2})\b`)

func containsNumbers(normalized string) bool {
	return strings.ContainsFunc(normalized, unicode.IsDigit)
}

func containsDates(normalized string) bool {
	for _, tok := range strings.Fields(normalized) {
		if keywords.IsDateWord(tok) {
			return true
		}
	}
	return yearPattern.MatchString(normalized)
}
