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


package core

import (
	"fmt"
	"strings"
)

const (
	// MinQueryLength is the minimum number of characters in a query.
	MinQueryLength = 3

	// MaxQueryLength is the maximum number of characters in a query.
	MaxQueryLength = 500
)

// ValidateQuery validates a caller-supplied query before any matching runs.
//
// Validation rules:
//   - trimmed query must be at least MinQueryLength characters
//   - query must not exceed MaxQueryLength characters
func ValidateQuery(query string) error {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < MinQueryLength {
		return fmt.Errorf("%w: need at least %d characters", ErrQueryEmpty, MinQueryLength)
	}
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: limit is %d characters", ErrQueryTooLong, MaxQueryLength)
	}
	return nil
}

// ValidateQAPair validates a raw question/answer pair according to domain rules.
//
// Validation rules:
//   - Question must not be empty
//   - Answer must not be empty
//   - SourceLine must not be negative
//
// NOT validated (optional provenance):
//   - SourceFile (empty means unknown origin)
func ValidateQAPair(pair *QAPair) error {
	if pair == nil {
		return fmt.Errorf("%w: pair is nil", ErrInvalidQAPair)
	}

	if strings.TrimSpace(pair.Question) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQAPair, ErrEmptyQuestion)
	}

	if strings.TrimSpace(pair.Answer) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQAPair, ErrEmptyAnswer)
	}

	if pair.SourceLine < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidQAPair, ErrInvalidSourceLine)
	}

	return nil
}

// ValidateDocument validates a processed document before storage.
//
// Validation rules:
//   - Question and Answer must not be empty
//   - NormalizedQuestion must not be empty
//   - every keyword importance must be in [0,1]
//
// NOT validated:
//   - Id (0 means "derive from content on insert")
//   - QuestionType (unknown is a valid outcome)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyQuestion)
	}

	if doc.Answer == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyAnswer)
	}

	if doc.NormalizedQuestion == "" {
		return fmt.Errorf("%w: normalized question is empty", ErrInvalidDocument)
	}

	for _, k := range doc.Keywords {
		if k.Importance < 0 || k.Importance > 1 {
			return fmt.Errorf("%w: %w: %q has %f", ErrInvalidDocument, ErrImportanceOutOfRange, k.Word, k.Importance)
		}
	}

	return nil
}
