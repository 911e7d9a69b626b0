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


// Package normalize canonicalizes raw question text into a comparison-stable
// form. Every stage is idempotent, so normalizing already-normalized text is
// a no-op.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Options controls the behavior of Normalize. The zero value strips question
// marks, keeps contractions, and leaves number words alone.
type Options struct {
	// PreserveQuestionMarks keeps trailing '?' characters instead of
	// stripping them with the rest of the punctuation.
	PreserveQuestionMarks bool

	// ExpandContractions rewrites common English contractions to their
	// expanded forms ("don't" -> "do not") before apostrophes are stripped.
	ExpandContractions bool

	// ConvertNumberWords rewrites standalone number words to digits
	// ("seven" -> "7").
	ConvertNumberWords bool
}

// MatchingOptions is the preset used when normalizing text for matching.
// Contractions are expanded so "what's" and "what is" compare equal.
func MatchingOptions() Options {
	return Options{
		ExpandContractions: true,
	}
}

// KeywordOptions is the preset used when normalizing text for keyword
// extraction. Contractions are kept intact so they survive as
// distinguishing tokens.
func KeywordOptions() Options {
	return Options{}
}

// Normalize canonicalizes text through a fixed stage order: Unicode folding,
// punctuation stripping, optional contraction and number-word rewriting,
// lowercasing, and whitespace collapse. Empty input yields an empty string.
func Normalize(text string, opts Options) string {
	if text == "" {
		return ""
	}

	s := foldUnicode(text)
	s = stripPunctuation(s, opts.PreserveQuestionMarks)
	if opts.ExpandContractions {
		s = expandContractions(s)
	}
	s = stripApostrophes(s)
	if opts.ConvertNumberWords {
		s = convertNumberWords(s)
	}
	s = strings.ToLower(s)
	return collapseWhitespace(s)
}

// smart punctuation and whitespace variants folded to ASCII equivalents
var unicodeFolds = map[rune]string{
	'‘': "'", // left single quote
	'’': "'", // right single quote
	'‚': "'",
	'‛': "'",
	'“': `"`, // left double quote
	'”': `"`, // right double quote
	'„': `"`,
	'‐': "-", // hyphen
	'‑': "-", // non-breaking hyphen
	'‒': "-", // figure dash
	'–': "-", // en dash
	'—': "-", // em dash
	'―': "-", // horizontal bar
	'…': "...",
	' ': " ", // non-breaking space
	' ': " ",
	' ': " ",
	' ': " ",
	' ': " ",
	'　': " ",
}

// zero-width and invisible formatting characters removed outright
var zeroWidth = map[rune]struct{}{
	'\u200B': {}, // zero-width space
	'\u200C': {}, // zero-width non-joiner
	'\u200D': {}, // zero-width joiner
	'\u2060': {}, // word joiner
	'\uFEFF': {}, // BOM
}

func foldUnicode(text string) string {
	s := norm.NFKC.String(text)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, drop := zeroWidth[r]; drop {
			continue
		}
		if rep, ok := unicodeFolds[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// technical markers survive punctuation stripping so tokens like "c#",
// "user@host" and "$100" stay intact
func isTechnicalMarker(r rune) bool {
	return r == '@' || r == '#' || r == '$' || r == '%'
}

func stripPunctuation(text string, preserveQuestionMarks bool) string {
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '?' && preserveQuestionMarks:
			b.WriteRune(r)
		case r == '\'':
			// apostrophes within words are handled after contraction
			// expansion; isolated ones go now
			if isWordRune(runes, i-1) && isWordRune(runes, i+1) {
				b.WriteRune(r)
			} else {
				b.WriteRune(' ')
			}
		case r == '-':
			// keep hyphens joining two word characters, prune isolated ones
			if isWordRune(runes, i-1) && isWordRune(runes, i+1) {
				b.WriteRune(r)
			} else {
				b.WriteRune(' ')
			}
		case isTechnicalMarker(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func isWordRune(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) {
		return false
	}
	return unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])
}

// stripApostrophes removes the apostrophes left inside words once
// contraction handling has had its chance ("rock'n'roll" -> "rocknroll").
func stripApostrophes(text string) string {
	return strings.ReplaceAll(text, "'", "")
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
