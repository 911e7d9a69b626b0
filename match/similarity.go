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

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

const (
	// fuzzyEditWeight and fuzzyPhoneticWeight combine the two fuzzy
	// similarity measures.
	fuzzyEditWeight     = 0.6
	fuzzyPhoneticWeight = 0.4

	// partialContainmentWeight and partialPositionWeight combine the two
	// partial-match measures.
	partialContainmentWeight = 0.7
	partialPositionWeight    = 0.3
)

// levenshteinSimilarity returns normalized edit-distance similarity in [0,1].
func levenshteinSimilarity(a, b string) float64 {
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim)
}

// jaroWinklerSimilarity returns prefix-weighted match-window similarity in
// [0,1]. It rewards shared leading characters and bounds its match window to
// half the longer string's length.
func jaroWinklerSimilarity(a, b string) float64 {
	sim, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return float64(sim)
}

// FuzzyScore blends edit-distance and Jaro-Winkler similarity.
func FuzzyScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return fuzzyEditWeight*levenshteinSimilarity(a, b) + fuzzyPhoneticWeight*jaroWinklerSimilarity(a, b)
}

// JaccardStrings computes Jaccard similarity of two string sets:
// |intersection| / |union|. Two empty sets score 0.
func JaccardStrings(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, s := range b {
		setB[s] = struct{}{}
	}

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// ContainmentRatio returns len(shorter)/len(longer) when the shorter string
// is contained in the longer, else 0. Containment means either a literal
// substring or the shorter string's tokens appearing in order within the
// longer's tokens, so "capital france" is contained in
// "what is the capital of france".
func ContainmentRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if strings.Contains(longer, shorter) || isTokenSubsequence(shorter, longer) {
		return float64(len(shorter)) / float64(len(longer))
	}
	return 0
}

// isTokenSubsequence reports whether every token of shorter appears in
// longer in the same relative order.
func isTokenSubsequence(shorter, longer string) bool {
	sub := strings.Fields(shorter)
	if len(sub) == 0 {
		return false
	}
	i := 0
	for _, tok := range strings.Fields(longer) {
		if tok == sub[i] {
			i++
			if i == len(sub) {
				return true
			}
		}
	}
	return false
}

// PositionalOverlap counts same-index token equality divided by the longer
// token count.
func PositionalOverlap(a, b string) float64 {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	shorter := len(tokensA)
	longer := len(tokensB)
	if shorter > longer {
		shorter, longer = longer, shorter
	}

	matches := 0
	for i := 0; i < shorter; i++ {
		if tokensA[i] == tokensB[i] {
			matches++
		}
	}
	return float64(matches) / float64(longer)
}

// PartialScore blends containment and positional overlap.
func PartialScore(a, b string) float64 {
	return partialContainmentWeight*ContainmentRatio(a, b) + partialPositionWeight*PositionalOverlap(a, b)
}
