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


package keywords

// protectedWords are question words and polarity qualifiers that are never
// dropped as stopwords. They carry the discriminating signal between
// otherwise-similar questions ("why is X" vs "what is X", "is" vs "is not").
var protectedWords = map[string]struct{}{
	"what":    {},
	"who":     {},
	"where":   {},
	"when":    {},
	"why":     {},
	"how":     {},
	"which":   {},
	"not":     {},
	"no":      {},
	"never":   {},
	"neither": {},
	"nor":     {},
	"without": {},
}

// stopwords is the default English stopword set. Overridable via WithStopwords.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {},
	"against": {}, "all": {}, "am": {}, "an": {}, "and": {},
	"any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "by": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "does": {}, "doing": {},
	"down": {}, "during": {}, "each": {}, "few": {}, "for": {},
	"from": {}, "further": {}, "had": {}, "has": {}, "have": {},
	"having": {}, "he": {}, "her": {}, "here": {}, "hers": {},
	"him": {}, "his": {}, "i": {}, "if": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "its": {}, "just": {},
	"me": {}, "more": {}, "most": {}, "my": {}, "of": {},
	"off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "out": {}, "over": {},
	"own": {}, "same": {}, "she": {}, "should": {}, "so": {},
	"some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"to": {}, "too": {}, "under": {}, "until": {}, "up": {},
	"very": {}, "was": {}, "we": {}, "were": {}, "while": {},
	"will": {}, "with": {}, "would": {}, "you": {}, "your": {},
	"yours": {},
}

// IsStopword reports whether word (already lowercased) is a stopword that is
// not in the protected set.
func IsStopword(word string) bool {
	if _, protected := protectedWords[word]; protected {
		return false
	}
	_, ok := stopwords[word]
	return ok
}

// IsProtected reports whether word is a protected question or polarity word.
func IsProtected(word string) bool {
	_, ok := protectedWords[word]
	return ok
}
