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


package normalize

import "strings"

// contractions maps lowercase contracted forms to their expansions.
// Matching is case-insensitive per whole token.
var contractions = map[string]string{
	"ain't":     "is not",
	"aren't":    "are not",
	"can't":     "cannot",
	"couldn't":  "could not",
	"didn't":    "did not",
	"doesn't":   "does not",
	"don't":     "do not",
	"hadn't":    "had not",
	"hasn't":    "has not",
	"haven't":   "have not",
	"he'd":      "he would",
	"he'll":     "he will",
	"he's":      "he is",
	"here's":    "here is",
	"how'd":     "how did",
	"how'll":    "how will",
	"how's":     "how is",
	"i'd":       "i would",
	"i'll":      "i will",
	"i'm":       "i am",
	"i've":      "i have",
	"isn't":     "is not",
	"it'd":      "it would",
	"it'll":     "it will",
	"it's":      "it is",
	"let's":     "let us",
	"mightn't":  "might not",
	"mustn't":   "must not",
	"needn't":   "need not",
	"she'd":     "she would",
	"she'll":    "she will",
	"she's":     "she is",
	"shouldn't": "should not",
	"that'll":   "that will",
	"that's":    "that is",
	"there's":   "there is",
	"they'd":    "they would",
	"they'll":   "they will",
	"they're":   "they are",
	"they've":   "they have",
	"wasn't":    "was not",
	"we'd":      "we would",
	"we'll":     "we will",
	"we're":     "we are",
	"we've":     "we have",
	"weren't":   "were not",
	"what'll":   "what will",
	"what're":   "what are",
	"what's":    "what is",
	"what've":   "what have",
	"when's":    "when is",
	"where'd":   "where did",
	"where's":   "where is",
	"which's":   "which is",
	"who'd":     "who would",
	"who'll":    "who will",
	"who're":    "who are",
	"who's":     "who is",
	"who've":    "who have",
	"why's":     "why is",
	"won't":     "will not",
	"wouldn't":  "would not",
	"you'd":     "you would",
	"you'll":    "you will",
	"you're":    "you are",
	"you've":    "you have",
}

func expandContractions(text string) string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if expanded, ok := contractions[strings.ToLower(f)]; ok {
			out = append(out, expanded)
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}
