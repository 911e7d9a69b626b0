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


package openai

import "strings"

// repairJSON attempts to fix the malformations small models produce most
// often: unquoted object keys and trailing commas before a closing brace
// or bracket. String contents are left untouched.
func repairJSON(s string) string {
	var out strings.Builder
	out.Grow(len(s) + 16)

	runes := []rune(s)
	inString := false
	escaped := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if inString {
			out.WriteRune(r)
			if escaped {
				escaped = false
			} else if r == '\\' {
				escaped = true
			} else if r == '"' {
				inString = false
			}
			continue
		}

		switch {
		case r == '"':
			inString = true
			out.WriteRune(r)

		case r == ',':
			// drop the comma if only whitespace separates it from } or ]
			j := i + 1
			for j < len(runes) && isSpaceRune(runes[j]) {
				j++
			}
			if j < len(runes) && (runes[j] == '}' || runes[j] == ']') {
				continue
			}
			out.WriteRune(r)

		case isIdentRune(r) && startsUnquotedKey(runes, i):
			// quote the bare key up to the colon
			out.WriteRune('"')
			for i < len(runes) && isIdentRune(runes[i]) {
				out.WriteRune(runes[i])
				i++
			}
			out.WriteRune('"')
			// swallow an orphan closing quote ("missing opening quote" case)
			if i < len(runes) && runes[i] == '"' {
				i++
			}
			i-- // loop increment re-consumes the rune after the key

		default:
			out.WriteRune(r)
		}
	}

	return out.String()
}

// startsUnquotedKey reports whether the identifier starting at i is followed
// by a colon, which marks it as a bare object key.
func startsUnquotedKey(runes []rune, i int) bool {
	// must directly follow { or , (ignoring whitespace)
	j := i - 1
	for j >= 0 && isSpaceRune(runes[j]) {
		j--
	}
	if j < 0 || (runes[j] != '{' && runes[j] != ',') {
		return false
	}

	k := i
	for k < len(runes) && isIdentRune(runes[k]) {
		k++
	}
	// tolerate an orphan closing quote before the colon
	if k < len(runes) && runes[k] == '"' {
		k++
	}
	for k < len(runes) && isSpaceRune(runes[k]) {
		k++
	}
	return k < len(runes) && runes[k] == ':'
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
