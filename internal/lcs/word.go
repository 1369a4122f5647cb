// Package lcs finds the longest common prefix and suffix of strings that is
// made of whole words.
package lcs

import (
	"strings"

	"github.com/silverstillisntgold/fastxfix/internal/finder"
	"github.com/silverstillisntgold/fastxfix/internal/reduce"
)

// CommonWordPrefix returns the longest common prefix of the strings in ss
// based on word boundaries detected by SplitWords. It reports false when ss
// is empty or the strings do not start with the same word.
func CommonWordPrefix(ss []string, o reduce.Options) (string, bool) {
	words, ok := reduce.Find(splitAll(ss), finder.SlicePrefix[[]string, string]{}, o)
	if !ok {
		return "", false
	}
	return strings.Join(words, ""), true
}

// CommonWordSuffix returns the longest common suffix of the strings in ss
// based on word boundaries detected by SplitWords. It reports false when ss
// is empty or the strings do not end with the same word.
func CommonWordSuffix(ss []string, o reduce.Options) (string, bool) {
	words, ok := reduce.Find(splitAll(ss), finder.SliceSuffix[[]string, string]{}, o)
	if !ok {
		return "", false
	}
	return strings.Join(words, ""), true
}

func splitAll(ss []string) [][]string {
	sss := make([][]string, len(ss))
	for i, s := range ss {
		sss[i] = SplitWords(s)
	}
	return sss
}

// SplitWords splits a string into words based on character transitions. It
// detects word boundaries at:
//   - Uppercase letter after lowercase letter: "getID" -> "get" + "ID"
//   - Around underscores: "send_nowait" -> "send" + "_" + "nowait"
//   - Around digits: "file2name" -> "file" + "2" + "name"
func SplitWords(s string) []string {
	var words []string
	i := 0
	for i < len(s) {
		splitted := false

		j := i + 1
		for ; j < len(s); j++ {
			var next byte
			if j != len(s)-1 {
				next = s[j+1]
			}

			if isWordBoundary(s[j-1], s[j], next) {
				words = append(words, s[i:j])
				i = j
				splitted = true
				break
			}
		}

		if !splitted {
			words = append(words, s[i:])
			break
		}
	}
	return words
}

// isWordBoundary detects word boundaries based on character transitions.
func isWordBoundary(prev, curr, next byte) bool {
	// Uppercase after lowercase (camelCase transition)
	if prev >= 'a' && prev <= 'z' && curr >= 'A' && curr <= 'Z' {
		return true
	}
	// Uppercase before lowercase (camelCase transition)
	if curr >= 'A' && curr <= 'Z' && next >= 'a' && next <= 'z' {
		return true
	}

	// Underscore after non-underscore
	if prev != '_' && curr == '_' {
		return true
	}
	// Non-underscore after underscore
	if prev == '_' && curr != '_' {
		return true
	}

	// Digit after letter
	if (prev >= 'a' && prev <= 'z' || prev >= 'A' && prev <= 'Z') && (curr >= '0' && curr <= '9') {
		return true
	}
	// Letter after digit
	if (prev >= '0' && prev <= '9') && (curr >= 'a' && curr <= 'z' || curr >= 'A' && curr <= 'Z') {
		return true
	}

	return false
}
