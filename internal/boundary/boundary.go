// Package boundary moves byte offsets onto UTF-8 character boundaries.
package boundary

import (
	"unicode/utf8"

	"github.com/silverstillisntgold/fastxfix/internal/bytespan"
)

// IsBoundary reports whether offset i of s starts a character or is one of
// the two ends of s. i must be in [0, len(s)].
func IsBoundary[B bytespan.Bytes](s B, i int) bool {
	return i == 0 || i == len(s) || utf8.RuneStart(s[i])
}

// Floor returns the largest boundary of s that is <= i. On valid UTF-8 it
// steps back at most utf8.UTFMax-1 bytes.
func Floor[B bytespan.Bytes](s B, i int) int {
	for !IsBoundary(s, i) {
		i--
	}
	return i
}

// Ceil returns the smallest boundary of s that is >= i. On valid UTF-8 it
// steps forward at most utf8.UTFMax-1 bytes.
func Ceil[B bytespan.Bytes](s B, i int) int {
	for !IsBoundary(s, i) {
		i++
	}
	return i
}
