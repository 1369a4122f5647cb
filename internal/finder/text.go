package finder

import (
	"github.com/silverstillisntgold/fastxfix/internal/boundary"
	"github.com/silverstillisntgold/fastxfix/internal/bytespan"
)

// TextPrefix finds common prefixes of UTF-8 text without splitting a
// character. The zero value compares with the detected strategy.
type TextPrefix[S bytespan.Bytes] struct {
	cmp bytespan.Comparator[S]
}

// NewTextPrefix returns a TextPrefix comparing with strategy s.
func NewTextPrefix[S bytespan.Bytes](s bytespan.Strategy) TextPrefix[S] {
	return TextPrefix[S]{cmp: bytespan.New[S](s)}
}

func (f TextPrefix[S]) Common(a, b S) (S, bool) {
	end := boundary.Floor(a, f.cmp.PrefixLen(a, b))
	if end == 0 {
		var zero S
		return zero, false
	}
	return a[:end], true
}

func (TextPrefix[S]) Empty(s S) bool { return len(s) == 0 }

// TextSuffix finds common suffixes of UTF-8 text without splitting a
// character. The zero value compares with the detected strategy.
type TextSuffix[S bytespan.Bytes] struct {
	cmp bytespan.Comparator[S]
}

// NewTextSuffix returns a TextSuffix comparing with strategy s.
func NewTextSuffix[S bytespan.Bytes](s bytespan.Strategy) TextSuffix[S] {
	return TextSuffix[S]{cmp: bytespan.New[S](s)}
}

func (f TextSuffix[S]) Common(a, b S) (S, bool) {
	begin := boundary.Ceil(a, len(a)-f.cmp.SuffixLen(a, b))
	if begin == len(a) {
		var zero S
		return zero, false
	}
	return a[begin:], true
}

func (TextSuffix[S]) Empty(s S) bool { return len(s) == 0 }
