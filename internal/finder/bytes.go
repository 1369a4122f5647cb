package finder

import "github.com/silverstillisntgold/fastxfix/internal/bytespan"

// BytePrefix finds common prefixes of raw bytes. Unlike [TextPrefix] it may
// cut through a multi-byte character.
type BytePrefix[S bytespan.Bytes] struct {
	cmp bytespan.Comparator[S]
}

// NewBytePrefix returns a BytePrefix comparing with strategy s.
func NewBytePrefix[S bytespan.Bytes](s bytespan.Strategy) BytePrefix[S] {
	return BytePrefix[S]{cmp: bytespan.New[S](s)}
}

func (f BytePrefix[S]) Common(a, b S) (S, bool) {
	end := f.cmp.PrefixLen(a, b)
	if end == 0 {
		var zero S
		return zero, false
	}
	return a[:end], true
}

func (BytePrefix[S]) Empty(s S) bool { return len(s) == 0 }

// ByteSuffix finds common suffixes of raw bytes.
type ByteSuffix[S bytespan.Bytes] struct {
	cmp bytespan.Comparator[S]
}

// NewByteSuffix returns a ByteSuffix comparing with strategy s.
func NewByteSuffix[S bytespan.Bytes](s bytespan.Strategy) ByteSuffix[S] {
	return ByteSuffix[S]{cmp: bytespan.New[S](s)}
}

func (f ByteSuffix[S]) Common(a, b S) (S, bool) {
	n := f.cmp.SuffixLen(a, b)
	if n == 0 {
		var zero S
		return zero, false
	}
	return a[len(a)-n:], true
}

func (ByteSuffix[S]) Empty(s S) bool { return len(s) == 0 }
