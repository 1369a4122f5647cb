// Package bytespan counts how many bytes two buffers share at their start or
// at their end.
//
// The comparison walks the shorter buffer in fixed-width chunks. Each chunk
// is loaded as little-endian 64-bit words and XORed against the other side,
// so a zero byte in the XOR word marks an equal byte and the first nonzero
// byte is found with a single bit scan. Whatever is left after the last full
// chunk is compared byte by byte.
//
// The chunk width is a [Strategy] chosen once when the package is
// initialized, from the CPU features reported by golang.org/x/sys/cpu. Build
// with the purego tag to force the byte-by-byte [Scalar] strategy.
package bytespan

// Bytes is a byte-addressable buffer: a string or a byte slice.
type Bytes interface {
	~string | ~[]byte
}

// Comparator counts common leading and trailing bytes with a fixed strategy.
// The zero value uses the detected strategy.
type Comparator[B Bytes] struct {
	strategy Strategy
	prefix   func(a, b B) int
	suffix   func(a, b B) int
}

// New returns a Comparator bound to s. Unknown strategies fall back to
// Scalar.
func New[B Bytes](s Strategy) Comparator[B] {
	switch s {
	case Wide256:
		return Comparator[B]{strategy: s, prefix: prefix256[B], suffix: suffix256[B]}
	case Wide128:
		return Comparator[B]{strategy: s, prefix: prefix128[B], suffix: suffix128[B]}
	default:
		return Comparator[B]{strategy: Scalar, prefix: prefixScalar[B], suffix: suffixScalar[B]}
	}
}

// Strategy returns the strategy c compares with.
func (c Comparator[B]) Strategy() Strategy {
	if c.prefix == nil {
		return detected
	}
	return c.strategy
}

// PrefixLen returns the number of equal bytes at the start of a and b. It
// never exceeds min(len(a), len(b)).
func (c Comparator[B]) PrefixLen(a, b B) int {
	if c.prefix == nil {
		return New[B](detected).prefix(a, b)
	}
	return c.prefix(a, b)
}

// SuffixLen returns the number of equal bytes at the end of a and b. It
// never exceeds min(len(a), len(b)).
func (c Comparator[B]) SuffixLen(a, b B) int {
	if c.suffix == nil {
		return New[B](detected).suffix(a, b)
	}
	return c.suffix(a, b)
}

// PrefixLen is like [Comparator.PrefixLen] with the detected strategy.
func PrefixLen[B Bytes](a, b B) int {
	return New[B](detected).prefix(a, b)
}

// SuffixLen is like [Comparator.SuffixLen] with the detected strategy.
func SuffixLen[B Bytes](a, b B) int {
	return New[B](detected).suffix(a, b)
}
