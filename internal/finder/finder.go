// Package finder finds the longest common prefix or suffix of exactly two
// sequences. The reduce package folds these pairwise results over whole
// collections.
//
// Every variant returns a span sliced from its left operand, so folding
// finder results keeps pointing into the first element of each branch.
package finder

// Finder computes the common span of two sequences.
type Finder[S any] interface {
	// Common returns the longest prefix (or suffix) shared by a and b,
	// sliced from a. It reports false when the shared span is empty.
	Common(a, b S) (S, bool)

	// Empty reports whether s holds nothing.
	Empty(s S) bool
}

var (
	_ Finder[string] = TextPrefix[string]{}
	_ Finder[string] = TextSuffix[string]{}
	_ Finder[[]byte] = BytePrefix[[]byte]{}
	_ Finder[[]byte] = ByteSuffix[[]byte]{}
	_ Finder[[]int]  = SlicePrefix[[]int, int]{}
	_ Finder[[]int]  = SliceSuffix[[]int, int]{}
)
