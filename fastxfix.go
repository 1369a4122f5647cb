// Package fastxfix finds the longest common prefix or suffix of every element
// of a collection, fast.
//
// Three element kinds are supported:
//
//   - Text, strings or byte slices holding UTF-8. Results never split a
//     character: [CommonPrefix], [CommonSuffix] and friends.
//   - Raw bytes, where a result may end inside a character:
//     [CommonPrefixBytes], [CommonSuffixBytes] and friends.
//   - Slices of any comparable element: [CommonPrefixRaw],
//     [CommonSuffixRaw] and friends.
//
// Text and bytes are compared many bytes at a time with the [Strategy]
// picked for the CPU. Large collections are split in half recursively and
// solved on several goroutines; see [WithThreshold].
//
// Every function reports false instead of returning an empty span, so an
// empty collection, a collection whose elements share nothing, and a single
// empty element all report false:
//
//	prefix, ok := fastxfix.CommonPrefix([]string{"foobar", "fooqux", "foodle"})
//	// prefix == "foo", ok == true
//
//	_, ok = fastxfix.CommonSuffix([]string{"foobar", "fooqux", "foodle"})
//	// ok == false
//
// The plain functions return an owned copy. The Ref variants return a view
// into one of the inputs instead, and the Len variants return just the
// length.
package fastxfix

import (
	"slices"

	"github.com/silverstillisntgold/fastxfix/internal/bytespan"
	"github.com/silverstillisntgold/fastxfix/internal/finder"
	"github.com/silverstillisntgold/fastxfix/internal/lcs"
	"github.com/silverstillisntgold/fastxfix/internal/reduce"
)

// Text is a string or a byte slice.
type Text = bytespan.Bytes

// CommonPrefix returns a copy of the longest prefix shared by all items,
// never ending inside a UTF-8 character.
func CommonPrefix[S Text](items []S, opts ...Option) (S, bool) {
	span, ok := CommonPrefixRef(items, opts...)
	return cloned(span, ok)
}

// CommonSuffix returns a copy of the longest suffix shared by all items,
// never starting inside a UTF-8 character.
func CommonSuffix[S Text](items []S, opts ...Option) (S, bool) {
	span, ok := CommonSuffixRef(items, opts...)
	return cloned(span, ok)
}

// CommonPrefixLen returns the byte length of [CommonPrefix] without copying.
// The length is always positive when the second result is true.
func CommonPrefixLen[S Text](items []S, opts ...Option) (int, bool) {
	span, ok := CommonPrefixRef(items, opts...)
	return len(span), ok
}

// CommonSuffixLen returns the byte length of [CommonSuffix] without copying.
func CommonSuffixLen[S Text](items []S, opts ...Option) (int, bool) {
	span, ok := CommonSuffixRef(items, opts...)
	return len(span), ok
}

// CommonPrefixRef is like [CommonPrefix] but returns a view into one of the
// items instead of a copy. Pairs are combined keeping the left operand, so
// the view points into the first item of whichever split produced it;
// callers should rely on its content only.
func CommonPrefixRef[S Text](items []S, opts ...Option) (S, bool) {
	c := newConfig(opts)
	return reduce.Find(items, finder.NewTextPrefix[S](c.strategy), c.reduce)
}

// CommonSuffixRef is like [CommonSuffix] but returns a view into one of the
// items. See [CommonPrefixRef] for which item.
func CommonSuffixRef[S Text](items []S, opts ...Option) (S, bool) {
	c := newConfig(opts)
	return reduce.Find(items, finder.NewTextSuffix[S](c.strategy), c.reduce)
}

// CommonPrefixBytes returns a copy of the longest prefix shared by all items,
// byte for byte.
func CommonPrefixBytes[S Text](items []S, opts ...Option) (S, bool) {
	span, ok := CommonPrefixBytesRef(items, opts...)
	return cloned(span, ok)
}

// CommonSuffixBytes returns a copy of the longest suffix shared by all items,
// byte for byte.
func CommonSuffixBytes[S Text](items []S, opts ...Option) (S, bool) {
	span, ok := CommonSuffixBytesRef(items, opts...)
	return cloned(span, ok)
}

// CommonPrefixBytesLen returns the length of [CommonPrefixBytes] without
// copying.
func CommonPrefixBytesLen[S Text](items []S, opts ...Option) (int, bool) {
	span, ok := CommonPrefixBytesRef(items, opts...)
	return len(span), ok
}

// CommonSuffixBytesLen returns the length of [CommonSuffixBytes] without
// copying.
func CommonSuffixBytesLen[S Text](items []S, opts ...Option) (int, bool) {
	span, ok := CommonSuffixBytesRef(items, opts...)
	return len(span), ok
}

// CommonPrefixBytesRef is like [CommonPrefixBytes] but returns a view into
// one of the items.
func CommonPrefixBytesRef[S Text](items []S, opts ...Option) (S, bool) {
	c := newConfig(opts)
	return reduce.Find(items, finder.NewBytePrefix[S](c.strategy), c.reduce)
}

// CommonSuffixBytesRef is like [CommonSuffixBytes] but returns a view into
// one of the items.
func CommonSuffixBytesRef[S Text](items []S, opts ...Option) (S, bool) {
	c := newConfig(opts)
	return reduce.Find(items, finder.NewByteSuffix[S](c.strategy), c.reduce)
}

// CommonPrefixRaw returns a copy of the longest run of elements all items
// start with.
func CommonPrefixRaw[S ~[]E, E comparable](items []S, opts ...Option) (S, bool) {
	span, ok := CommonPrefixRawRef(items, opts...)
	return slices.Clone(span), ok
}

// CommonSuffixRaw returns a copy of the longest run of elements all items
// end with.
func CommonSuffixRaw[S ~[]E, E comparable](items []S, opts ...Option) (S, bool) {
	span, ok := CommonSuffixRawRef(items, opts...)
	return slices.Clone(span), ok
}

// CommonPrefixRawLen returns the element count of [CommonPrefixRaw] without
// copying.
func CommonPrefixRawLen[S ~[]E, E comparable](items []S, opts ...Option) (int, bool) {
	span, ok := CommonPrefixRawRef(items, opts...)
	return len(span), ok
}

// CommonSuffixRawLen returns the element count of [CommonSuffixRaw] without
// copying.
func CommonSuffixRawLen[S ~[]E, E comparable](items []S, opts ...Option) (int, bool) {
	span, ok := CommonSuffixRawRef(items, opts...)
	return len(span), ok
}

// CommonPrefixRawRef is like [CommonPrefixRaw] but returns a view into one
// of the items. The view's capacity ends with the span, so appending to it
// never writes into the item.
func CommonPrefixRawRef[S ~[]E, E comparable](items []S, opts ...Option) (S, bool) {
	c := newConfig(opts)
	return reduce.Find(items, finder.SlicePrefix[S, E]{}, c.reduce)
}

// CommonSuffixRawRef is like [CommonSuffixRaw] but returns a view into one
// of the items.
func CommonSuffixRawRef[S ~[]E, E comparable](items []S, opts ...Option) (S, bool) {
	c := newConfig(opts)
	return reduce.Find(items, finder.SliceSuffix[S, E]{}, c.reduce)
}

// CommonWordPrefix returns the longest common prefix of ss made of whole
// words. Words break at lower-to-upper case changes, around underscores, and
// between letters and digits, so "getID" and "getIndex" share "get".
func CommonWordPrefix(ss []string, opts ...Option) (string, bool) {
	return lcs.CommonWordPrefix(ss, newConfig(opts).reduce)
}

// CommonWordSuffix returns the longest common suffix of ss made of whole
// words.
func CommonWordSuffix(ss []string, opts ...Option) (string, bool) {
	return lcs.CommonWordSuffix(ss, newConfig(opts).reduce)
}

func cloned[S Text](span S, ok bool) (S, bool) {
	if !ok {
		return span, false
	}
	return S(append([]byte(nil), span...)), true
}
