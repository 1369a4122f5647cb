// Package reduce folds a pairwise [finder.Finder] over a whole collection to
// find the span common to every element.
//
// Collections larger than a threshold are split in half recursively and the
// halves are solved on separate goroutines while workers are available.
// Smaller pieces are folded sequentially, stopping at the first pair that
// shares nothing.
package reduce

import (
	"github.com/sourcegraph/conc"

	"github.com/silverstillisntgold/fastxfix/internal/finder"
)

// DefaultThreshold is the largest collection folded without splitting.
const DefaultThreshold = 1 << 12

// Options controls how a collection is reduced.
type Options struct {
	// Threshold is the largest piece folded without splitting further. Zero
	// or negative means DefaultThreshold.
	Threshold int

	// Sequential disables splitting altogether.
	Sequential bool
}

func (o Options) threshold() int {
	if o.Threshold <= 0 {
		return DefaultThreshold
	}
	return o.Threshold
}

// Find returns the longest span common to all items, as computed by f. It
// reports false when items is empty, when any two items share nothing, or
// when the only item is itself empty.
//
// The result is a view into one of the items. Since f slices its left
// operand, that is the first item of the branch that produced it.
func Find[S any, F finder.Finder[S]](items []S, f F, o Options) (S, bool) {
	var (
		span S
		ok   bool
	)
	switch {
	case len(items) == 0:
	case o.Sequential || len(items) <= o.threshold():
		span, ok = fold(items, f)
	default:
		span, ok = split(items, f, o.threshold())
	}
	if !ok || f.Empty(span) {
		var zero S
		return zero, false
	}
	return span, true
}

// fold combines items left to right. items must not be empty.
func fold[S any, F finder.Finder[S]](items []S, f F) (S, bool) {
	acc := items[0]
	for _, item := range items[1:] {
		var ok bool
		if acc, ok = f.Common(acc, item); !ok {
			return acc, false
		}
	}
	return acc, true
}

// split solves both halves of items and combines them. The left half goes to
// another goroutine when a worker token is free; otherwise both halves run
// here and the right half is skipped once the left one shares nothing.
func split[S any, F finder.Finder[S]](items []S, f F, threshold int) (S, bool) {
	if len(items) <= threshold {
		return fold(items, f)
	}

	mid := len(items) / 2
	var (
		left, right     S
		leftOK, rightOK bool
	)
	if w := workers(); w.sem.TryAcquire(1) {
		var wg conc.WaitGroup
		wg.Go(func() {
			defer w.sem.Release(1)
			left, leftOK = split(items[:mid], f, threshold)
		})
		right, rightOK = split(items[mid:], f, threshold)
		wg.Wait()
	} else {
		if left, leftOK = split(items[:mid], f, threshold); leftOK {
			right, rightOK = split(items[mid:], f, threshold)
		}
	}
	if !leftOK || !rightOK {
		var zero S
		return zero, false
	}
	return f.Common(left, right)
}
