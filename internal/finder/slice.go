package finder

// SlicePrefix finds common prefixes of arbitrary element sequences, one
// element at a time.
type SlicePrefix[S ~[]E, E comparable] struct{}

func (SlicePrefix[S, E]) Common(a, b S) (S, bool) {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	if i == 0 {
		var zero S
		return zero, false
	}
	return a[:i:i], true
}

func (SlicePrefix[S, E]) Empty(s S) bool { return len(s) == 0 }

// SliceSuffix finds common suffixes of arbitrary element sequences, one
// element at a time.
type SliceSuffix[S ~[]E, E comparable] struct{}

func (SliceSuffix[S, E]) Common(a, b S) (S, bool) {
	n := min(len(a), len(b))
	ea, eb := len(a), len(b)
	i := 0
	for i < n && a[ea-1-i] == b[eb-1-i] {
		i++
	}
	if i == 0 {
		var zero S
		return zero, false
	}
	return a[ea-i:], true
}

func (SliceSuffix[S, E]) Empty(s S) bool { return len(s) == 0 }
