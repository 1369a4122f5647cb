package bytespan_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/silverstillisntgold/fastxfix/internal/bytespan"
)

var strategies = []bytespan.Strategy{bytespan.Scalar, bytespan.Wide128, bytespan.Wide256}

func naivePrefix(a, b []byte) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func naiveSuffix(a, b []byte) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

func TestPrefixLen(t *testing.T) {
	long := strings.Repeat("0123456789abcdef", 5)
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "Empty", a: "", b: "", want: 0},
		{name: "OneEmpty", a: "abc", b: "", want: 0},
		{name: "NoMatch", a: "abc", b: "xbc", want: 0},
		{name: "Short", a: "foobar", b: "fooqux", want: 3},
		{name: "Itself", a: "hello", b: "hell", want: 4},
		{name: "Equal", a: long, b: long, want: len(long)},
		{name: "MismatchInFirstWord", a: long, b: long[:5] + "X" + long[6:], want: 5},
		{name: "MismatchInSecondWord", a: long, b: long[:13] + "X" + long[14:], want: 13},
		{name: "MismatchInThirdWord", a: long, b: long[:20] + "X" + long[21:], want: 20},
		{name: "MismatchInFourthWord", a: long, b: long[:31] + "X" + long[32:], want: 31},
		{name: "MismatchAfterChunks", a: long, b: long[:70] + "X" + long[71:], want: 70},
		{name: "ShorterSide", a: long, b: long[:37], want: 37},
	}

	for _, s := range strategies {
		c := bytespan.New[string](s)
		for _, tt := range tests {
			t.Run(s.String()+"/"+tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, c.PrefixLen(tt.a, tt.b))
				assert.Equal(t, tt.want, c.PrefixLen(tt.b, tt.a))
			})
		}
	}
}

func TestSuffixLen(t *testing.T) {
	long := strings.Repeat("0123456789abcdef", 5)
	end := len(long)
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "Empty", a: "", b: "", want: 0},
		{name: "OneEmpty", a: "abc", b: "", want: 0},
		{name: "NoMatch", a: "abc", b: "abx", want: 0},
		{name: "Short", a: "awful", b: "beautiful", want: 3},
		{name: "Itself", a: "hello", b: "llo", want: 3},
		{name: "Equal", a: long, b: long, want: end},
		{name: "MismatchInFirstWord", a: long, b: long[:end-6] + "X" + long[end-5:], want: 5},
		{name: "MismatchInSecondWord", a: long, b: long[:end-14] + "X" + long[end-13:], want: 13},
		{name: "MismatchInThirdWord", a: long, b: long[:end-21] + "X" + long[end-20:], want: 20},
		{name: "MismatchInFourthWord", a: long, b: long[:end-32] + "X" + long[end-31:], want: 31},
		{name: "MismatchAfterChunks", a: long, b: long[:end-71] + "X" + long[end-70:], want: 70},
		{name: "ShorterSide", a: long, b: long[end-37:], want: 37},
		{name: "DifferentLengths", a: "xxxxxxxxxxxxxxxxxxxx" + long, b: "y" + long, want: end},
	}

	for _, s := range strategies {
		c := bytespan.New[string](s)
		for _, tt := range tests {
			t.Run(s.String()+"/"+tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, c.SuffixLen(tt.a, tt.b))
				assert.Equal(t, tt.want, c.SuffixLen(tt.b, tt.a))
			})
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	for round := 0; round < 2000; round++ {
		common := frand.Bytes(frand.Intn(100))
		a := append(append([]byte{}, common...), frand.Bytes(frand.Intn(40))...)
		b := append(append([]byte{}, common...), frand.Bytes(frand.Intn(40))...)
		ra := append(frand.Bytes(frand.Intn(40)), common...)
		rb := append(frand.Bytes(frand.Intn(40)), common...)

		for _, s := range strategies {
			c := bytespan.New[[]byte](s)
			require.Equal(t, naivePrefix(a, b), c.PrefixLen(a, b), "strategy %v", s)
			require.Equal(t, naiveSuffix(ra, rb), c.SuffixLen(ra, rb), "strategy %v", s)
		}
	}
}

func TestZeroComparator(t *testing.T) {
	var c bytespan.Comparator[string]
	assert.Equal(t, bytespan.Detected(), c.Strategy())
	assert.Equal(t, 3, c.PrefixLen("foobar", "fooqux"))
	assert.Equal(t, 4, c.SuffixLen("wowie_clap", "lol-clap"))
	assert.Equal(t, 3, bytespan.PrefixLen([]byte("foobar"), []byte("fooqux")))
	assert.Equal(t, 4, bytespan.SuffixLen("wowie_clap", "lol-clap"))
}

func TestParseStrategy(t *testing.T) {
	for _, s := range strategies {
		got, err := bytespan.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := bytespan.ParseStrategy("auto")
	require.NoError(t, err)
	assert.Equal(t, bytespan.Detected(), got)

	_, err = bytespan.ParseStrategy("wide512")
	assert.Error(t, err)

	assert.Equal(t, 1, bytespan.Scalar.Width())
	assert.Equal(t, 16, bytespan.Wide128.Width())
	assert.Equal(t, 32, bytespan.Wide256.Width())
	assert.Equal(t, "Strategy(9)", bytespan.Strategy(9).String())
}

// FuzzPrefixLen checks that every strategy agrees with a byte loop and never
// reports more bytes than the shorter input holds.
func FuzzPrefixLen(f *testing.F) {
	f.Add([]byte("foobar"), []byte("fooqux"))
	f.Add([]byte(strings.Repeat("a", 40)), []byte(strings.Repeat("a", 33)+"b"))
	f.Add([]byte{}, []byte("x"))

	f.Fuzz(func(t *testing.T, a, b []byte) {
		want := naivePrefix(a, b)
		for _, s := range strategies {
			got := bytespan.New[[]byte](s).PrefixLen(a, b)
			if got != want || got > min(len(a), len(b)) {
				t.Fatalf("%v: PrefixLen = %d, want %d", s, got, want)
			}
		}
	})
}

func FuzzSuffixLen(f *testing.F) {
	f.Add([]byte("wowie_clap"), []byte("lol-clap"))
	f.Add([]byte(strings.Repeat("a", 40)), []byte("b"+strings.Repeat("a", 33)))
	f.Add([]byte{}, []byte("x"))

	f.Fuzz(func(t *testing.T, a, b []byte) {
		want := naiveSuffix(a, b)
		for _, s := range strategies {
			got := bytespan.New[[]byte](s).SuffixLen(a, b)
			if got != want || got > min(len(a), len(b)) {
				t.Fatalf("%v: SuffixLen = %d, want %d", s, got, want)
			}
		}
	})
}

func BenchmarkPrefixLen(b *testing.B) {
	for _, size := range []int{7, 33, 127, 1024} {
		x := frand.Bytes(size)
		y := append(append([]byte{}, x...), 'z')
		for _, s := range strategies {
			c := bytespan.New[[]byte](s)
			b.Run(fmt.Sprintf("%v/%d", s, size), func(b *testing.B) {
				b.SetBytes(int64(size))
				for b.Loop() {
					c.PrefixLen(x, y)
				}
			})
		}
	}
}

func BenchmarkSuffixLen(b *testing.B) {
	for _, size := range []int{7, 33, 127, 1024} {
		x := frand.Bytes(size)
		y := append([]byte{'z'}, x...)
		for _, s := range strategies {
			c := bytespan.New[[]byte](s)
			b.Run(fmt.Sprintf("%v/%d", s, size), func(b *testing.B) {
				b.SetBytes(int64(size))
				for b.Loop() {
					c.SuffixLen(x, y)
				}
			})
		}
	}
}
