package boundary_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/silverstillisntgold/fastxfix/internal/boundary"
)

func TestIsBoundary(t *testing.T) {
	s := "a€b" // 'a', 3-byte '€', 'b'
	want := []bool{true, true, false, false, true, true}
	for i, w := range want {
		assert.Equal(t, w, boundary.IsBoundary(s, i), "offset %d", i)
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		name string
		s    string
		i    int
		want int
	}{
		{name: "Start", s: "café", i: 0, want: 0},
		{name: "End", s: "café", i: 5, want: 5},
		{name: "ASCII", s: "café", i: 2, want: 2},
		{name: "InsideTwoByte", s: "café", i: 4, want: 3},
		{name: "InsideFourByte", s: "a🤖b", i: 4, want: 1},
		{name: "LeadingMultiByte", s: "äbc", i: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, boundary.Floor(tt.s, tt.i))
			assert.Equal(t, tt.want, boundary.Floor([]byte(tt.s), tt.i))
		})
	}
}

func TestCeil(t *testing.T) {
	tests := []struct {
		name string
		s    string
		i    int
		want int
	}{
		{name: "Start", s: "café", i: 0, want: 0},
		{name: "End", s: "café", i: 5, want: 5},
		{name: "InsideTwoByte", s: "café", i: 4, want: 5},
		{name: "InsideFourByte", s: "a🤖b", i: 2, want: 5},
		{name: "InsideThreeByte", s: "abc€", i: 4, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, boundary.Ceil(tt.s, tt.i))
			assert.Equal(t, tt.want, boundary.Ceil([]byte(tt.s), tt.i))
		})
	}
}

func TestStepLimit(t *testing.T) {
	s := "x😀€ä世界👨‍👩‍👧y"
	for i := 0; i <= len(s); i++ {
		f := boundary.Floor(s, i)
		c := boundary.Ceil(s, i)
		assert.LessOrEqual(t, i-f, utf8.UTFMax-1)
		assert.LessOrEqual(t, c-i, utf8.UTFMax-1)
		assert.True(t, utf8.ValidString(s[:f]))
		assert.True(t, utf8.ValidString(s[c:]))
	}
}

func TestInvalidUTF8(t *testing.T) {
	s := "a\x80\x80\x80\x80\x80b"
	assert.Equal(t, 0, boundary.Floor(s, 5))
	assert.Equal(t, 6, boundary.Ceil(s, 2))

	tail := "\x80\x80\x80\x80\x80"
	assert.Equal(t, 0, boundary.Floor(tail, 3))
	assert.Equal(t, len(tail), boundary.Ceil(tail, 3))
}
