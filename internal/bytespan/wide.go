package bytespan

import "math/bits"

// load64 reads p[i:i+8] as a little-endian word, so p[i] lands in the low
// byte and p[i+7] in the high byte.
func load64[B Bytes](p B, i int) uint64 {
	_ = p[i+7]
	return uint64(p[i]) | uint64(p[i+1])<<8 | uint64(p[i+2])<<16 |
		uint64(p[i+3])<<24 | uint64(p[i+4])<<32 | uint64(p[i+5])<<40 |
		uint64(p[i+6])<<48 | uint64(p[i+7])<<56
}

// firstDiff returns the number of equal low bytes in the XOR word d.
func firstDiff(d uint64) int {
	return bits.TrailingZeros64(d) >> 3
}

// lastDiff returns the number of equal high bytes in the XOR word d.
func lastDiff(d uint64) int {
	return bits.LeadingZeros64(d) >> 3
}

func prefix128[B Bytes](a, b B) int {
	return prefix128From(a, b, 0, min(len(a), len(b)))
}

// prefix128From continues a prefix scan at offset i, where a[:i] and b[:i]
// are already known to be equal.
func prefix128From[B Bytes](a, b B, i, n int) int {
	for ; i+16 <= n; i += 16 {
		if d := load64(a, i) ^ load64(b, i); d != 0 {
			return i + firstDiff(d)
		}
		if d := load64(a, i+8) ^ load64(b, i+8); d != 0 {
			return i + 8 + firstDiff(d)
		}
	}
	return prefixScalarFrom(a, b, i, n)
}

func prefix256[B Bytes](a, b B) int {
	n := min(len(a), len(b))
	i := 0
	for ; i+32 <= n; i += 32 {
		d0 := load64(a, i) ^ load64(b, i)
		d1 := load64(a, i+8) ^ load64(b, i+8)
		d2 := load64(a, i+16) ^ load64(b, i+16)
		d3 := load64(a, i+24) ^ load64(b, i+24)
		if d0|d1|d2|d3 == 0 {
			continue
		}
		switch {
		case d0 != 0:
			return i + firstDiff(d0)
		case d1 != 0:
			return i + 8 + firstDiff(d1)
		case d2 != 0:
			return i + 16 + firstDiff(d2)
		default:
			return i + 24 + firstDiff(d3)
		}
	}
	return prefix128From(a, b, i, n)
}

func suffix128[B Bytes](a, b B) int {
	return suffix128From(a, b, 0, min(len(a), len(b)))
}

// suffix128From continues a suffix scan after the last i bytes of a and b
// are already known to be equal. Offsets count from the end of each buffer.
func suffix128From[B Bytes](a, b B, i, n int) int {
	ea, eb := len(a), len(b)
	for ; i+16 <= n; i += 16 {
		if d := load64(a, ea-i-8) ^ load64(b, eb-i-8); d != 0 {
			return i + lastDiff(d)
		}
		if d := load64(a, ea-i-16) ^ load64(b, eb-i-16); d != 0 {
			return i + 8 + lastDiff(d)
		}
	}
	return suffixScalarFrom(a, b, i, n)
}

func suffix256[B Bytes](a, b B) int {
	n := min(len(a), len(b))
	ea, eb := len(a), len(b)
	i := 0
	for ; i+32 <= n; i += 32 {
		d0 := load64(a, ea-i-8) ^ load64(b, eb-i-8)
		d1 := load64(a, ea-i-16) ^ load64(b, eb-i-16)
		d2 := load64(a, ea-i-24) ^ load64(b, eb-i-24)
		d3 := load64(a, ea-i-32) ^ load64(b, eb-i-32)
		if d0|d1|d2|d3 == 0 {
			continue
		}
		switch {
		case d0 != 0:
			return i + lastDiff(d0)
		case d1 != 0:
			return i + 8 + lastDiff(d1)
		case d2 != 0:
			return i + 16 + lastDiff(d2)
		default:
			return i + 24 + lastDiff(d3)
		}
	}
	return suffix128From(a, b, i, n)
}
