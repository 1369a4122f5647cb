package bytespan

func prefixScalar[B Bytes](a, b B) int {
	return prefixScalarFrom(a, b, 0, min(len(a), len(b)))
}

func prefixScalarFrom[B Bytes](a, b B, i, n int) int {
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func suffixScalar[B Bytes](a, b B) int {
	return suffixScalarFrom(a, b, 0, min(len(a), len(b)))
}

func suffixScalarFrom[B Bytes](a, b B, i, n int) int {
	ea, eb := len(a), len(b)
	for i < n && a[ea-1-i] == b[eb-1-i] {
		i++
	}
	return i
}
