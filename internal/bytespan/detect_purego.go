//go:build purego

package bytespan

func detect() Strategy {
	return Scalar
}
