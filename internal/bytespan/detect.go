//go:build !purego

package bytespan

import "golang.org/x/sys/cpu"

func detect() Strategy {
	if cpu.X86.HasAVX2 {
		return Wide256
	}
	// Word pairs need nothing beyond 64-bit loads.
	return Wide128
}
