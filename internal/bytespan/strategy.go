package bytespan

import (
	"fmt"
	"strings"
)

// Strategy selects the chunk width used to compare buffers.
type Strategy uint8

const (
	// Scalar compares one byte at a time.
	Scalar Strategy = iota
	// Wide128 compares 16-byte chunks.
	Wide128
	// Wide256 compares 32-byte chunks, then 16-byte chunks.
	Wide256
)

// detected is resolved once at package initialization.
var detected = detect()

// Detected returns the strategy picked for this process.
func Detected() Strategy {
	return detected
}

// Width returns the number of bytes compared per step.
func (s Strategy) Width() int {
	switch s {
	case Wide256:
		return 32
	case Wide128:
		return 16
	default:
		return 1
	}
}

func (s Strategy) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case Wide128:
		return "wide128"
	case Wide256:
		return "wide256"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy parses a strategy name as printed by [Strategy.String]. "auto"
// and the empty string mean the detected strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return detected, nil
	case "scalar":
		return Scalar, nil
	case "wide128":
		return Wide128, nil
	case "wide256":
		return Wide256, nil
	default:
		return Scalar, fmt.Errorf("unknown strategy %q", name)
	}
}
