package fastxfix

import (
	"github.com/silverstillisntgold/fastxfix/internal/bytespan"
	"github.com/silverstillisntgold/fastxfix/internal/reduce"
)

// Strategy selects how many bytes are compared per step when searching text
// and bytes. See [DetectedStrategy].
type Strategy = bytespan.Strategy

const (
	// Scalar compares one byte at a time.
	Scalar = bytespan.Scalar
	// Wide128 compares 16 bytes at a time.
	Wide128 = bytespan.Wide128
	// Wide256 compares 32 bytes at a time.
	Wide256 = bytespan.Wide256
)

// DefaultThreshold is the largest collection searched without splitting it
// across goroutines.
const DefaultThreshold = reduce.DefaultThreshold

// DetectedStrategy returns the strategy picked for this CPU when the process
// started. It is used unless [WithStrategy] says otherwise.
func DetectedStrategy() Strategy {
	return bytespan.Detected()
}

// ParseStrategy parses "scalar", "wide128", "wide256", or "auto".
func ParseStrategy(name string) (Strategy, error) {
	return bytespan.ParseStrategy(name)
}

// Option configures a single search.
type Option func(*config)

type config struct {
	reduce   reduce.Options
	strategy Strategy
}

func newConfig(opts []Option) config {
	c := config{strategy: bytespan.Detected()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithThreshold sets the largest collection folded on a single goroutine.
// Larger collections are split in half recursively. n <= 0 restores
// [DefaultThreshold].
func WithThreshold(n int) Option {
	return func(c *config) {
		c.reduce.Threshold = n
	}
}

// Sequential searches on the calling goroutine only.
func Sequential() Option {
	return func(c *config) {
		c.reduce.Sequential = true
	}
}

// WithStrategy overrides the detected comparison strategy.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}
