package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sourcegraph/conc/iter"
	"github.com/urfave/cli/v3"
	"lukechampine.com/frand"

	"github.com/silverstillisntgold/fastxfix"
)

const benchCommon = "愛 This is the common SHITE xD 愛"

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Time prefix and suffix searches over growing random collections",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sizes",
				Value: "16384,65536,262144,1048576,4194304",
				Usage: "comma-separated collection sizes",
			},
			&cli.IntFlag{
				Name:  "rounds",
				Value: 64,
				Usage: "random verification rounds",
			},
		},
		Action: bench,
	}
}

func bench(ctx context.Context, cmd *cli.Command) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	sizes, err := parseSizes(cmd.String("sizes"))
	if err != nil {
		return err
	}
	rounds := int(cmd.Int("rounds"))
	w := cmd.Root().Writer

	failed := 0
	for _, suffix := range []bool{false, true} {
		strs := fixedStrings(sizes[len(sizes)-1], suffix)
		for _, size := range sizes {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			var (
				span string
				ok   bool
			)
			if suffix {
				span, ok = fastxfix.CommonSuffixRef(strs[:size], opts...)
			} else {
				span, ok = fastxfix.CommonPrefixRef(strs[:size], opts...)
			}
			elapsed := time.Since(start)
			found := ok && span == benchCommon
			if !found {
				failed++
			}
			logger.Info("timed",
				slog.Bool("suffix", suffix),
				slog.Int("size", size),
				slog.Duration("elapsed", elapsed),
				slog.Bool("found", found),
			)
			fmt.Fprintf(w, "%-6s %10d strings %12s %s\n", kind(suffix), size, elapsed.Round(time.Microsecond), verdict(found))
		}
	}

	for range rounds {
		common := randomText(64)
		strs := randomStrings(sizes[0], 16)
		iter.ForEach(strs, func(s *string) { *s = common + *s + common })
		if span, ok := fastxfix.CommonPrefixRef(strs, opts...); !ok || span != common {
			logger.Error("prefix mismatch", "want", common, "got", span)
			failed++
		}
		if span, ok := fastxfix.CommonSuffixRef(strs, opts...); !ok || span != common {
			logger.Error("suffix mismatch", "want", common, "got", span)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d bench checks failed", failed)
	}
	fmt.Fprintln(w, "SUCCESS")
	return nil
}

func kind(suffix bool) string {
	if suffix {
		return "suffix"
	}
	return "prefix"
}

func verdict(found bool) string {
	if found {
		return "ok"
	}
	return "FAIL"
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", field, err)
		}
		if n < 2 {
			return nil, fmt.Errorf("size %d is below 2", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	return sizes, nil
}

// fixedStrings returns n distinct numeric strings that all start (or end)
// with benchCommon.
func fixedStrings(n int, suffix bool) []string {
	strs := make([]string, n)
	iter.ForEach(strs, func(s *string) {
		digits := strconv.FormatUint(frand.Uint64n(1<<64-1), 10)
		if suffix {
			*s = digits + benchCommon
		} else {
			*s = benchCommon + digits
		}
	})
	return strs
}

func randomStrings(n, runes int) []string {
	strs := make([]string, n)
	iter.ForEach(strs, func(s *string) { *s = randomText(runes) })
	return strs
}

// randomText returns runes random scalar values drawn from the whole
// code point range.
func randomText(runes int) string {
	var b strings.Builder
	for n := 0; n < runes; {
		if r := rune(frand.Intn(1 << 21)); utf8.ValidRune(r) {
			b.WriteRune(r)
			n++
		}
	}
	return b.String()
}
