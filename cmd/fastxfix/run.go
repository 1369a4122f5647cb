package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"

	"github.com/silverstillisntgold/fastxfix"
)

const (
	modeText  = "text"
	modeBytes = "bytes"
	modeWords = "words"
)

// maxLine bounds a single input line.
const maxLine = 64 << 20

func run(ctx context.Context, cmd *cli.Command) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	opts, err := options(cmd)
	if err != nil {
		return err
	}

	lines, err := readInputs(cmd.Root().Reader, cmd.Args().Slice())
	if err != nil {
		return err
	}
	logger.Debug("read input", "lines", len(lines))

	if cmd.Bool("fold") {
		caser := cases.Fold()
		for i, l := range lines {
			lines[i] = caser.String(l)
		}
	}
	if cmd.Bool("unique") {
		lines = unique(lines)
		logger.Debug("removed duplicates", "lines", len(lines))
	}

	span, ok, err := search(lines, cmd.String("mode"), cmd.Bool("suffix"), opts)
	if err != nil {
		return err
	}
	logger.Debug("searched",
		slog.String("mode", cmd.String("mode")),
		slog.Bool("suffix", cmd.Bool("suffix")),
		slog.Bool("found", ok),
		slog.Int("len", len(span)),
	)
	if !ok {
		return errNoSpan
	}

	w := cmd.Root().Writer
	if cmd.Bool("len") {
		_, err = fmt.Fprintln(w, len(span))
	} else {
		_, err = fmt.Fprintln(w, span)
	}
	return err
}

func search(lines []string, mode string, suffix bool, opts []fastxfix.Option) (string, bool, error) {
	switch mode {
	case modeText:
		if suffix {
			span, ok := fastxfix.CommonSuffixRef(lines, opts...)
			return span, ok, nil
		}
		span, ok := fastxfix.CommonPrefixRef(lines, opts...)
		return span, ok, nil
	case modeBytes:
		items := make([][]byte, len(lines))
		for i, l := range lines {
			items[i] = []byte(l)
		}
		var (
			span []byte
			ok   bool
		)
		if suffix {
			span, ok = fastxfix.CommonSuffixBytesRef(items, opts...)
		} else {
			span, ok = fastxfix.CommonPrefixBytesRef(items, opts...)
		}
		return string(span), ok, nil
	case modeWords:
		if suffix {
			span, ok := fastxfix.CommonWordSuffix(lines, opts...)
			return span, ok, nil
		}
		span, ok := fastxfix.CommonWordPrefix(lines, opts...)
		return span, ok, nil
	default:
		return "", false, fmt.Errorf("unknown mode %q", mode)
	}
}

// readInputs reads lines from every named file, or from stdin when there are
// none. "-" names stdin. Every unreadable file is reported.
func readInputs(stdin io.Reader, names []string) ([]string, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var (
		lines []string
		errs  []error
	)
	for _, name := range names {
		var err error
		if name == "-" {
			lines, err = readLines(lines, stdin)
		} else {
			lines, err = readFile(lines, name)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return lines, nil
}

func readFile(lines []string, name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return lines, err
	}
	defer f.Close()
	return readLines(lines, f)
}

func readLines(lines []string, r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// unique drops repeated lines, keeping the first occurrence of each.
func unique(lines []string) []string {
	set := linkedhashset.New()
	for _, l := range lines {
		set.Add(l)
	}
	out := make([]string, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(string))
	}
	return out
}
