package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/silverstillisntgold/fastxfix"
	"github.com/silverstillisntgold/fastxfix/internal/logging"
)

var Version = "dev"

// errNoSpan reports that the inputs share nothing. It maps to exit status 1
// without a message, like grep finding no match.
var errNoSpan = errors.New("no common span")

func main() {
	cmd := newCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, errNoSpan) {
			os.Exit(1)
		}
		message := err.Error()
		if useColor(cmd.String("color"), os.Stderr) {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "fastxfix",
		Usage:     "Print the longest common prefix or suffix of input lines",
		UsageText: "fastxfix [options] [FILE...]",
		Version:   Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "suffix",
				Aliases: []string{"s"},
				Usage:   "find the common suffix instead of the prefix",
			},
			&cli.BoolFlag{
				Name:    "len",
				Aliases: []string{"l"},
				Usage:   "print the length in bytes instead of the span",
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Value:   modeText,
				Usage:   "comparison mode (text|bytes|words)",
				Sources: cli.EnvVars("FASTXFIX_MODE"),
			},
			&cli.BoolFlag{
				Name:  "fold",
				Usage: "case-fold every line before comparing",
			},
			&cli.BoolFlag{
				Name:    "unique",
				Aliases: []string{"u"},
				Usage:   "drop repeated lines, keeping the first occurrence",
			},
		}, commonFlags()...),
		Action:   run,
		Commands: []*cli.Command{benchCommand()},
	}
}

// commonFlags tune the search and logging. Subcommands inherit them.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "threshold",
			Usage:   "largest collection folded on one goroutine (0 = default)",
			Sources: cli.EnvVars("FASTXFIX_THRESHOLD"),
		},
		&cli.BoolFlag{
			Name:    "sequential",
			Usage:   "never split the collection across goroutines",
			Sources: cli.EnvVars("FASTXFIX_SEQUENTIAL"),
		},
		&cli.StringFlag{
			Name:    "strategy",
			Value:   "auto",
			Usage:   "byte comparison strategy (auto|scalar|wide128|wide256)",
			Sources: cli.EnvVars("FASTXFIX_STRATEGY"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "minimum log level (debug|info|warn|error)",
			Sources: cli.EnvVars("FASTXFIX_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   logging.DevHandler,
			Usage:   "log format (dev|text|json)",
			Sources: cli.EnvVars("FASTXFIX_LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:  "color",
			Value: "auto",
			Usage: "colorize (auto|always|never)",
		},
	}
}

func newLogger(cmd *cli.Command) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return nil, err
	}
	return logging.New(cmd.Root().ErrWriter, logging.Options{
		Level:   level,
		Handler: cmd.String("log-format"),
		Color:   useColor(cmd.String("color"), cmd.Root().ErrWriter),
	})
}

// options turns the shared flags into search options.
func options(cmd *cli.Command) ([]fastxfix.Option, error) {
	strategy, err := fastxfix.ParseStrategy(cmd.String("strategy"))
	if err != nil {
		return nil, err
	}
	opts := []fastxfix.Option{
		fastxfix.WithStrategy(strategy),
		fastxfix.WithThreshold(int(cmd.Int("threshold"))),
	}
	if cmd.Bool("sequential") {
		opts = append(opts, fastxfix.Sequential())
	}
	return opts, nil
}

// useColor reports whether ANSI color codes should be written to w.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isatty.IsTerminal(f.Fd())
	}
}

var reTab = regexp.MustCompile(`(?m)^\t.+`)

// colorize paints the message red and its indented detail lines dim.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := reTab.ReplaceAllStringFunc(message, func(s string) string {
		return dim + s + reset + red
	})
	return red + m + reset
}
