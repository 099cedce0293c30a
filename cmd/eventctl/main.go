package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/serialevents/config"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	errUsage = errors.New("usage error")
)

const usage = `eventctl runs a scenario of event dispatches against a set of tracing listeners, and reports which listeners fired.

USAGE:
eventctl [FLAGS] SCENARIO_FILE

FLAGS
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("eventctl", flag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.SetOutput(stderr)
	var (
		logLevel = flags.String("log-level", "", "Overrides the scenario's log level (debug, info, warn, error)")
		format   = flags.String("format", "", "Forces the format of every dispatch in the scenario")
		jsonLogs = flags.Bool("json-logs", false, "Writes logs as JSON even when STDERR is a terminal")
	)
	flags.Usage = func() {
		_, _ = fmt.Fprint(stderr, usage+flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("%w: expected exactly one scenario file", errUsage)
	}

	scenario, err := config.Load(flags.Arg(0))
	if err != nil {
		return err
	}
	if len(*logLevel) > 0 {
		scenario.LogLevel = strings.ToLower(*logLevel)
	}
	if len(*format) > 0 {
		scenario.ForceFormat(*format)
	}
	if err := scenario.Validate(); err != nil {
		return err
	}
	log := newLogger(stderr, scenario.Level(), *jsonLogs)
	return newRunner(scenario, log, stdout).Run()
}

func newLogger(out io.Writer, level slog.Level, jsonLogs bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if !jsonLogs && isTerminal(out) {
		return slog.New(slog.NewTextHandler(out, opts))
	}
	return slog.New(slog.NewJSONHandler(out, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
