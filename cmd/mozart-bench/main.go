// Command mozart-bench times the event emitter in both checking modes and
// box storage on the stack, on plain heap slots and on pooled heap slots.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	// Load MOZART_* settings from a .env file
	_ "github.com/joho/godotenv/autoload"

	"github.com/casualjim/mozart"
	"github.com/casualjim/mozart/emitter"
	"github.com/casualjim/mozart/pkg/slogx"
	"github.com/casualjim/mozart/timer"
	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"
	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	level := slog.LevelWarn
	if emitter.FromEnv().IsAttentive() {
		level = slog.LevelDebug
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}
	log = zerolog.New(output).With().Timestamp().Logger()
	slog.SetDefault(slog.New(
		zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: level}),
	))
}

func main() {
	if err := mainE(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("benchmark failed")
		os.Exit(1)
	}
}

type options struct {
	config  string
	times   int
	rounds  int
	unit    string
	report  bool
	dump    bool
	noColor bool
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("mozart-bench", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "YAML scenario file")
	fs.IntVar(&o.times, "times", 0, "iterations per benchmark (env "+envTimes+")")
	fs.IntVar(&o.rounds, "rounds", 0, "number of rounds (env "+envRounds+")")
	fs.StringVar(&o.unit, "unit", "", "time unit: ns, us, ms, s or m")
	fs.BoolVar(&o.report, "report", false, "render a markdown summary")
	fs.BoolVar(&o.dump, "dump", false, "dump the heap pool statistics")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	if err := fs.Parse(args); err != nil {
		return o, fs, err
	}
	return o, fs, nil
}

// resolveScenario layers the scenario file, the environment and the flags,
// in that order.
func resolveScenario(o options, fs *flag.FlagSet) (scenario, error) {
	sc, err := loadScenario(o.config)
	if err != nil {
		return sc, err
	}
	if err := sc.applyEnv(); err != nil {
		return sc, err
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "times":
			sc.Times = o.times
		case "rounds":
			sc.Rounds = o.rounds
		case "unit":
			if sc.Unit, err = timer.ParseUnit(o.unit); err != nil {
				flagErr = err
			}
		}
	})
	if flagErr != nil {
		return sc, flagErr
	}
	return sc, sc.validate()
}

func mainE(ctx context.Context, args []string, out io.Writer) error {
	o, fs, err := parseFlags(args)
	if err != nil {
		return err
	}
	if o.noColor {
		color.NoColor = true
	}

	sc, err := resolveScenario(o, fs)
	if err != nil {
		return err
	}
	slog.Debug("resolved scenario",
		slogx.LoggerName("mozart-bench"),
		slog.Int("times", sc.Times),
		slog.Int("rounds", sc.Rounds),
		slogx.Stringer("unit", sc.Unit),
	)

	failures := 0
	sub := emitter.On1(mozart.CoreEvents(), mozart.EventThrow, func(err error) {
		failures++
		slog.Warn("mozart failure", slogx.LoggerName("mozart-bench"), slogx.Error(err))
	})
	defer sub.Unsubscribe()

	r := newRunner(sc)
	defer r.heap.Close()

	var all []result
	for n := range sc.Rounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		results, err := r.round(n)
		if err != nil {
			return fmt.Errorf("round %d: %w", n, err)
		}
		printRound(out, n, results)
		all = append(all, results...)
	}

	stats := r.heap.Stats()
	if o.report {
		if err := renderMarkdown(out, markdownReport(sc, all, stats, failures)); err != nil {
			return err
		}
	}
	if o.dump {
		printer := pp.New()
		printer.SetOutput(out)
		printer.SetColoringEnabled(!color.NoColor)
		if _, err := printer.Println(stats); err != nil {
			return err
		}
	}
	return nil
}
