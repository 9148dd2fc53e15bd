// Package app wires command-line configuration to the automaton registry.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cycle-ca/internal/core"
)

// NewLogger returns the stderr logger shared by the commands.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "cycle-ca",
	})
}

// Load looks up the named automaton and builds it from input and overrides.
func Load(sim, input string, set []string) (core.Runner, error) {
	factory, ok := core.Sims()[sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", sim)
	}
	params, err := Params(set)
	if err != nil {
		return nil, err
	}
	runner, err := factory(input, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sim, err)
	}
	return runner, nil
}

// Run projects the configured automaton and prints its summary to stdout.
func Run(cfg *Config, stdout, stderr io.Writer, logger *log.Logger) error {
	input, err := ReadInput(cfg.Input, os.Stdin)
	if err != nil {
		return err
	}
	runner, err := Load(cfg.Sim, input, cfg.Set)
	if err != nil {
		return err
	}

	opts := core.Options{Logger: logger, HistoryLimit: cfg.History, Naive: cfg.Naive}
	var bar *progressbar.ProgressBar
	if cfg.Naive {
		bar = progressbar.NewOptions64(cfg.Steps,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription(runner.Name()),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
		opts.Progress = func(step int64) { _ = bar.Set64(step) }
	}

	logger.Debug("starting", "sim", runner.Name(), "target", humanize.Comma(cfg.Steps), "naive", cfg.Naive)
	start := time.Now()
	rep, err := runner.Run(cfg.Steps, opts)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(stderr)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", runner.Name(), err)
	}

	fields := []any{
		"sim", rep.Name,
		"target", humanize.Comma(rep.Target),
		"simulated", humanize.Comma(rep.Simulated),
		"elapsed", time.Since(start).Round(time.Millisecond),
	}
	if rep.Cycled {
		fields = append(fields, "offset", rep.Offset, "period", rep.Period, "shift", rep.Shift)
	}
	logger.Info("done", fields...)
	return Print(stdout, rep, cfg.Verbose)
}

// Print writes the summary, with digit grouping when pretty is set.
func Print(w io.Writer, rep core.Report, pretty bool) error {
	if pretty {
		_, err := message.NewPrinter(language.English).Fprintf(w, "%d\n", rep.Summary)
		return err
	}
	_, err := fmt.Fprintln(w, rep.Summary)
	return err
}

// List prints every registered automaton and the parameters it accepts.
func List(w io.Writer) error {
	for _, name := range core.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
		for _, p := range core.Parameters(name) {
			def := p.Default
			if def == "" {
				def = "-"
			}
			if _, err := fmt.Fprintf(w, "  %-12s %-6s %-6s %s\n", p.Key, p.Type, def, p.Description); err != nil {
				return err
			}
		}
	}
	return nil
}
