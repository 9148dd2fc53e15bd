package app

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pborman/getopt/v2"
	"golang.org/x/sync/errgroup"

	"cycle-ca/internal/core"
)

// SweepConfig represents the command-line parameters for cycle-sweep.
type SweepConfig struct {
	Sim     string
	Input   string
	Set     []string
	From    int64
	To      int64
	Stride  int64
	Workers int
	Verbose bool
	Help    bool
}

// NewSweepConfig returns a SweepConfig populated with sensible defaults.
func NewSweepConfig() *SweepConfig {
	return &SweepConfig{Sim: "lumber", From: 0, To: 1000, Stride: 1, Workers: runtime.NumCPU()}
}

// Bind attaches the configuration to the provided option set.
func (c *SweepConfig) Bind(s *getopt.Set) {
	s.FlagLong(&c.Sim, "sim", 's', "automaton to check", "name")
	s.FlagLong(&c.Input, "input", 'i', "puzzle input file, - for stdin", "path")
	s.FlagLong(&c.Set, "set", 0, "automaton parameter override (repeatable)", "key=value")
	s.FlagLong(&c.From, "from", 0, "first target step", "N")
	s.FlagLong(&c.To, "to", 0, "last target step", "N")
	s.FlagLong(&c.Stride, "stride", 0, "distance between targets", "N")
	s.FlagLong(&c.Workers, "workers", 'w', "number of worker goroutines", "count")
	s.FlagLong(&c.Verbose, "verbose", 'v', "debug logging")
	s.FlagLong(&c.Help, "help", 'h', "display help")
}

// Targets lists from, from+stride, ... up to and including to.
func (c *SweepConfig) Targets() ([]int64, error) {
	if c.From < 0 || c.To < c.From || c.Stride <= 0 {
		return nil, fmt.Errorf("invalid target range %d..%d step %d", c.From, c.To, c.Stride)
	}
	var targets []int64
	for n := c.From; n <= c.To; n += c.Stride {
		targets = append(targets, n)
		if n > c.To-c.Stride {
			break
		}
	}
	return targets, nil
}

// SweepResult compares projection against direct simulation for one target.
type SweepResult struct {
	Target    int64
	Projected core.Report
	Naive     int64
}

// Match reports whether projection and simulation agree.
func (r SweepResult) Match() bool { return r.Projected.Summary == r.Naive }

// Sweep checks every target concurrently. Each projection is itself
// sequential; only independent targets run in parallel.
func Sweep(ctx context.Context, runner core.Runner, targets []int64, workers int, logger *log.Logger) ([]SweepResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]SweepResult, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, n := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l := logger.With("run", uuid.NewString()[:8], "target", n)
			proj, err := runner.Run(n, core.Options{Logger: l})
			if err != nil {
				return fmt.Errorf("projecting %d: %w", n, err)
			}
			naive, err := runner.Run(n, core.Options{Logger: l, Naive: true})
			if err != nil {
				return fmt.Errorf("simulating %d: %w", n, err)
			}
			results[i] = SweepResult{Target: n, Projected: proj, Naive: naive.Summary}
			l.Debug("checked", "projected", proj.Summary, "naive", naive.Summary, "cycled", proj.Cycled)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
