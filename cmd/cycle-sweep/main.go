package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pborman/getopt/v2"

	"cycle-ca/internal/app"
	_ "cycle-ca/internal/sims/briansbrain"
	_ "cycle-ca/internal/sims/elementary"
	_ "cycle-ca/internal/sims/life"
	_ "cycle-ca/internal/sims/lumber"
	_ "cycle-ca/internal/sims/marble"
	_ "cycle-ca/internal/sims/plants"
)

func main() {
	cfg := app.NewSweepConfig()
	set := getopt.New()
	cfg.Bind(set)
	set.SetProgram("cycle-sweep")
	err := set.Getopt(os.Args, nil)
	logger := app.NewLogger(os.Stderr, cfg.Verbose)
	if err != nil {
		logger.Error("bad arguments", "err", err)
		set.PrintUsage(os.Stderr)
		os.Exit(2)
	}
	if cfg.Help {
		set.PrintUsage(os.Stdout)
		return
	}

	targets, err := cfg.Targets()
	if err != nil {
		logger.Fatal("bad range", "err", err)
	}
	input, err := app.ReadInput(cfg.Input, os.Stdin)
	if err != nil {
		logger.Fatal("reading input", "err", err)
	}
	runner, err := app.Load(cfg.Sim, input, cfg.Set)
	if err != nil {
		logger.Fatal("loading automaton", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Checking %d targets of %s (%d workers)\n", len(targets), runner.Name(), cfg.Workers)
	start := time.Now()
	results, err := app.Sweep(ctx, runner, targets, cfg.Workers, logger)
	if err != nil {
		logger.Fatal("sweep failed", "err", err)
	}

	var mismatches []app.SweepResult
	var simulated, saved int64
	for _, res := range results {
		simulated += res.Projected.Simulated
		saved += res.Target - res.Projected.Simulated
		if !res.Match() {
			mismatches = append(mismatches, res)
		}
	}
	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].Target < mismatches[j].Target })

	fmt.Printf("\nChecked %d targets in %s: %s steps simulated, %s skipped\n",
		len(results), time.Since(start).Round(time.Millisecond), humanize.Comma(simulated), humanize.Comma(saved))
	for i := 0; i < len(mismatches) && i < 10; i++ {
		res := mismatches[i]
		fmt.Printf("  MISMATCH target=%d projected=%d naive=%d offset=%d period=%d shift=%d\n",
			res.Target, res.Projected.Summary, res.Naive, res.Projected.Offset, res.Projected.Period, res.Projected.Shift)
	}
	if len(mismatches) > 0 {
		os.Exit(1)
	}
	fmt.Println("All projections match direct simulation.")
}
