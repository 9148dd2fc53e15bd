package main

import (
	"os"

	"cycle-ca/internal/app"
	_ "cycle-ca/internal/sims/briansbrain"
	_ "cycle-ca/internal/sims/elementary"
	_ "cycle-ca/internal/sims/life"
	_ "cycle-ca/internal/sims/lumber"
	_ "cycle-ca/internal/sims/marble"
	_ "cycle-ca/internal/sims/plants"
)

func main() {
	cfg := app.NewConfig()
	set, err := cfg.Parse(os.Args)
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
	if cfg.List {
		if err := app.List(os.Stdout); err != nil {
			logger.Fatal("list failed", "err", err)
		}
		return
	}

	if err := app.Run(cfg, os.Stdout, os.Stderr, logger); err != nil {
		logger.Fatal("run failed", "err", err)
	}
}
