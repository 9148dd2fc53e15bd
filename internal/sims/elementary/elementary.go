// Package elementary runs one-dimensional Wolfram codes on an unbounded row
// by embedding the radius-1 rule into the plant automaton's radius-2 table.
package elementary

import (
	"fmt"
	"strconv"
	"strings"

	"cycle-ca/internal/core"
	"cycle-ca/internal/cycle"
	"cycle-ca/internal/sims/plants"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule    uint8
	Width   int
	Density float64
	Seed    int64
	Random  bool
}

// DefaultConfig returns the default configuration. Rule 184 is the traffic
// rule: a finite row settles into cars drifting right, which projects well.
func DefaultConfig() Config {
	return Config{Rule: 184, Width: 64, Density: 0.3}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
			c.Random = true
		}
	}
	return c
}

// Rules expands a Wolfram code into a five-pot table that ignores the outer
// two pots. Odd codes turn empty space on and are rejected.
func Rules(code uint8) (plants.Rules, error) {
	var r plants.Rules
	if code&1 == 1 {
		return r, fmt.Errorf("rule %d: %w", code, plants.ErrInfiniteGrowth)
	}
	for idx := range r {
		mid := (idx >> 1) & 7
		r[idx] = (code>>mid)&1 == 1
	}
	return r, nil
}

// Initial returns a single live cell at 0, or a random row when c.Random.
func Initial(c Config) plants.State {
	if c.Random {
		return plants.Generate(plants.Config{Width: c.Width, Density: c.Density, Seed: c.Seed})
	}
	return plants.New(0)
}

func init() {
	core.Register("elementary", func(input string, cfg map[string]string) (core.Runner, error) {
		c := FromMap(cfg)
		r, err := Rules(c.Rule)
		if err != nil {
			return nil, err
		}
		s := Initial(c)
		if row := strings.TrimSpace(input); row != "" {
			if s, err = plants.FromRow(row, 0); err != nil {
				return nil, err
			}
		}
		return cycle.NewRunner("elementary", s, r.Advance), nil
	})
	core.Describe("elementary",
		core.Parameter{Key: "rule", Type: core.ParamTypeInt, Default: "184", Description: "even Wolfram code"},
		core.Parameter{Key: "seed", Type: core.ParamTypeInt, Description: "start from a random row instead of a single cell"},
		core.Parameter{Key: "width", Type: core.ParamTypeInt, Default: "64", Description: "random row width"},
		core.Parameter{Key: "density", Type: core.ParamTypeFloat, Default: "0.3", Description: "random row density"},
	)
}
