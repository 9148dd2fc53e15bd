package lumber

import (
	"strconv"
	"strings"

	opensimplex "github.com/ojrac/opensimplex-go"

	"cycle-ca/internal/core"
	"cycle-ca/internal/cycle"
)

// Example is the published 10x10 area. After ten minutes it holds 37 wooded
// acres and 31 lumberyards, a resource value of 1147.
const Example = `.#.#...|#.
.....#|##|
.|..|...#.
..|#.....#
#.#|||#|#|
...#.||...
.|....|...
||...#|.#|
|.||||..|.
...#.|..|.
`

// Config controls generated areas.
type Config struct {
	Width  int
	Height int
	Seed   int64

	// Frequency scales noise coordinates; lower values give larger forests.
	Frequency float64
	// TreeLevel and YardLevel are noise thresholds in [0, 1).
	TreeLevel float64
	YardLevel float64
}

// DefaultConfig returns the standard configuration, matching the size of
// real puzzle inputs.
func DefaultConfig() Config {
	return Config{
		Width:     50,
		Height:    50,
		Seed:      1337,
		Frequency: 0.18,
		TreeLevel: 0.45,
		YardLevel: 0.7,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Frequency = parsed
		}
	}
	if v, ok := cfg["tree_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.TreeLevel = parsed
		}
	}
	if v, ok := cfg["yard_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.YardLevel = parsed
		}
	}
	if c.YardLevel < c.TreeLevel {
		c.YardLevel = c.TreeLevel
	}
	return c
}

// Generate lays out forests from one noise field and scatters lumberyards
// from a second, so trees and yards form clusters instead of static.
func Generate(c Config) Area {
	forest := opensimplex.NewNormalized(c.Seed)
	industry := opensimplex.NewNormalized(c.Seed + 1)

	g := core.NewByteGrid(c.Width, c.Height)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			fx, fy := float64(x)*c.Frequency, float64(y)*c.Frequency
			acre := Ground
			if forest.Eval2(fx, fy) >= c.TreeLevel {
				acre = Trees
			}
			// Yards use a higher frequency so they appear as small camps.
			if industry.Eval2(fx*2, fy*2) >= c.YardLevel {
				acre = Lumberyard
			}
			g.Set(x, y, uint8(acre))
		}
	}
	return Area{g: g}
}

func init() {
	core.Register("lumber", func(input string, cfg map[string]string) (core.Runner, error) {
		if strings.TrimSpace(input) == "" {
			if _, ok := cfg["seed"]; ok {
				return cycle.NewRunner("lumber", Generate(FromMap(cfg)), Advance), nil
			}
			input = Example
		}
		a, err := Parse(input)
		if err != nil {
			return nil, err
		}
		return cycle.NewRunner("lumber", a, Advance), nil
	})
	core.Describe("lumber",
		core.Parameter{Key: "seed", Type: core.ParamTypeInt, Description: "generate a random area instead of the example"},
		core.Parameter{Key: "w", Type: core.ParamTypeInt, Default: "50", Description: "generated width"},
		core.Parameter{Key: "h", Type: core.ParamTypeInt, Default: "50", Description: "generated height"},
		core.Parameter{Key: "frequency", Type: core.ParamTypeFloat, Default: "0.18", Description: "noise frequency"},
		core.Parameter{Key: "tree_level", Type: core.ParamTypeFloat, Default: "0.45", Description: "forest noise threshold"},
		core.Parameter{Key: "yard_level", Type: core.ParamTypeFloat, Default: "0.7", Description: "lumberyard noise threshold"},
	)
}
