package plants

import (
	"fmt"
	"strconv"
	"strings"

	"cycle-ca/internal/core"
	"cycle-ca/internal/cycle"
	"cycle-ca/pkg/seed"
)

// Example is the small published puzzle: after 20 generations the plant
// positions sum to 325.
const Example = `initial state: #..#.#..##......###...###

...## => #
..#.. => #
.#... => #
.#.#. => #
.#.## => #
.##.. => #
.#### => #
#.#.# => #
#.### => #
##.#. => #
##.## => #
###.. => #
###.# => #
####. => #
`

const header = "initial state: "

// Parse reads an "initial state:" line followed by rule lines. Pot 0 is the
// first character of the initial state.
func Parse(text string) (State, Rules, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], header) {
		return State{}, Rules{}, fmt.Errorf("%w: missing %q header", ErrMalformed, strings.TrimSpace(header))
	}
	s, err := FromRow(strings.TrimSpace(lines[0][len(header):]), 0)
	if err != nil {
		return State{}, Rules{}, err
	}
	r, err := ParseRules(lines[1:])
	if err != nil {
		return State{}, Rules{}, err
	}
	return s, r, nil
}

// Config controls generated initial rows.
type Config struct {
	Width   int
	Density float64
	Seed    int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 100, Density: 0.5}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
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
		}
	}
	return c
}

// Generate returns a random row of c.Width pots starting at pot 0.
func Generate(c Config) State {
	buf := make([]uint8, c.Width)
	seed.NewRNG(c.Seed).FillBinary(buf, c.Density)
	var alive []int64
	for i, v := range buf {
		if v == 1 {
			alive = append(alive, int64(i))
		}
	}
	return State{alive: alive}
}

func init() {
	core.Register("plants", func(input string, cfg map[string]string) (core.Runner, error) {
		text := input
		if strings.TrimSpace(text) == "" {
			text = Example
		}
		s, r, err := Parse(text)
		if err != nil {
			return nil, err
		}
		if _, ok := cfg["seed"]; ok {
			s = Generate(FromMap(cfg))
		}
		return cycle.NewRunner("plants", s, r.Advance), nil
	})
	core.Describe("plants",
		core.Parameter{Key: "seed", Type: core.ParamTypeInt, Description: "replace the initial row with a random one"},
		core.Parameter{Key: "width", Type: core.ParamTypeInt, Default: "100", Description: "random row width"},
		core.Parameter{Key: "density", Type: core.ParamTypeFloat, Default: "0.5", Description: "random row plant density"},
	)
}
