package briansbrain

import (
	"strconv"
	"strings"

	"cycle-ca/internal/core"
	"cycle-ca/internal/cycle"
	"cycle-ca/pkg/seed"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

const glyphs = ".O*"

// Brain is an immutable Brian's Brain generation on a bounded grid.
type Brain struct {
	g *core.ByteGrid
}

// Parse reads rows of '.' (dead), 'O' (firing) and '*' (dying).
func Parse(text string) (Brain, error) {
	g, err := core.ParseByteGrid(text, glyphs)
	if err != nil {
		return Brain{}, err
	}
	return Brain{g: g}, nil
}

// Random seeds a w×h grid where roughly one cell in eight is firing.
func Random(w, h int, s int64) Brain {
	g := core.NewByteGrid(w, h)
	rng := seed.NewRNG(s)
	for i := range g.Cells() {
		if rng.Uint8n(8) == 0 {
			g.Cells()[i] = stateOn
		}
	}
	return Brain{g: g}
}

// Firing returns the number of firing cells.
func (b Brain) Firing() int { return b.g.Count(stateOn) }

// Summary is the firing cell count.
func (b Brain) Summary() int64 { return int64(b.Firing()) }

func (b Brain) Signature() core.Signature { return b.g.Signature() }

// Anchor is always 0 on a bounded grid.
func (b Brain) Anchor() int64 { return 0 }

func (b Brain) Translate(int64) (Brain, error) { return b, nil }

func (b Brain) TranslationInvariant() bool { return false }

func (b Brain) String() string { return b.g.Render(glyphs) }

// Step advances the automaton by one tick.
func Step(b Brain) Brain {
	return Brain{g: b.g.Next(func(v uint8, n core.Tally) uint8 {
		switch v {
		case stateOn:
			return stateDying
		case stateDying:
			return stateDead
		default:
			if n[stateOn] == 2 {
				return stateOn
			}
			return stateDead
		}
	})}
}

func init() {
	core.Register("briansbrain", func(input string, cfg map[string]string) (core.Runner, error) {
		if strings.TrimSpace(input) != "" {
			b, err := Parse(input)
			if err != nil {
				return nil, err
			}
			return cycle.NewRunner("briansbrain", b, Step), nil
		}
		w, h, s := 24, 24, int64(42)
		if v, err := strconv.Atoi(cfg["w"]); err == nil && v > 0 {
			w = v
		}
		if v, err := strconv.Atoi(cfg["h"]); err == nil && v > 0 {
			h = v
		}
		if v, err := strconv.ParseInt(cfg["seed"], 10, 64); err == nil {
			s = v
		}
		return cycle.NewRunner("briansbrain", Random(w, h, s), Step), nil
	})
	core.Describe("briansbrain",
		core.Parameter{Key: "w", Type: core.ParamTypeInt, Default: "24", Description: "random grid width"},
		core.Parameter{Key: "h", Type: core.ParamTypeInt, Default: "24", Description: "random grid height"},
		core.Parameter{Key: "seed", Type: core.ParamTypeInt, Default: "42", Description: "random grid seed"},
	)
}
