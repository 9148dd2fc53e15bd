package life

import (
	"strconv"
	"strings"

	"cycle-ca/internal/core"
	"cycle-ca/internal/cycle"
	"cycle-ca/pkg/seed"
)

const glyphs = ".#"

// Board is an immutable Game of Life generation on a bounded grid. Cells
// past the edge are permanently dead.
type Board struct {
	g *core.ByteGrid
}

// New returns an empty board with the provided dimensions.
func New(w, h int) Board {
	return Board{g: core.NewByteGrid(w, h)}
}

// Parse reads '.'/'#' rows.
func Parse(text string) (Board, error) {
	g, err := core.ParseByteGrid(text, glyphs)
	if err != nil {
		return Board{}, err
	}
	return Board{g: g}, nil
}

// Random fills a w×h board with the given live-cell density.
func Random(w, h int, density float64, s int64) Board {
	g := core.NewByteGrid(w, h)
	seed.NewRNG(s).FillBinary(g.Cells(), density)
	return Board{g: g}
}

// With returns a copy of the board with the listed cells alive.
func (b Board) With(cells ...[2]int) Board {
	g := b.g.Clone()
	for _, c := range cells {
		if g.InBounds(c[0], c[1]) {
			g.Set(c[0], c[1], 1)
		}
	}
	return Board{g: g}
}

// Alive reports whether (x, y) is alive.
func (b Board) Alive(x, y int) bool { return b.g.InBounds(x, y) && b.g.At(x, y) == 1 }

// Size returns the grid dimensions.
func (b Board) Size() core.Size { return core.Size{W: b.g.W, H: b.g.H} }

// Summary is the live cell count.
func (b Board) Summary() int64 { return int64(b.g.Count(1)) }

func (b Board) Signature() core.Signature { return b.g.Signature() }

// Anchor is always 0 on a bounded board.
func (b Board) Anchor() int64 { return 0 }

func (b Board) Translate(int64) (Board, error) { return b, nil }

func (b Board) TranslationInvariant() bool { return false }

func (b Board) String() string { return b.g.Render(glyphs) }

// Step advances the board by one generation.
func Step(b Board) Board {
	return Board{g: b.g.Next(func(v uint8, n core.Tally) uint8 {
		neighbors := n[1]
		alive := v == 1
		if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
			return 1
		}
		return 0
	})}
}

// Config holds parameters for random boards.
type Config struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 32, Height: 32, Density: 0.35, Seed: 42}
}

// FromMap populates a Config from a string map.
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

func init() {
	core.Register("life", func(input string, cfg map[string]string) (core.Runner, error) {
		if strings.TrimSpace(input) == "" {
			c := FromMap(cfg)
			return cycle.NewRunner("life", Random(c.Width, c.Height, c.Density, c.Seed), Step), nil
		}
		b, err := Parse(input)
		if err != nil {
			return nil, err
		}
		return cycle.NewRunner("life", b, Step), nil
	})
	core.Describe("life",
		core.Parameter{Key: "w", Type: core.ParamTypeInt, Default: "32", Description: "random board width"},
		core.Parameter{Key: "h", Type: core.ParamTypeInt, Default: "32", Description: "random board height"},
		core.Parameter{Key: "density", Type: core.ParamTypeFloat, Default: "0.35", Description: "random live-cell density"},
		core.Parameter{Key: "seed", Type: core.ParamTypeInt, Default: "42", Description: "random board seed"},
	)
}
