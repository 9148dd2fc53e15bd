package core

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedGrid is returned when grid text cannot be parsed.
var ErrMalformedGrid = errors.New("malformed grid")

// Tally counts neighbouring cells by value. Values above 7 are not counted.
type Tally [8]int

// ByteGrid stores a bounded 2D grid of byte-sized cell values in row-major
// order. Cells outside the grid do not exist: edge cells simply have fewer
// neighbours.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// ParseByteGrid reads one row per line, mapping each rune to its index in
// glyphs. Blank lines are skipped; all rows must have the same width.
func ParseByteGrid(text, glyphs string) (*ByteGrid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r \t")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	g := NewByteGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.W {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedGrid, y+1, len(row), g.W)
		}
		for x, r := range row {
			v := strings.IndexRune(glyphs, r)
			if v < 0 {
				return nil, fmt.Errorf("%w: unexpected %q at row %d column %d", ErrMalformedGrid, r, y+1, x+1)
			}
			g.data[g.Index(x, y)] = uint8(v)
		}
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies on the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y).
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Set stores v at (x, y).
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[g.Index(x, y)] = v }

// Clone returns an independent copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	return &ByteGrid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}

// Count returns how many cells hold v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Moore tallies the values of the up to eight in-bounds neighbours of (x, y).
func (g *ByteGrid) Moore(x, y int) Tally {
	var t Tally
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			if v := g.data[ny*g.W+nx]; int(v) < len(t) {
				t[v]++
			}
		}
	}
	return t
}

// Next builds the successor grid by applying cell to every position. The
// receiver is left untouched.
func (g *ByteGrid) Next(cell func(v uint8, n Tally) uint8) *ByteGrid {
	next := &ByteGrid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := y*g.W + x
			next.data[idx] = cell(g.data[idx], g.Moore(x, y))
		}
	}
	return next
}

// Signature digests the dimensions and raw cell contents.
func (g *ByteGrid) Signature() Signature {
	buf := make([]byte, 16+len(g.data))
	binary.LittleEndian.PutUint64(buf[0:], uint64(g.W))
	binary.LittleEndian.PutUint64(buf[8:], uint64(g.H))
	copy(buf[16:], g.data)
	return Sign(buf)
}

// Render draws the grid using glyphs[v] for each cell value.
func (g *ByteGrid) Render(glyphs string) string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for _, v := range g.data[y*g.W : (y+1)*g.W] {
			if int(v) < len(glyphs) {
				b.WriteByte(glyphs[v])
			} else {
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
