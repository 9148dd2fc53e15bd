// Package lumber implements the lumber collection area: a bounded grid of
// open ground, trees and lumberyards that changes all at once each minute.
package lumber

import (
	"cycle-ca/internal/core"
)

// Acre enumerates the cell values.
type Acre uint8

const (
	Ground Acre = iota
	Trees
	Lumberyard
)

// glyphs maps each Acre to its text form; the index is the Acre value.
const glyphs = ".|#"

// Area is an immutable snapshot of the collection area.
type Area struct {
	g *core.ByteGrid
}

// NewArea wraps g. The grid must not be modified afterwards.
func NewArea(g *core.ByteGrid) Area { return Area{g: g} }

// Parse reads '.', '|' and '#' rows.
func Parse(text string) (Area, error) {
	g, err := core.ParseByteGrid(text, glyphs)
	if err != nil {
		return Area{}, err
	}
	return Area{g: g}, nil
}

// Size returns the area dimensions.
func (a Area) Size() (w, h int) { return a.g.W, a.g.H }

// At returns the acre at (x, y).
func (a Area) At(x, y int) Acre { return Acre(a.g.At(x, y)) }

// Count returns how many acres hold v.
func (a Area) Count(v Acre) int { return a.g.Count(uint8(v)) }

// Summary is the resource value: wooded acres times lumberyards.
func (a Area) Summary() int64 {
	return int64(a.Count(Trees)) * int64(a.Count(Lumberyard))
}

// Signature digests the raw grid.
func (a Area) Signature() core.Signature { return a.g.Signature() }

// Anchor is always 0: the grid boundary fixes every position.
func (a Area) Anchor() int64 { return 0 }

// Translate returns the area unchanged. Positions are fixed by the boundary.
func (a Area) Translate(d int64) (Area, error) { return a, nil }

// TranslationInvariant reports false.
func (a Area) TranslationInvariant() bool { return false }

func (a Area) String() string { return a.g.Render(glyphs) }

// Advance computes the area one minute later.
func Advance(a Area) Area {
	return Area{g: a.g.Next(next)}
}

func next(v uint8, n core.Tally) uint8 {
	trees, yards := n[Trees], n[Lumberyard]
	switch Acre(v) {
	case Ground:
		if trees >= 3 {
			return uint8(Trees)
		}
	case Trees:
		if yards >= 3 {
			return uint8(Lumberyard)
		}
	case Lumberyard:
		if yards < 1 || trees < 1 {
			return uint8(Ground)
		}
	}
	return v
}
