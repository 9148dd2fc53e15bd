// Package plants implements a one-dimensional, translation-invariant
// automaton over an unbounded row of pots. Each pot's next state depends on
// the five pots centred on it.
package plants

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
	"strings"

	"cycle-ca/internal/core"
)

var (
	// ErrInfiniteGrowth rejects rule tables that grow plants in empty space.
	ErrInfiniteGrowth = errors.New("plants: empty neighbourhood must produce an empty pot")
	// ErrMalformed is returned for input that cannot be parsed.
	ErrMalformed = errors.New("plants: malformed input")
)

// Rules maps a packed five-pot window to the centre pot's next state. The
// leftmost pot is bit 4 and the rightmost bit 0.
type Rules [32]bool

// Validate reports whether the table keeps empty space empty.
func (r Rules) Validate() error {
	if r[0] {
		return ErrInfiniteGrowth
	}
	return nil
}

// Pack converts a five-character '#'/'.' window into a table index.
func Pack(window string) (int, error) {
	if len(window) != 5 {
		return 0, fmt.Errorf("%w: window %q must have five pots", ErrMalformed, window)
	}
	idx := 0
	for i := 0; i < 5; i++ {
		idx <<= 1
		switch window[i] {
		case '#':
			idx |= 1
		case '.':
		default:
			return 0, fmt.Errorf("%w: window %q", ErrMalformed, window)
		}
	}
	return idx, nil
}

// ParseRules reads lines of the form "..#.# => #". Windows that are not
// listed produce an empty pot.
func ParseRules(lines []string) (Rules, error) {
	var r Rules
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		window, result, ok := strings.Cut(line, " => ")
		if !ok || (result != "#" && result != ".") {
			return Rules{}, fmt.Errorf("%w: rule %q", ErrMalformed, line)
		}
		idx, err := Pack(window)
		if err != nil {
			return Rules{}, err
		}
		r[idx] = result == "#"
	}
	return r, r.Validate()
}

// State is the sorted set of positions holding a plant.
type State struct {
	alive []int64
}

// New returns a state with plants at the given positions.
func New(positions ...int64) State {
	alive := slices.Clone(positions)
	slices.Sort(alive)
	return State{alive: slices.Compact(alive)}
}

// FromRow reads a '#'/'.' row whose first character sits at origin.
func FromRow(row string, origin int64) (State, error) {
	var alive []int64
	for i, c := range row {
		switch c {
		case '#':
			alive = append(alive, origin+int64(i))
		case '.':
		default:
			return State{}, fmt.Errorf("%w: unexpected %q in row", ErrMalformed, c)
		}
	}
	return State{alive: alive}, nil
}

// Positions returns a copy of the occupied positions in ascending order.
func (s State) Positions() []int64 { return slices.Clone(s.alive) }

// Len returns the number of plants.
func (s State) Len() int { return len(s.alive) }

// Anchor is the leftmost plant, or 0 for an empty row.
func (s State) Anchor() int64 {
	if len(s.alive) == 0 {
		return 0
	}
	return s.alive[0]
}

// Summary is the sum of all plant positions. It wraps for rows whose sum
// leaves int64; CheckedSummary reports that case.
func (s State) Summary() int64 {
	var sum int64
	for _, p := range s.alive {
		sum += p
	}
	return sum
}

// CheckedSummary is Summary with overflow detection.
func (s State) CheckedSummary() (int64, error) {
	var sum int64
	for _, p := range s.alive {
		var err error
		if sum, err = core.AddInt64(sum, p); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// Signature digests the occupancy pattern relative to the leftmost plant,
// so rows that differ only by a shift share a signature.
func (s State) Signature() core.Signature {
	if len(s.alive) == 0 {
		return core.Sign(nil)
	}
	first := s.alive[0]
	width := s.alive[len(s.alive)-1] - first + 1
	buf := make([]byte, 8+(width+7)/8)
	binary.LittleEndian.PutUint64(buf, uint64(width))
	for _, p := range s.alive {
		off := p - first
		buf[8+off/8] |= 1 << (off % 8)
	}
	return core.Sign(buf)
}

// Translate shifts every plant by d.
func (s State) Translate(d int64) (State, error) {
	if d == 0 || len(s.alive) == 0 {
		return s, nil
	}
	if _, err := core.AddInt64(s.alive[0], d); err != nil {
		return State{}, err
	}
	if _, err := core.AddInt64(s.alive[len(s.alive)-1], d); err != nil {
		return State{}, err
	}
	delta, err := core.MulInt64(d, int64(len(s.alive)))
	if err != nil {
		return State{}, err
	}
	sum, err := s.CheckedSummary()
	if err != nil {
		return State{}, err
	}
	if _, err := core.AddInt64(sum, delta); err != nil {
		return State{}, err
	}
	out := make([]int64, len(s.alive))
	for i, p := range s.alive {
		out[i] = p + d
	}
	return State{alive: out}, nil
}

// String renders the row from the leftmost to the rightmost plant.
func (s State) String() string {
	if len(s.alive) == 0 {
		return ""
	}
	first := s.alive[0]
	row := []byte(strings.Repeat(".", int(s.alive[len(s.alive)-1]-first+1)))
	for _, p := range s.alive {
		row[p-first] = '#'
	}
	return string(row)
}

// Advance computes the next generation. Only pots within two of an existing
// plant can change; everything further out stays empty because Validate
// forbids growth from an empty window.
func (r Rules) Advance(s State) State {
	if len(s.alive) == 0 {
		return s
	}
	lo := s.alive[0] - 2
	hi := s.alive[len(s.alive)-1] + 2
	next := make([]int64, 0, len(s.alive)+4)

	// The window for lo covers lo-2..lo+2; everything left of lo+2 is empty.
	window, j := 0, 0
	for p := lo; p <= hi; p++ {
		bit := 0
		if j < len(s.alive) && s.alive[j] == p+2 {
			bit = 1
			j++
		}
		window = (window<<1 | bit) & 31
		if r[window] {
			next = append(next, p)
		}
	}
	return State{alive: next}
}
