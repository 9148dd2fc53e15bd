// Package marble plays the elves' marble game. Every 23rd marble scores
// instead of being placed; everything else is placed between the marbles
// one and two positions clockwise of the current marble.
package marble

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"cycle-ca/internal/core"
)

// ErrMalformed is returned for input that cannot be parsed.
var ErrMalformed = errors.New("marble: malformed input")

const scoring = 23

// ringChunk caps the initial ring allocation; larger games grow it.
const ringChunk = 1 << 16

// Game describes one round.
type Game struct {
	Players    int
	LastMarble int
}

// Parse reads "N players; last marble is worth M points".
func Parse(text string) (Game, error) {
	var g Game
	_, err := fmt.Sscanf(strings.TrimSpace(text), "%d players; last marble is worth %d points", &g.Players, &g.LastMarble)
	if err != nil {
		return Game{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return g, g.Validate()
}

// Validate rejects games without players or with a last marble outside
// [0, math.MaxInt).
func (g Game) Validate() error {
	if g.Players < 1 || g.LastMarble < 0 || g.LastMarble == math.MaxInt {
		return fmt.Errorf("%w: %d players, last marble %d", ErrMalformed, g.Players, g.LastMarble)
	}
	return nil
}

// HighScore plays the game to the last marble and returns the winning score.
func (g Game) HighScore() int64 {
	scores := make([]int64, g.Players)
	ring := NewRing(min(g.LastMarble, ringChunk) + 1)
	ring.PushBack(0)

	player := 0
	for m := 1; m <= g.LastMarble; m++ {
		if m%scoring == 0 {
			ring.Rotate(-7)
			scores[player] += int64(m) + int64(ring.PopBack())
			ring.Rotate(1)
		} else {
			ring.Rotate(1)
			ring.PushBack(m)
		}
		player = (player + 1) % g.Players
	}

	var best int64
	for _, s := range scores {
		best = max(best, s)
	}
	return best
}

type runner struct {
	game Game
}

func (r runner) Name() string { return "marble" }

// Run plays the configured game to its last marble. The game has no cycle
// to detect and no step count, so target is ignored; the "last" config key
// sets the last marble instead.
func (r runner) Run(_ int64, opts core.Options) (core.Report, error) {
	g := r.game
	if opts.Logger != nil {
		opts.Logger.Debug("playing", "players", g.Players, "marbles", humanize.Comma(int64(g.LastMarble)))
	}
	return core.Report{
		Name:      "marble",
		Target:    int64(g.LastMarble),
		Summary:   g.HighScore(),
		Simulated: int64(g.LastMarble),
	}, nil
}

func init() {
	core.Register("marble", func(input string, cfg map[string]string) (core.Runner, error) {
		g := Game{Players: 9, LastMarble: 25}
		if strings.TrimSpace(input) != "" {
			parsed, err := Parse(input)
			if err != nil {
				return nil, err
			}
			g = parsed
		}
		if v, ok := cfg["players"]; ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%w: players %q", ErrMalformed, v)
			}
			g.Players = n
		}
		if v, ok := cfg["last"]; ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%w: last %q", ErrMalformed, v)
			}
			g.LastMarble = n
		}
		if err := g.Validate(); err != nil {
			return nil, err
		}
		return runner{game: g}, nil
	})
	core.Describe("marble",
		core.Parameter{Key: "players", Type: core.ParamTypeInt, Default: "9", Description: "number of players"},
		core.Parameter{Key: "last", Type: core.ParamTypeInt, Default: "25", Description: "value of the last marble"},
	)
}
