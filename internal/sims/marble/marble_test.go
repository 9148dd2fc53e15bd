package marble

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cycle-ca/internal/core"
)

func TestHighScoreExamples(t *testing.T) {
	cases := []struct {
		players, last int
		want          int64
	}{
		{9, 25, 32},
		{10, 1618, 8317},
		{13, 7999, 146373},
		{17, 1104, 2764},
		{21, 6111, 54718},
		{30, 5807, 37305},
	}
	for _, tc := range cases {
		g := Game{Players: tc.players, LastMarble: tc.last}
		assert.Equalf(t, tc.want, g.HighScore(), "%d players, last marble %d", tc.players, tc.last)
	}
}

func TestRingRotation(t *testing.T) {
	r := NewRing(1)
	for v := 0; v < 5; v++ {
		r.PushBack(v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, r.Values())
	assert.Equal(t, 4, r.Back())

	r.Rotate(2)
	assert.Equal(t, []int{2, 3, 4, 0, 1}, r.Values())
	assert.Equal(t, 1, r.Back())

	r.Rotate(-3)
	assert.Equal(t, []int{4, 0, 1, 2, 3}, r.Values())

	assert.Equal(t, 3, r.PopBack())
	assert.Equal(t, 4, r.PopFront())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []int{0, 1, 2}, r.Values())
}

func TestRingWrapsAroundBuffer(t *testing.T) {
	r := NewRing(4)
	r.PushBack(1)
	r.PushBack(2)
	r.PushFront(0)
	r.PushFront(-1)
	r.PushBack(3) // forces growth while head is not at slot 0
	assert.Equal(t, []int{-1, 0, 1, 2, 3}, r.Values())

	r.Rotate(-7)
	assert.Equal(t, []int{2, 3, -1, 0, 1}, r.Values())
}

func TestFirstMovesMatchPuzzle(t *testing.T) {
	// After marble 4 the circle reads 0 4 2 1 3 with 4 current.
	r := NewRing(8)
	r.PushBack(0)
	for m := 1; m <= 4; m++ {
		r.Rotate(1)
		r.PushBack(m)
	}
	assert.Equal(t, 4, r.Back())
	assert.Equal(t, []int{2, 1, 3, 0, 4}, r.Values())
}

func TestParse(t *testing.T) {
	g, err := Parse("10 players; last marble is worth 1618 points\n")
	require.NoError(t, err)
	assert.Equal(t, Game{Players: 10, LastMarble: 1618}, g)

	_, err = Parse("ten players")
	assert.True(t, errors.Is(err, ErrMalformed))

	_, err = Parse("0 players; last marble is worth 5 points")
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestRunnerPlaysConfiguredGame(t *testing.T) {
	factory := core.Sims()["marble"]
	require.NotNil(t, factory)

	r, err := factory("", map[string]string{"players": "10", "last": "1618"})
	require.NoError(t, err)
	rep, err := r.Run(1_000_000_000, core.Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(8317), rep.Summary)
	assert.Equal(t, int64(1618), rep.Target)
	assert.False(t, rep.Cycled)

	r, err = factory("13 players; last marble is worth 7999 points\n", nil)
	require.NoError(t, err)
	rep, err = r.Run(1_000_000_000, core.Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(146373), rep.Summary)
	assert.Equal(t, int64(7999), rep.Target)
}

func TestFactoryRejectsBadOverrides(t *testing.T) {
	factory := core.Sims()["marble"]
	for _, cfg := range []map[string]string{
		{"last": "many"},
		{"last": "-1"},
		{"last": strconv.Itoa(math.MaxInt)},
		{"players": "0"},
	} {
		_, err := factory("", cfg)
		assert.Truef(t, errors.Is(err, ErrMalformed), "config %v", cfg)
	}
}

func TestLargeGameGrowsRing(t *testing.T) {
	g := Game{Players: 10, LastMarble: ringChunk*2 + 5}
	assert.Positive(t, g.HighScore())
}
