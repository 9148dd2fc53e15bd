package lumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cycle-ca/internal/cycle"
)

func example(t *testing.T) Area {
	t.Helper()
	a, err := Parse(Example)
	require.NoError(t, err)
	return a
}

func TestExampleAfterOneMinute(t *testing.T) {
	want := `.......##.
......|###
.|..|...#.
..|#||...#
..##||.|#|
...#||||..
||...|||..
|||||.||.|
||||||||||
....||..|.
`
	assert.Equal(t, want, Advance(example(t)).String())
}

func TestExampleResourceValueAfterTenMinutes(t *testing.T) {
	res, err := cycle.Simulate(example(t), Advance, 10)
	require.NoError(t, err)
	assert.Equal(t, 37, res.State.Count(Trees))
	assert.Equal(t, 31, res.State.Count(Lumberyard))
	assert.Equal(t, int64(1147), res.Summary)

	projected, err := cycle.Project(example(t), Advance, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1147), projected.Summary)
}

func TestExampleDiesOut(t *testing.T) {
	res, err := cycle.Project(example(t), Advance, 1_000_000_000)
	require.NoError(t, err)
	require.NotNil(t, res.Cycle)
	assert.Equal(t, cycle.Record{Offset: 18, Period: 1}, *res.Cycle)
	assert.Zero(t, res.Summary)
	assert.Equal(t, int64(19), res.Simulated)
}

func TestProjectionMatchesSimulationOnGeneratedAreas(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		c := DefaultConfig()
		c.Width, c.Height, c.Seed = 24, 24, seed
		a := Generate(c)

		for _, n := range []int64{0, 1, 10, 123, 480, 777} {
			naive, err := cycle.Simulate(a, Advance, n)
			require.NoError(t, err)
			res, err := cycle.Project(a, Advance, n)
			require.NoError(t, err)
			assert.Equalf(t, naive.Summary, res.Summary, "seed %d target %d", seed, n)
			assert.Equalf(t, naive.State.Signature(), res.State.Signature(), "seed %d target %d", seed, n)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	c := DefaultConfig()
	c.Width, c.Height = 16, 12

	first := Generate(c)
	second := Generate(c)
	assert.Equal(t, first.String(), second.String())
	w, h := first.Size()
	assert.Equal(t, 16, w)
	assert.Equal(t, 12, h)

	c.Seed++
	assert.NotEqual(t, first.Signature(), Generate(c).Signature())
}

func TestBoundaryCellsHaveFewerNeighbours(t *testing.T) {
	// Three trees around the corner: the corner ground becomes trees only
	// because all three of its neighbours are wooded.
	a, err := Parse(".|\n||\n")
	require.NoError(t, err)
	assert.Equal(t, Trees, Advance(a).At(0, 0))

	b, err := Parse("..\n||\n")
	require.NoError(t, err)
	assert.Equal(t, Ground, Advance(b).At(0, 0))
}

func TestLumberyardRules(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Acre
	}{
		{"yard kept by tree and yard", "#|\n#.\n", Lumberyard},
		{"yard without trees clears", "##\n..\n", Ground},
		{"yard without yards clears", "#|\n..\n", Ground},
		{"trees become yard", "|#\n##\n", Lumberyard},
		{"trees stay with two yards", "|#\n#.\n", Trees},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Advance(a).At(0, 0))
		})
	}
}

func TestParseRejectsUnknownGlyph(t *testing.T) {
	_, err := Parse("..x\n...\n")
	assert.Error(t, err)
	_, err = Parse("...\n..\n")
	assert.Error(t, err)
}
