package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndRender(t *testing.T) {
	g, err := ParseByteGrid("ab.\r\nb.a\n\n", ".ab")
	require.NoError(t, err)
	assert.Equal(t, 3, g.W)
	assert.Equal(t, 2, g.H)
	assert.Equal(t, uint8(1), g.At(0, 0))
	assert.Equal(t, uint8(2), g.At(0, 1))
	assert.Equal(t, "ab.\nb.a\n", g.Render(".ab"))
	assert.Equal(t, 2, g.Count(1))
}

func TestParseErrors(t *testing.T) {
	_, err := ParseByteGrid("", ".#")
	assert.True(t, errors.Is(err, ErrMalformedGrid))
	_, err = ParseByteGrid("..\n...\n", ".#")
	assert.True(t, errors.Is(err, ErrMalformedGrid))
	_, err = ParseByteGrid(".x\n", ".#")
	assert.True(t, errors.Is(err, ErrMalformedGrid))
}

func TestMooreHasNoWraparound(t *testing.T) {
	g := NewByteGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}

	assert.Equal(t, 3, g.Moore(0, 0)[1], "corner")
	assert.Equal(t, 5, g.Moore(1, 0)[1], "edge")
	assert.Equal(t, 8, g.Moore(1, 1)[1], "centre")
	assert.Equal(t, 3, g.Moore(2, 2)[1], "opposite corner")
}

func TestNextLeavesReceiverUntouched(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Set(0, 0, 1)

	next := g.Next(func(v uint8, n Tally) uint8 { return uint8(n[1]) })
	assert.Equal(t, []uint8{0, 1, 1, 1}, next.Cells())
	assert.Equal(t, []uint8{1, 0, 0, 0}, g.Cells())
}

func TestSignatureCoversDimensions(t *testing.T) {
	a := NewByteGrid(4, 2)
	b := NewByteGrid(2, 4)
	assert.NotEqual(t, a.Signature(), b.Signature())

	c := a.Clone()
	assert.Equal(t, a.Signature(), c.Signature())
	c.Set(3, 1, 2)
	assert.NotEqual(t, a.Signature(), c.Signature())
	assert.Equal(t, uint8(0), a.At(3, 1))
}

func TestCheckedArithmetic(t *testing.T) {
	v, err := AddInt64(math.MaxInt64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v)

	_, err = AddInt64(math.MaxInt64, 1)
	assert.True(t, errors.Is(err, ErrOverflow))
	_, err = AddInt64(math.MinInt64, -1)
	assert.True(t, errors.Is(err, ErrOverflow))

	v, err = MulInt64(-3, 1<<40)
	require.NoError(t, err)
	assert.Equal(t, int64(-3<<40), v)

	_, err = MulInt64(1<<32, 1<<31)
	assert.True(t, errors.Is(err, ErrOverflow))
	_, err = MulInt64(math.MinInt64, -1)
	assert.True(t, errors.Is(err, ErrOverflow))
	_, err = MulInt64(-1, math.MinInt64)
	assert.True(t, errors.Is(err, ErrOverflow))
}

func TestRegistry(t *testing.T) {
	Register("", nil)
	Register("test-only", func(string, map[string]string) (Runner, error) { return nil, nil })
	t.Cleanup(func() { delete(sims, "test-only") })

	assert.Contains(t, Names(), "test-only")
	assert.NotContains(t, Names(), "")

	Describe("test-only", Parameter{Key: "w", Type: ParamTypeInt, Default: "3"})
	t.Cleanup(func() { delete(params, "test-only") })
	assert.Equal(t, "3", Parameters("test-only")[0].Default)
}
