package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestOpen(t *testing.T) {
	grid, err := builder.Open(2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1, 1}, {1, 1, 1}}, grid)

	_, err = builder.Open(0, 3)
	assert.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.Open(3, -1)
	assert.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestRandom_RequiresRNG(t *testing.T) {
	_, err := builder.Random(4, 4)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Random(20, 30, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Random(20, 30, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must produce the same grid")

	c, err := builder.Random(20, 30, builder.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRandom_DensityExtremes(t *testing.T) {
	none, err := builder.Random(5, 5, builder.WithSeed(1), builder.WithDensity(0))
	require.NoError(t, err)
	all, err := builder.Random(5, 5, builder.WithSeed(1), builder.WithDensity(1))
	require.NoError(t, err)

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			assert.Equal(t, 1, none[r][c])
			assert.Equal(t, 0, all[r][c])
		}
	}
}

func TestRandom_KeepOpen(t *testing.T) {
	grid, err := builder.Random(4, 6,
		builder.WithSeed(3),
		builder.WithDensity(1),
		builder.WithKeepOpen(gridgraph.Pt(0, 0), gridgraph.Pt(5, 3), gridgraph.Pt(9, 9)),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, grid[0][0])
	assert.Equal(t, 1, grid[3][5], "(col,row) = (5,3)")
	assert.Equal(t, 0, grid[1][1])
}

func TestWithDensity_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithDensity(-0.1) })
	assert.Panics(t, func() { builder.WithDensity(1.5) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestWall(t *testing.T) {
	grid, err := builder.Wall(3, 4, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{1, 1, 0, 1},
		{1, 1, 1, 1},
		{1, 1, 0, 1},
	}, grid)

	_, err = builder.Wall(3, 4, 4)
	assert.ErrorIs(t, err, builder.ErrBadWall)
	_, err = builder.Wall(3, 4, 1, 3)
	assert.ErrorIs(t, err, builder.ErrBadWall)
	_, err = builder.Wall(0, 4, 1)
	assert.ErrorIs(t, err, builder.ErrTooSmall)
}
