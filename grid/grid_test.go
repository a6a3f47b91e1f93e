// SPDX-License-Identifier: MIT
package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/heatlab/grid"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidSize ensures non-positive sizes are rejected.
func TestNewInvalidSize(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := grid.New(n)
		require.ErrorIs(t, err, grid.ErrInvalidSize)
	}
}

// TestFromRows covers deep copy and every rejection branch.
func TestFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	g, err := grid.FromRows(src)
	require.NoError(t, err)
	src[0][0] = 99
	v, _ := g.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, g.Rows())

	for name, rows := range map[string][][]float64{
		"empty":  nil,
		"ragged": {{1, 2}, {3}},
		"wide":   {{1, 2, 3}, {4, 5, 6}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := grid.FromRows(rows)
			require.ErrorIs(t, err, grid.ErrNonSquare)
		})
	}
}

// TestFromFlatAndAdopt checks the copy/ownership split and length checks.
func TestFromFlatAndAdopt(t *testing.T) {
	flat := []float64{1, 2, 3, 4}
	copied, err := grid.FromFlat(2, flat)
	require.NoError(t, err)
	owned, err := grid.Adopt(2, flat)
	require.NoError(t, err)

	flat[3] = -1
	v, _ := copied.At(1, 1)
	require.Equal(t, 4.0, v)
	v, _ = owned.At(1, 1)
	require.Equal(t, -1.0, v)

	_, err = grid.FromFlat(2, []float64{1, 2, 3})
	require.ErrorIs(t, err, grid.ErrLength)
	_, err = grid.Adopt(0, nil)
	require.ErrorIs(t, err, grid.ErrInvalidSize)
}

// TestAtSetBounds ensures accessors return errors instead of panicking.
func TestAtSetBounds(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, 9, g.Len())

	_, err = g.At(3, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	require.ErrorIs(t, g.Set(0, -1, 1), grid.ErrOutOfRange)

	require.NoError(t, g.Set(1, 2, math.NaN()))
	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// TestFlattenIsRowMajorCopy pins the flatten layout.
func TestFlattenIsRowMajorCopy(t *testing.T) {
	g, err := grid.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	flat := g.Flatten()
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, flat)
	flat[0] = 0
	v, _ := g.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, 45.0, g.Sum())
	require.Equal(t, 9.0, g.Max())
}

// TestPadded checks the zero border and interior placement.
func TestPadded(t *testing.T) {
	g, err := grid.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	p := g.Padded()
	require.Equal(t, 4, p.N())
	require.Equal(t, [][]float64{
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 3, 4, 0},
		{0, 0, 0, 0},
	}, p.Rows())
}

// TestCloneEqual ensures Clone is deep and Equal is exact.
func TestCloneEqual(t *testing.T) {
	g, err := grid.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	c := g.Clone()
	require.True(t, g.Equal(c))
	require.NoError(t, c.Set(0, 0, 5))
	require.False(t, g.Equal(c))
	require.False(t, g.Equal(nil))
	require.Equal(t, "[1, 2]\n[3, 4]\n", g.String())
}

// TestZeroValueReductions ensures reductions on an empty Grid return zero
// instead of panicking.
func TestZeroValueReductions(t *testing.T) {
	var g grid.Grid
	require.NotPanics(t, func() {
		require.Zero(t, g.Max())
		require.Zero(t, g.Sum())
		require.Zero(t, g.Len())
	})
}
