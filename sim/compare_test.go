// SPDX-License-Identifier: MIT
package sim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatlab/heat"
	"github.com/katalvlaran/heatlab/sim"
)

func TestCompareSmall(t *testing.T) {
	out, err := sim.Compare(9, 0.2, 20)
	require.NoError(t, err)
	require.Len(t, out, len(heat.Methods))
	for i, c := range out {
		require.Equal(t, heat.Methods[i], c.Method)
		require.False(t, c.Skipped)
		require.Less(t, c.MaxAbsDiff, 1e-10, "method %v", c.Method)
		require.Positive(t, c.Total)
	}
	require.Zero(t, out[0].MaxAbsDiff, "dense is its own reference")

	// 5 entries per row minus one per missing neighbour: 5·81 − 4·9.
	require.Equal(t, 369, out[0].NNZ)
	require.Equal(t, 369, out[1].NNZ)
	require.Zero(t, out[2].NNZ)
	require.Zero(t, out[3].NNZ)
}

func TestCompareSkipsDenseForLargeGrids(t *testing.T) {
	out, err := sim.Compare(65, 0.2, 2)
	require.NoError(t, err)
	require.True(t, out[0].Skipped)
	require.Zero(t, out[1].MaxAbsDiff, "sparse is the reference")
	require.Less(t, out[2].MaxAbsDiff, 1e-12)
}

func TestCompareErrors(t *testing.T) {
	_, err := sim.Compare(0, 0.2, 1)
	require.ErrorIs(t, err, sim.ErrInvalidConfig)
	_, err = sim.Compare(3, 0.2, -1)
	require.ErrorIs(t, err, sim.ErrInvalidConfig)
	_, err = sim.Compare(sim.MaxN+1, 0.2, 1)
	require.ErrorIs(t, err, sim.ErrInvalidConfig)
}
