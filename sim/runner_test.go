// SPDX-License-Identifier: MIT
package sim_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatlab/heat"
	"github.com/katalvlaran/heatlab/sim"
)

func smallConfig(m heat.Method) sim.Config {
	cfg := sim.DefaultConfig()
	cfg.N = 15
	cfg.Iterations = 12
	cfg.FrameEvery = 5
	cfg.Method = m
	return cfg
}

func TestImpulse(t *testing.T) {
	g, err := sim.Impulse(4, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{6}, g.Support(0))
	require.Equal(t, 3.0, g.Sum())

	_, err = sim.Impulse(4, 4, 0, 1)
	require.Error(t, err)
	_, err = sim.Impulse(0, 0, 0, 1)
	require.Error(t, err)
}

func TestRunnerFrames(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r, err := sim.NewRunner(smallConfig(heat.MethodStencil), logger)
	require.NoError(t, err)

	var steps []int
	res, err := r.Run(context.Background(), func(f sim.Frame) error {
		steps = append(steps, f.Step)
		require.Equal(t, 15, f.Grid.N())
		require.Equal(t, 1, f.Regions)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 5, 10, 12}, steps)
	require.Equal(t, 12, res.Steps)
	require.Equal(t, 4, res.Frames)
	require.InDelta(t, 1.0, res.Total, 1e-2, "only the boundary leaks heat")
	require.Less(t, res.Total, 1.0)
	require.Less(t, res.Peak, 1.0)

	last := hook.LastEntry()
	require.NotNil(t, last)
	require.Equal(t, "simulation finished", last.Message)
	require.Equal(t, logrus.InfoLevel, last.Level)
	require.Equal(t, 4, last.Data["frames"])
}

func TestRunnerFramesAreSnapshots(t *testing.T) {
	r, err := sim.NewRunner(smallConfig(heat.MethodSparse), nil)
	require.NoError(t, err)

	var frames []sim.Frame
	_, err = r.Run(context.Background(), func(f sim.Frame) error {
		frames = append(frames, f)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, frames, 4)
	first := frames[0].Grid
	require.Equal(t, 1.0, first.Max(), "frame 0 must still hold the raw impulse")
	for i := 1; i < len(frames); i++ {
		require.False(t, frames[i].Grid.Equal(frames[i-1].Grid))
	}
}

func TestRunnerMethodsAgree(t *testing.T) {
	var ref []float64
	for _, m := range heat.Methods {
		r, err := sim.NewRunner(smallConfig(m), nil)
		require.NoError(t, err)
		res, err := r.Run(context.Background(), nil)
		require.NoError(t, err)
		if ref == nil {
			ref = res.Final.Flatten()
			continue
		}
		require.InDeltaSlice(t, ref, res.Final.Raw(), 1e-10, "method %v", m)
	}
}

func TestRunnerCancel(t *testing.T) {
	r, err := sim.NewRunner(smallConfig(heat.MethodStencil), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	res, err := r.Run(ctx, func(f sim.Frame) error {
		if f.Step == 5 {
			cancel()
		}
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 5, res.Steps)
	require.NotNil(t, res.Final)
}

func TestRunnerSinkError(t *testing.T) {
	r, err := sim.NewRunner(smallConfig(heat.MethodStencil), nil)
	require.NoError(t, err)

	boom := errors.New("boom")
	res, err := r.Run(context.Background(), func(f sim.Frame) error {
		if f.Step > 0 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 5, res.Steps)
}

func TestNewRunnerRejectsInvalidConfig(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.N = -1
	_, err := sim.NewRunner(cfg, nil)
	require.ErrorIs(t, err, sim.ErrInvalidConfig)
}

func TestRunnerZeroIterations(t *testing.T) {
	cfg := smallConfig(heat.MethodStencil)
	cfg.Iterations = 0
	r, err := sim.NewRunner(cfg, nil)
	require.NoError(t, err)
	res, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, res.Steps)
	require.Equal(t, 1, res.Frames)
	require.Equal(t, 1.0, res.Peak)
}
