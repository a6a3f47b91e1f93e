// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatlab/heat"
	"github.com/katalvlaran/heatlab/sim"
)

func newRunCmd(root *rootOptions, logger *log.Logger) *cobra.Command {
	var (
		n, iterations, frameEvery, workers int
		eps                                float64
		method                             string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Diffuse a unit impulse and print frame summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("n") {
				cfg.N = n
				cfg.Impulse.Row, cfg.Impulse.Col = sim.Centered, sim.Centered
			}
			if flags.Changed("eps") {
				cfg.Epsilon = eps
			}
			if flags.Changed("iterations") {
				cfg.Iterations = iterations
			}
			if flags.Changed("frame-every") {
				cfg.FrameEvery = frameEvery
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("method") {
				if cfg.Method, err = heat.ParseMethod(method); err != nil {
					return err
				}
			}

			runner, err := sim.NewRunner(cfg, logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			res, err := runner.Run(cmd.Context(), func(f sim.Frame) error {
				_, werr := fmt.Fprintf(out, "step=%d total=%.6f peak=%.6f regions=%d\n",
					f.Step, f.Total, f.Peak, f.Regions)
				return werr
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "done: %d steps in %s\n", res.Steps, res.Elapsed)
			return err
		},
	}
	d := sim.DefaultConfig()
	cmd.Flags().IntVar(&n, "n", d.N, "grid side length")
	cmd.Flags().Float64Var(&eps, "eps", d.Epsilon, "combined coefficient alpha*dt/dx^2")
	cmd.Flags().IntVar(&iterations, "iterations", d.Iterations, "number of time steps")
	cmd.Flags().IntVar(&frameEvery, "frame-every", d.FrameEvery, "emit a frame every k steps (0: first and last only)")
	cmd.Flags().IntVar(&workers, "workers", d.Workers, "goroutines for parallel kernels (0: GOMAXPROCS)")
	cmd.Flags().StringVar(&method, "method", d.Method.String(), "dense, sparse, stencil or parallel")

	return cmd
}
