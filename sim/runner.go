// SPDX-License-Identifier: MIT

package sim

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/heatlab/grid"
	"github.com/katalvlaran/heatlab/heat"
)

// regionTol is the magnitude above which a cell counts as heated in Frame.Regions.
const regionTol = 1e-12

// Frame is a snapshot handed to a FrameSink. Grid is never modified after
// the frame is emitted, so sinks may keep it.
type Frame struct {
	Step    int           `json:"step"`
	Grid    *grid.Grid    `json:"-"`
	Total   float64       `json:"total"`   // sum over all cells
	Peak    float64       `json:"peak"`    // largest cell value
	Regions int           `json:"regions"` // connected heated regions
	Elapsed time.Duration `json:"elapsed"`
}

// FrameSink receives frames in step order. A non-nil error stops the run.
type FrameSink func(Frame) error

// Result summarizes a finished (or interrupted) run.
type Result struct {
	Steps   int
	Frames  int
	Final   *grid.Grid
	Total   float64
	Peak    float64
	Elapsed time.Duration
}

// Impulse returns an n×n zero grid with amp at (row, col).
func Impulse(n, row, col int, amp float64) (*grid.Grid, error) {
	g, err := grid.New(n)
	if err != nil {
		return nil, fmt.Errorf("sim: impulse: %w", err)
	}
	if err = g.Set(row, col, amp); err != nil {
		return nil, fmt.Errorf("sim: impulse: %w", err)
	}

	return g, nil
}

// Runner advances one configured simulation.
type Runner struct {
	cfg     Config
	log     *log.Logger
	stepper heat.Stepper
}

// NewRunner validates cfg and builds its stepper once. A nil logger means
// the logrus standard logger.
func NewRunner(cfg Config, logger *log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	stepper, err := heat.NewStepper(cfg.Method, cfg.N, heat.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	return &Runner{cfg: cfg, log: logger, stepper: stepper}, nil
}

// Config returns the validated configuration.
func (r *Runner) Config() Config { return r.cfg }

// Run steps the impulse Iterations times. Frames go to sink (may be nil) at
// step 0, every FrameEvery steps and at the last step. The context is
// checked before every step; on cancellation Run returns the partial result
// with ctx.Err() wrapped.
func (r *Runner) Run(ctx context.Context, sink FrameSink) (Result, error) {
	row, col := r.cfg.ImpulseCell()
	u, err := Impulse(r.cfg.N, row, col, r.cfg.Impulse.Amplitude)
	if err != nil {
		return Result{}, err
	}
	entry := r.log.WithFields(log.Fields{
		"n":          r.cfg.N,
		"epsilon":    r.cfg.Epsilon,
		"iterations": r.cfg.Iterations,
		"method":     r.cfg.Method.String(),
	})
	entry.Info("simulation started")

	start := time.Now()
	res := Result{Final: u}
	emit := func(step int) error {
		f := Frame{
			Step:    step,
			Grid:    u,
			Total:   u.Sum(),
			Peak:    u.Max(),
			Regions: len(u.Regions(regionTol)),
			Elapsed: time.Since(start),
		}
		res.Frames++
		entry.WithFields(log.Fields{
			"step":  f.Step,
			"total": f.Total,
			"peak":  f.Peak,
		}).Debug("frame")
		if sink == nil {
			return nil
		}
		return sink(f)
	}
	finish := func() Result {
		res.Final = u
		res.Total = u.Sum()
		res.Peak = u.Max()
		res.Elapsed = time.Since(start)
		return res
	}

	if err = emit(0); err != nil {
		return finish(), fmt.Errorf("sim: sink at step 0: %w", err)
	}
	for step := 1; step <= r.cfg.Iterations; step++ {
		if err = ctx.Err(); err != nil {
			entry.WithField("step", res.Steps).Warn("simulation cancelled")
			return finish(), fmt.Errorf("sim: cancelled at step %d: %w", res.Steps, err)
		}
		if u, err = r.stepper.Step(u, r.cfg.Epsilon); err != nil {
			return finish(), fmt.Errorf("sim: step %d: %w", step, err)
		}
		res.Steps = step
		if step == r.cfg.Iterations || (r.cfg.FrameEvery > 0 && step%r.cfg.FrameEvery == 0) {
			if err = emit(step); err != nil {
				return finish(), fmt.Errorf("sim: sink at step %d: %w", step, err)
			}
		}
	}

	out := finish()
	entry.WithFields(log.Fields{
		"frames":  out.Frames,
		"total":   out.Total,
		"peak":    out.Peak,
		"elapsed": out.Elapsed.String(),
	}).Info("simulation finished")

	return out, nil
}
