// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/heatlab/heat"
)

// Comparison is one method's outcome in Compare.
type Comparison struct {
	Method     heat.Method
	Skipped    bool    // dense form not run because N² exceeds heat.DefaultDenseLimit
	MaxAbsDiff float64 // L∞ distance to the reference final field
	Total      float64
	Elapsed    time.Duration
	NNZ        int // stored operator entries (heat.Stats); 0 for stencil methods
}

// Compare steps the same centred unit impulse with every heat.Method and
// measures each final field against the reference: the dense matrix form
// when N² ≤ heat.DefaultDenseLimit, the sparse form otherwise.
func Compare(n int, eps float64, steps int) ([]Comparison, error) {
	if n <= 0 || n > MaxN || steps < 0 {
		return nil, fmt.Errorf("%w: compare n=%d steps=%d", ErrInvalidConfig, n, steps)
	}
	denseOK := n*n <= heat.DefaultDenseLimit
	finals := make(map[heat.Method][]float64, len(heat.Methods))
	out := make([]Comparison, 0, len(heat.Methods))

	for _, m := range heat.Methods {
		c := Comparison{Method: m}
		if m == heat.MethodDense && !denseOK {
			c.Skipped = true
			out = append(out, c)
			continue
		}
		s, err := heat.NewStepper(m, n)
		if err != nil {
			return nil, fmt.Errorf("sim: compare %v: %w", m, err)
		}
		if ms, ok := s.(*heat.MatrixStepper); ok {
			st, err := heat.Stats(ms.Operator())
			if err != nil {
				return nil, fmt.Errorf("sim: compare %v: %w", m, err)
			}
			c.NNZ = st.NNZ
		}
		u, err := Impulse(n, n/2, n/2, DefaultAmplitude)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		for i := 0; i < steps; i++ {
			if u, err = s.Step(u, eps); err != nil {
				return nil, fmt.Errorf("sim: compare %v step %d: %w", m, i+1, err)
			}
		}
		c.Elapsed = time.Since(start)
		c.Total = u.Sum()
		finals[m] = u.Raw()
		out = append(out, c)
	}

	ref := finals[heat.MethodSparse]
	if denseOK {
		ref = finals[heat.MethodDense]
	}
	for i := range out {
		if out[i].Skipped {
			continue
		}
		out[i].MaxAbsDiff = floats.Distance(finals[out[i].Method], ref, math.Inf(1))
	}

	return out, nil
}
