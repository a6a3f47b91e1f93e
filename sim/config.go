// SPDX-License-Identifier: MIT

package sim

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/ini.v1"

	"github.com/katalvlaran/heatlab/heat"
)

// Defaults reproduce the reference run: a unit impulse in the middle of a
// 101×101 plate, ε=0.2, 2700 steps, a frame every 300 steps.
const (
	DefaultN          = 101
	DefaultEpsilon    = 0.2
	DefaultIterations = 2700
	DefaultFrameEvery = 300
	DefaultMethod     = heat.MethodSparse
	DefaultAmplitude  = 1.0

	// Centered as an impulse row or column means N/2.
	Centered = -1

	// MaxN bounds the grid side for every method (about 4M cells; the CSR
	// operator then holds some 21M entries).
	MaxN = 2048
)

// ini section names.
const (
	sectionSimulation = "simulation"
	sectionImpulse    = "impulse"
)

// ErrInvalidConfig is returned by Validate (wrapped with the offending field).
var ErrInvalidConfig = errors.New("sim: invalid configuration")

// ImpulseConfig places the initial heat source.
type ImpulseConfig struct {
	Row       int     `json:"row"`
	Col       int     `json:"col"`
	Amplitude float64 `json:"amplitude"`
}

// Config describes one simulation run.
type Config struct {
	N          int           `json:"n"`
	Epsilon    float64       `json:"epsilon"`
	Iterations int           `json:"iterations"`
	FrameEvery int           `json:"frame_every"` // 0: first and last frame only
	Method     heat.Method   `json:"method"`
	Workers    int           `json:"workers"` // 0: GOMAXPROCS
	Impulse    ImpulseConfig `json:"impulse"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		N:          DefaultN,
		Epsilon:    DefaultEpsilon,
		Iterations: DefaultIterations,
		FrameEvery: DefaultFrameEvery,
		Method:     DefaultMethod,
		Impulse:    ImpulseConfig{Row: Centered, Col: Centered, Amplitude: DefaultAmplitude},
	}
}

// LoadConfig reads an ini file with [simulation] and [impulse] sections.
// Missing keys fall back to DefaultConfig; the result is validated.
//
//	[simulation]
//	N          = 101
//	Epsilon    = 0.2
//	Iterations = 2700
//	FrameEvery = 300
//	Method     = sparse
//	Workers    = 0
//
//	[impulse]
//	Row       = -1
//	Col       = -1
//	Amplitude = 1
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("sim: load %s: %w", path, err)
	}
	d := DefaultConfig()
	s := file.Section(sectionSimulation)
	method, err := heat.ParseMethod(s.Key("Method").MustString(d.Method.String()))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	imp := file.Section(sectionImpulse)
	cfg := Config{
		N:          s.Key("N").MustInt(d.N),
		Epsilon:    s.Key("Epsilon").MustFloat64(d.Epsilon),
		Iterations: s.Key("Iterations").MustInt(d.Iterations),
		FrameEvery: s.Key("FrameEvery").MustInt(d.FrameEvery),
		Method:     method,
		Workers:    s.Key("Workers").MustInt(d.Workers),
		Impulse: ImpulseConfig{
			Row:       imp.Key("Row").MustInt(d.Impulse.Row),
			Col:       imp.Key("Col").MustInt(d.Impulse.Col),
			Amplitude: imp.Key("Amplitude").MustFloat64(d.Impulse.Amplitude),
		},
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ImpulseCell resolves Centered coordinates against N.
func (c Config) ImpulseCell() (row, col int) {
	row, col = c.Impulse.Row, c.Impulse.Col
	if row == Centered {
		row = c.N / 2
	}
	if col == Centered {
		col = c.N / 2
	}

	return row, col
}

// Validate checks every field; the first violation is returned wrapped
// around ErrInvalidConfig. N is capped at MaxN, and MethodDense only runs
// while N² ≤ heat.DefaultDenseLimit. A non-finite ε is rejected here even though the
// kernels themselves would accept it.
func (c Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	switch {
	case c.N <= 0:
		return bad("n=%d must be > 0", c.N)
	case c.N > MaxN:
		return bad("n=%d exceeds %d", c.N, MaxN)
	case c.Method == heat.MethodDense && c.N*c.N > heat.DefaultDenseLimit:
		return bad("method dense needs n*n <= %d, got n=%d", heat.DefaultDenseLimit, c.N)
	case math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0):
		return bad("epsilon=%v must be finite", c.Epsilon)
	case c.Iterations < 0:
		return bad("iterations=%d must be >= 0", c.Iterations)
	case c.FrameEvery < 0:
		return bad("frame_every=%d must be >= 0", c.FrameEvery)
	case c.Workers < 0:
		return bad("workers=%d must be >= 0", c.Workers)
	}
	if _, err := c.Method.MarshalText(); err != nil {
		return bad("method %v", c.Method)
	}
	if r, col := c.ImpulseCell(); r < 0 || r >= c.N || col < 0 || col >= c.N {
		return bad("impulse (%d,%d) outside %dx%d grid", r, col, c.N, c.N)
	}

	return nil
}
