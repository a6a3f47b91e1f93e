// SPDX-License-Identifier: MIT

// Package sim drives the heat kernels over many time steps.
//
// A Config (defaults, ini file or JSON overrides) selects the grid size, ε,
// the stepping method and the initial impulse. Runner.Run advances the field
// and hands periodic Frames to a FrameSink; Compare runs every method from the
// same start and reports how far each drifts from the reference.
//
// Unlike the library packages, sim logs through logrus.
package sim
