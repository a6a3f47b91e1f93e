// Package heatlab is a small numerical playground for 2-D heat diffusion on
// a square plate, solved with an explicit finite-difference scheme.
//
// 🚀 What is heatlab?
//
//	A pure-Go toolkit that puts the same update u ← u + ε·Δu behind several
//	interchangeable kernels and wraps them in a runnable simulation:
//		• Operators: dense and CSR N²×N² discrete Laplacians
//		• Steppers: matrix form (dense, sparse) and 5-point stencil form
//		• Parallel kernels: row bands over errgroup workers
//		• Simulation: impulse setup, frame sinks, ini configuration
//		• Live view: websocket frame streaming and a cobra CLI
//
// ✨ Why heatlab?
//
//   - Every kernel is checked against the dense oracle in tests
//   - Deterministic results: parallel paths are bitwise equal to serial ones
//   - Sentinel errors with errors.Is across every package
//
// Packages:
//
//	matrix/       Dense and CSR storage, COO assembly, MatVec, AllClose
//	grid/         N×N scalar fields, flatten/reshape, padding, lattice neighbours
//	heat/         Laplacian builders, matrix and stencil steppers, Method selection
//	sim/          simulation runner, ini config, method comparison
//	server/       websocket hub streaming frames to a browser
//	cmd/heatsim/  command-line entry point (run, serve, compare)
//
// Quick ASCII example (N=3, ε=0.1, unit impulse in the centre, one step):
//
//	0 0 0        0   0.1 0
//	0 1 0   ──►  0.1 0.6 0.1
//	0 0 0        0   0.1 0
//
//	go get github.com/katalvlaran/heatlab/heat
package heatlab
