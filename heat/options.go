// SPDX-License-Identifier: MIT

// Package heat: functional options for operator strategy selection and
// worker counts. Setters panic on nonsensical values (programmer error);
// everything else is reported through returned errors.
package heat

// Kind selects the storage behind an Operator.
type Kind int

const (
	// KindAuto picks dense for small grids and sparse otherwise (see WithDenseLimit).
	KindAuto Kind = iota
	// KindDense stores the full N²×N² matrix.
	KindDense
	// KindSparse stores only the five bands in CSR form.
	KindSparse
)

// String returns "auto", "dense" or "sparse".
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return "auto"
	}
}

const (
	// DefaultDenseLimit is the largest operator dimension (N²) KindAuto still
	// builds densely: 64² rows, i.e. grids up to 64×64 (a 128 MiB matrix).
	DefaultDenseLimit = 64 * 64

	// DefaultWorkers is the goroutine budget for parallel kernels;
	// 0 means runtime.GOMAXPROCS(0).
	DefaultWorkers = 0

	// parallelMinDim is the operator dimension below which sparse products
	// stay serial regardless of the worker budget.
	parallelMinDim = 1 << 12
)

const (
	panicKindInvalid       = "heat: WithKind: unknown kind"
	panicDenseLimitInvalid = "heat: WithDenseLimit: limit must be > 0"
	panicWorkersInvalid    = "heat: WithWorkers: workers must be >= 0"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration; fields are unexported.
type Options struct {
	kind       Kind
	denseLimit int
	workers    int
}

// WithKind forces the operator storage. Panics on an unknown Kind.
func WithKind(k Kind) Option {
	if k < KindAuto || k > KindSparse {
		panic(panicKindInvalid)
	}

	return func(o *Options) { o.kind = k }
}

// WithDenseLimit sets the largest dimension KindAuto builds densely.
// Panics when limit ≤ 0.
func WithDenseLimit(limit int) Option {
	if limit <= 0 {
		panic(panicDenseLimitInvalid)
	}

	return func(o *Options) { o.denseLimit = limit }
}

// WithWorkers sets the goroutine budget for the sparse product and the
// banded stencil (0 = GOMAXPROCS, 1 = serial). Panics when workers < 0.
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// Kind returns the requested storage kind.
func (o Options) Kind() Kind { return o.kind }

// DenseLimit returns the KindAuto threshold.
func (o Options) DenseLimit() int { return o.denseLimit }

// Workers returns the goroutine budget.
func (o Options) Workers() int { return o.workers }

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies setters in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		kind:       KindAuto,
		denseLimit: DefaultDenseLimit,
		workers:    DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// resolve turns KindAuto into a concrete kind for dimension dim.
func (o Options) resolve(dim int) Kind {
	if o.kind != KindAuto {
		return o.kind
	}
	if dim <= o.denseLimit {
		return KindDense
	}

	return KindSparse
}
