// Package residual defines core types, configuration options and
// sentinel errors for the residual minimizer.
//
// The minimizer approximates a target real value L by a·x + b·y, where
// a and b are given positive real coefficients and x, y are chosen as
// non-negative integers minimizing the absolute residual
// |L − (a·x + b·y)|.
//
// Complexity:
//
//	– Time:  O(x_max)   where x_max = ⌊L/a⌋
//	   • The bound itself is computed in O(1) by floor division.
//	   • Each candidate x costs O(1): one division, one rounding, one
//	     residual evaluation.
//	– Space: O(1), or O(x_max) when residual collection is requested.
//
// Options:
//
//	– CollectResiduals: keep every evaluated (x, residual) pair in the
//	  returned Solution, in ascending x order.
//	– Workers:          number of goroutines for the chunked parallel
//	  scan; 1 (default) scans sequentially. Results are identical
//	  either way, including tie-breaks.
//	– ReduceScan:       associate the larger coefficient with x before
//	  scanning, shrinking x_max; the returned pair is swapped back.
//	– Ctx:              context observed during the scan; cancellation
//	  aborts with ctx.Err() and no partial Solution.
//
// Errors (sentinel):
//
//	– ErrInvalidCoefficient if a ≤ 0, b ≤ 0, or either is NaN/±Inf.
//	– ErrNoFeasibleSolution if no non-negative x satisfies a·x ≤ L
//	  (L < 0, or L is NaN/+Inf).
//
// Example usage:
//
//	sol, err := residual.Solve(20.5, 0.80, 1.25)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	x, y := sol.Pair()
//	fmt.Printf("x=%d y=%d residual=%.3f\n", x, y, sol.Residual)
package residual

import (
	"context"
	"errors"
)

// Sentinel errors returned by the residual minimizer.
var (
	// ErrInvalidCoefficient indicates that a coefficient is zero,
	// negative, NaN or infinite. Both a and b are divisors during the
	// scan, so the contract requires finite positive values.
	ErrInvalidCoefficient = errors.New("residual: coefficients must be finite and positive")

	// ErrNoFeasibleSolution indicates that the feasible x range is
	// empty: no non-negative integer x satisfies a·x ≤ L. This happens
	// for L < 0 under the non-negativity constraint, and for NaN/+Inf
	// targets where no finite bound exists.
	ErrNoFeasibleSolution = errors.New("residual: no non-negative integer pair satisfies a*x <= L")
)

// Residual is one evaluated candidate: the scanned x and the signed
// residual L − (a·x + b·y) it produced. A slice of these is populated
// on the Solution only when CollectResiduals is set.
type Residual struct {
	X     int64   // candidate x value
	Value float64 // signed residual at that x
}

// Solution is the outcome of one solve: the candidate pair with the
// globally minimal absolute residual. It is immutable once returned
// and owned by the caller; invocations share no state.
type Solution struct {
	// X and Y are the chosen non-negative integer counts, X paired
	// with coefficient a and Y with coefficient b.
	X, Y int64

	// Residual is the signed leftover L − (a·X + b·Y). Exact ties in
	// |Residual| are broken toward the smaller X.
	Residual float64

	// Evaluated is the number of residuals computed during the scan,
	// x_max+1 for a feasible range [0, x_max].
	Evaluated int64

	// Residuals holds every evaluated (x, residual) pair in ascending
	// x order. Nil unless CollectResiduals was requested.
	Residuals []Residual
}

// Pair returns the solution as an ordered (x, y) pair. This is the one
// programmatic contract external callers depend on beyond rendering.
func (s Solution) Pair() (x, y int64) { return s.X, s.Y }

// Options configures the behavior of the residual scan.
//
// CollectResiduals – keep all evaluated (x, residual) pairs; otherwise
// only the running best candidate is retained (O(1) memory).
// Workers          – goroutine count for the chunked scan; values < 2
// select the sequential scan.
// ReduceScan       – swap (a, b) internally when b > a so the larger
// coefficient bounds x; the returned pair is swapped back. Shrinks the
// scan by a factor of b/a but may select a different, equally minimal
// pair when ties exist, because enumeration order changes.
// Ctx              – context observed during the scan (default
// context.Background()).
type Options struct {
	CollectResiduals bool            // Whether to retain every evaluated residual
	Workers          int             // Parallelism degree for the scan
	ReduceScan       bool            // Whether to scan over the larger coefficient
	Ctx              context.Context // Cancellation context for the scan
}

// Option represents a functional option for configuring a solve.
type Option func(*Options)

// WithCollectResiduals retains every evaluated (x, residual) pair on
// the returned Solution, in ascending x order. Memory cost is
// O(x_max); leave unset for the O(1) scan.
func WithCollectResiduals() Option {
	return func(o *Options) {
		o.CollectResiduals = true
	}
}

// WithWorkers sets the number of goroutines used for the scan. The
// range [0, x_max] is split into contiguous disjoint chunks, each
// producing a local best, merged left-to-right under the same
// smallest-x tie-break — observable results never depend on Workers.
// Values below 2 select the sequential scan.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithReduceScan enumerates over whichever variable carries the larger
// coefficient, shrinking the candidate count by a factor of max(a,b)/
// min(a,b). The returned Solution is always expressed in the caller's
// orientation (X with a, Y with b). When multiple pairs share the
// minimal |residual|, the pair selected may differ from the default
// scan, since the tie-break applies to the swapped enumeration order.
// Collected Residuals are likewise indexed by the scanned variable.
func WithReduceScan() Option {
	return func(o *Options) {
		o.ReduceScan = true
	}
}

// WithContext sets the context observed during the scan. Cancellation
// aborts the scan with ctx.Err(); no partial Solution is returned.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further overrides.
//
// Defaults:
//   - CollectResiduals: false (track only the running best).
//   - Workers:          1 (sequential scan).
//   - ReduceScan:       false (x is always paired with a).
//   - Ctx:              context.Background() (never cancelled).
func DefaultOptions() Options {
	return Options{
		CollectResiduals: false,
		Workers:          1,
		ReduceScan:       false,
		Ctx:              context.Background(),
	}
}

// normalize fills zero-valued fields with their defaults so the scan
// never dereferences a nil context or a nonsensical worker count.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
}
