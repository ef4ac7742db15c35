// Package residual implements the residual minimizer: a single-pass
// deterministic scan over the feasible integer range of x, selecting
// the non-negative integer pair (x, y) whose linear combination
// a·x + b·y lands closest to the target L.
//
// Algorithm Outline:
//  1. Validate coefficients: a and b must be finite and positive
//     (ErrInvalidCoefficient otherwise; both are divisors).
//  2. Validate the target: L must be finite and ≥ 0, else the feasible
//     range is empty (ErrNoFeasibleSolution).
//  3. Compute the inclusive bound x_max = ⌊L/a⌋ by floor division in
//     O(1); never by iterative counting.
//  4. For each x in [0, x_max] ascending:
//     y_raw = (L − a·x) / b
//     y     = round half away from zero (y_raw); skip if y < 0
//     r     = L − (a·x + b·y)
//     Keep the candidate iff |r| is strictly smaller than the best so
//     far — strict comparison is what makes exact ties resolve toward
//     the smaller x.
//  5. Return the best candidate, the count of residuals evaluated and,
//     when requested, every evaluated (x, residual) pair.
//
// Determinism:
//   - No randomness, no map iteration, no time-based decisions.
//   - Residuals are stabilized to 1e-9 absolute precision, so
//     mathematically tied candidates compare equal across platforms
//     and the smallest-x rule decides.
//   - The chunked parallel scan (Options.Workers > 1) partitions
//     [0, x_max] into contiguous disjoint ranges, reduces local bests
//     left-to-right under the same strict comparison, and therefore
//     returns bit-identical results to the sequential scan.
//
// Hard limit: x_max must fit in int64. Ratios L/a beyond 2⁶³−1 are
// outside the supported domain; the scan is O(x_max) regardless, so
// such inputs are far past any practical runtime anyway.
package residual

import (
	"fmt"
	"math"
	"sync"
)

// cancelCheckMask throttles context polling inside the hot loop: the
// context is consulted once every 1024 iterations.
const cancelCheckMask = 1<<10 - 1

// roundScale controls residual stabilization precision (1e-9).
const roundScale = 1e9

// Solve finds non-negative integers x, y minimizing |L − (a·x + b·y)|.
//
// Returns:
//
//   - sol: the minimal-residual Solution; on exact ties in |residual|
//     the smaller x wins. Solution.Evaluated reports how many
//     residuals the scan computed.
//   - err: ErrInvalidCoefficient, ErrNoFeasibleSolution, or the
//     context's error when a WithContext scan is cancelled.
//
// Preconditions and validation (in order):
//  1. a and b must be finite and > 0 (ErrInvalidCoefficient).
//  2. L must be finite and ≥ 0 (ErrNoFeasibleSolution).
//
// Both failure modes are detected before any scan work begins; the
// scan itself is pure arithmetic and cannot fail, short of
// cancellation.
//
// Complexity:
//
//   - Time:  O(x_max), x_max = ⌊L/a⌋ (or ⌊L/max(a,b)⌋ with ReduceScan).
//   - Space: O(1), or O(x_max) with CollectResiduals.
func Solve(L, a, b float64, opts ...Option) (Solution, error) {
	// 1) Build and normalize Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	cfg.normalize()

	return solve(L, a, b, cfg)
}

// solve is the shared entry behind Solve and Minimizer: options are
// already normalized, coefficients not yet validated.
func solve(L, a, b float64, cfg Options) (Solution, error) {
	// 2) Validate coefficients before touching them as divisors.
	if err := validateCoefficients(a, b); err != nil {
		return Solution{}, err
	}

	// 3) Validate the target. !(L >= 0) also catches NaN.
	if !(L >= 0) || math.IsInf(L, 1) {
		return Solution{}, fmt.Errorf("%w: L=%g", ErrNoFeasibleSolution, L)
	}

	// 4) Optionally scan over the larger coefficient: fewer candidates
	//    for the same family of pairs. The result is swapped back below.
	swapped := false
	if cfg.ReduceScan && b > a {
		a, b = b, a
		swapped = true
	}

	// 5) O(1) inclusive bound for x. Feasible range is [0, xMax].
	xMax := int64(math.Floor(L / a))

	// 6) Run the scan, sequential or chunked.
	sol, err := scan(L, a, b, xMax, cfg)
	if err != nil {
		return Solution{}, err
	}

	// 7) Express the pair in the caller's orientation.
	if swapped {
		sol.X, sol.Y = sol.Y, sol.X
	}

	return sol, nil
}

// validateCoefficients enforces the a > 0, b > 0 contract. NaN and
// infinite coefficients fail the same way: neither admits a meaningful
// floor division or rounding.
func validateCoefficients(a, b float64) error {
	if !(a > 0) || math.IsInf(a, 1) {
		return fmt.Errorf("%w: a=%g", ErrInvalidCoefficient, a)
	}
	if !(b > 0) || math.IsInf(b, 1) {
		return fmt.Errorf("%w: b=%g", ErrInvalidCoefficient, b)
	}

	return nil
}

// candidate is the transient per-x record tracked during the scan.
// Only the current best survives; everything else is discarded.
type candidate struct {
	x, y  int64   // the integer pair
	r     float64 // signed residual L − (a·x + b·y)
	abs   float64 // |r|, cached for the strict comparison
	found bool    // false until the chunk evaluates its first residual
}

// scan dispatches between the sequential and the chunked scan over
// [0, xMax] and assembles the Solution.
func scan(L, a, b float64, xMax int64, cfg Options) (Solution, error) {
	if cfg.Workers < 2 || xMax+1 < int64(cfg.Workers) {
		return scanSequential(L, a, b, xMax, cfg)
	}

	return scanParallel(L, a, b, xMax, cfg)
}

// scanSequential walks the whole feasible range in one goroutine.
func scanSequential(L, a, b float64, xMax int64, cfg Options) (Solution, error) {
	var residuals []Residual
	if cfg.CollectResiduals {
		residuals = make([]Residual, 0, xMax+1)
	}

	best, residuals, evaluated, err := scanChunk(L, a, b, 0, xMax, cfg, residuals)
	if err != nil {
		return Solution{}, err
	}
	if !best.found {
		// Unreachable for a validated range (x=0 always yields y ≥ 0),
		// kept as a guard against future bound changes.
		return Solution{}, ErrNoFeasibleSolution
	}

	return Solution{
		X:         best.x,
		Y:         best.y,
		Residual:  best.r,
		Evaluated: evaluated,
		Residuals: residuals,
	}, nil
}

// scanParallel partitions [0, xMax] into cfg.Workers contiguous
// disjoint chunks, evaluates each concurrently, then reduces the local
// bests left-to-right with the same strict comparison the sequential
// scan uses. Smaller-x candidates are merged first, so exact ties
// resolve identically under any worker count.
func scanParallel(L, a, b float64, xMax int64, cfg Options) (Solution, error) {
	var (
		workers = int64(cfg.Workers)
		count   = xMax + 1
		per     = count / workers // base chunk length
		extra   = count % workers // first `extra` chunks take one more
	)

	var (
		bests  = make([]candidate, workers)
		lists  = make([][]Residual, workers)
		counts = make([]int64, workers)
		errs   = make([]error, workers)
		wg     sync.WaitGroup
	)

	var lo int64 // running lower bound of the next chunk
	var w int64
	for w = 0; w < workers; w++ {
		size := per
		if w < extra {
			size++
		}
		hi := lo + size - 1

		wg.Add(1)
		go func(idx, lo, hi int64) {
			defer wg.Done()
			var local []Residual
			if cfg.CollectResiduals {
				local = make([]Residual, 0, hi-lo+1)
			}
			bests[idx], lists[idx], counts[idx], errs[idx] = scanChunk(L, a, b, lo, hi, cfg, local)
		}(w, lo, hi)

		lo = hi + 1
	}
	wg.Wait()

	// Surface the first cancellation; partial bests are discarded.
	var err error
	for _, err = range errs {
		if err != nil {
			return Solution{}, err
		}
	}

	// Deterministic left-to-right reduction.
	var (
		best      candidate
		evaluated int64
	)
	best.abs = math.Inf(1)
	for w = 0; w < workers; w++ {
		evaluated += counts[w]
		if bests[w].found && bests[w].abs < best.abs {
			best = bests[w]
		}
	}
	if !best.found {
		return Solution{}, ErrNoFeasibleSolution
	}

	var residuals []Residual
	if cfg.CollectResiduals {
		residuals = make([]Residual, 0, evaluated)
		for w = 0; w < workers; w++ {
			residuals = append(residuals, lists[w]...)
		}
	}

	return Solution{
		X:         best.x,
		Y:         best.y,
		Residual:  best.r,
		Evaluated: evaluated,
		Residuals: residuals,
	}, nil
}

// scanChunk evaluates every x in [lo, hi] and returns the chunk-local
// best candidate, the (optionally) collected residuals, and the number
// of residuals evaluated. The context is polled once every 1024
// iterations; on cancellation the chunk aborts with ctx.Err().
func scanChunk(L, a, b float64, lo, hi int64, cfg Options, residuals []Residual) (candidate, []Residual, int64, error) {
	var (
		best      candidate
		evaluated int64
		x         int64
		ax        float64 // a·x for the current candidate
		yRaw      float64 // exact real y solving the equation at x
		y         float64 // yRaw rounded half away from zero
		r         float64 // signed residual at (x, y)
		abs       float64
	)
	best.abs = math.Inf(1)

	for x = lo; x <= hi; x++ {
		// Poll on the first iteration of the chunk and every 1024 after.
		if (x-lo)&cancelCheckMask == 0 {
			if err := cfg.Ctx.Err(); err != nil {
				return candidate{}, nil, 0, err
			}
		}

		ax = a * float64(x)
		yRaw = (L - ax) / b
		// math.Round is the single rounding rule: half away from zero.
		y = math.Round(yRaw)
		if y < 0 {
			// Rounded below zero: no non-negative y exists for this x.
			continue
		}

		r = round1e9(L - (ax + b*y))
		evaluated++
		if residuals != nil {
			residuals = append(residuals, Residual{X: x, Value: r})
		}

		// Strictly-less keeps the earlier (smaller x) candidate on ties.
		if abs = math.Abs(r); abs < best.abs {
			best = candidate{x: x, y: int64(y), r: r, abs: abs, found: true}
		}
	}

	return best, residuals, evaluated, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Residuals that are mathematically equal must compare equal for the
// smallest-x tie-break to hold; stabilizing here prevents FP drift from
// splitting a tie across platforms.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
