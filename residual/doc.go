// Package residual finds the non-negative integer pair (x, y) whose
// linear combination a·x + b·y lands closest to a real target L.
//
// 🚀 What is the residual minimizer?
//
//	Given two piece lengths a, b > 0 and a target length L, the scan
//	enumerates every feasible x ∈ [0, ⌊L/a⌋], solves for the nearest
//	integer y, and keeps the pair with the smallest leftover
//	|L − (a·x + b·y)|. It answers questions like:
//	  • Cut-stock planning: how many pieces of each length?
//	  • Coin/weight fitting: which integer mix best matches a total?
//	  • Any two-variable, one-equation integer approximation
//
// ✨ Key features:
//   - O(1) range bound via floor division, O(x_max) scan
//   - single rounding rule: y rounds half away from zero
//   - deterministic smallest-x tie-break on exact residual ties
//   - optional chunked parallel scan (WithWorkers) with bit-identical
//     results, including ties
//   - optional residual collection (WithCollectResiduals) for
//     diagnostics and rendering
//   - optional scan reduction (WithReduceScan): enumerate over the
//     larger coefficient, swap the pair back for the caller
//
// ⚙️ Usage:
//
//	import "github.com/LucasMaul/linfit/residual"
//
//	// one-shot
//	sol, err := residual.Solve(20.5, 0.80, 1.25)
//
//	// reusable coefficients, cancellable scan
//	m, err := residual.New(1.250, 0.800, residual.WithWorkers(4))
//	sol, err = m.SolveContext(ctx, 1061105.570)
//	x, y := sol.Pair()
//
// This is not a general integer linear programming solver: exactly two
// variables, one equation, non-negative integer solutions only.
//
// Performance:
//
//   - Time:   O(x_max); not asymptotically reducible for two free
//     integer variables under one real equation — further speed comes
//     from WithWorkers, not from a smarter sequential algorithm.
//   - Memory: O(1), or O(x_max) with WithCollectResiduals.
//
// x_max must fit in int64; larger L/a ratios are outside the supported
// domain.
//
// See examples in example_test.go and runnable programs in examples/.
package residual
