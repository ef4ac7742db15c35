// Package linfit fits a target length L with two integer counts — the
// closest non-negative integer pair (x, y) such that a·x + b·y ≈ L.
//
// 🚀 What is linfit?
//
//	A small, deterministic library for the classic "rest minimization"
//	problem: given two piece lengths a and b and a target L, how many
//	pieces of each do you take so the leftover |L − (a·x + b·y)| is
//	as small as possible?
//		• Core scan: bounded enumeration over x ∈ [0, ⌊L/a⌋]
//		• Nearest-integer y per candidate (half away from zero)
//		• Deterministic tie-break: smallest x wins exact ties
//		• Optional chunked parallel scan with identical results
//		• Optional per-candidate residual collection
//
// ✨ Why choose linfit?
//
//   - Beginner-friendly – one entry point, clear, intuitive naming
//   - Deterministic – stable tie-breaks, no time-based randomness
//   - Pure Go – no cgo, no hidden deps
//   - Honest diagnostics – evaluated counts and residuals are returned
//     data, rendered separately from the computation
//
// Under the hood, everything is organized under two subpackages:
//
//	residual/ — the residual minimizer: Solve, Minimizer, Options
//	report/   — console rendering of a Solution (input echo, equation
//	            string, residual dump)
//
// Quick sketch:
//
//	L = 20.5, a = 0.80, b = 1.25
//	→ x = 10, y = 10, residual = 0.000  (0.8·10 + 1.25·10 = 20.5)
//
// Dive into examples/ for runnable programs covering the immediate
// report, the reusable Minimizer and the residual survey.
//
//	go get github.com/LucasMaul/linfit
package linfit
