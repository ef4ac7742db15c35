// Package report renders a residual.Solution as the classic console
// summary: input echo, equation string, minimal residual, evaluated
// count, and optionally the full residual survey and the elapsed scan
// time (measured by the caller, never by the core).
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/LucasMaul/linfit/residual"
)

// decimals is the fixed display precision for lengths, coefficients
// and residuals; three places matches the reference reports.
const decimals = "%.3f"

// Options configures rendering of a Solution.
//
// ShowResiduals – also print every evaluated (x, residual) pair. The
// Solution must have been produced with residual collection enabled,
// otherwise there is nothing to print and the section is skipped.
// Elapsed       – wall-clock duration of the scan as measured by the
// caller; zero omits the timing line.
type Options struct {
	ShowResiduals bool          // Whether to print the residual survey section
	Elapsed       time.Duration // Scan duration measured by the caller
}

// Equation formats the one-line summary of a Solution with the
// residual term shown explicitly:
//
//	x * [a] + y * [b] + residual = L
//
// The right-hand side is the fitted length plus the residual, which
// reconstructs the target. The explicit-residual convention is used
// everywhere in this package; the residual is never folded silently
// into the target.
func Equation(a, b float64, sol residual.Solution) string {
	fitted := a*float64(sol.X) + b*float64(sol.Y)

	return fmt.Sprintf(
		"%d * ["+decimals+"] + %d * ["+decimals+"] + "+decimals+" = "+decimals,
		sol.X, a, sol.Y, b, sol.Residual, fitted+sol.Residual,
	)
}

// Write renders the full console report for one solve to w.
//
// Layout (bars sized to the equation line):
//
//	==================
//	optimized solution
//	==================
//	L = 20.500
//	a = 0.800
//	b = 1.250
//	=====================================
//	10 * [0.800] + 10 * [1.250] + 0.000 = 20.500
//	=====================================
//	> fitted length without residual: 20.500
//	> got minimum out of 26 residuals
//	> optimization took 1.2ms            (only with Options.Elapsed)
//
// With Options.ShowResiduals and a collected Solution, the survey of
// every evaluated (x, residual) pair precedes the solution block.
//
// Returns the first write error, if any.
func Write(w io.Writer, L, a, b float64, sol residual.Solution, opts Options) error {
	var sb strings.Builder

	if opts.ShowResiduals && len(sol.Residuals) > 0 {
		writeResiduals(&sb, sol.Residuals)
	}

	equation := Equation(a, b, sol)
	bar := strings.Repeat("=", len(equation))
	fitted := a*float64(sol.X) + b*float64(sol.Y)

	sb.WriteString("==================\n")
	sb.WriteString("optimized solution\n")
	sb.WriteString("==================\n")
	fmt.Fprintf(&sb, "L = "+decimals+"\n", L)
	fmt.Fprintf(&sb, "a = "+decimals+"\n", a)
	fmt.Fprintf(&sb, "b = "+decimals+"\n", b)
	sb.WriteString(bar + "\n")
	sb.WriteString(equation + "\n")
	sb.WriteString(bar + "\n")
	fmt.Fprintf(&sb, "> fitted length without residual: "+decimals+"\n", fitted)
	fmt.Fprintf(&sb, "> got minimum out of %d residuals\n", sol.Evaluated)
	if opts.Elapsed > 0 {
		fmt.Fprintf(&sb, "> optimization took %s\n", opts.Elapsed)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// writeResiduals renders the survey section: one line per evaluated
// candidate, in the scan's ascending x order.
func writeResiduals(sb *strings.Builder, residuals []residual.Residual) {
	sb.WriteString("=========================\n")
	sb.WriteString("evaluated (x, residual)\n")
	sb.WriteString("=========================\n")
	var r residual.Residual
	for _, r = range residuals {
		fmt.Fprintf(sb, "x=%d residual="+decimals+"\n", r.X, r.Value)
	}
}
