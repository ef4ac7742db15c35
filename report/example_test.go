// File: report/example_test.go
package report_test

import (
	"os"

	"github.com/LucasMaul/linfit/report"
	"github.com/LucasMaul/linfit/residual"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Write
////////////////////////////////////////////////////////////////////////////////

// ExampleWrite renders the console report for a small fit where no
// exact pair exists: L=5, a=2, b=4 leaves a minimal residual of 1,
// first reached at x=0.
func ExampleWrite() {
	sol, err := residual.Solve(5, 2, 4)
	if err != nil {
		return
	}

	_ = report.Write(os.Stdout, 5, 2, 4, sol, report.Options{})

	// Output:
	// ==================
	// optimized solution
	// ==================
	// L = 5.000
	// a = 2.000
	// b = 4.000
	// =========================================
	// 0 * [2.000] + 1 * [4.000] + 1.000 = 5.000
	// =========================================
	// > fitted length without residual: 4.000
	// > got minimum out of 3 residuals
}

////////////////////////////////////////////////////////////////////////////////
// Example: Write with residual survey
////////////////////////////////////////////////////////////////////////////////

// ExampleWrite_showResiduals additionally prints every evaluated
// (x, residual) pair ahead of the solution block.
func ExampleWrite_showResiduals() {
	sol, err := residual.Solve(5, 2, 4, residual.WithCollectResiduals())
	if err != nil {
		return
	}

	_ = report.Write(os.Stdout, 5, 2, 4, sol, report.Options{ShowResiduals: true})

	// Output:
	// =========================
	// evaluated (x, residual)
	// =========================
	// x=0 residual=1.000
	// x=1 residual=-1.000
	// x=2 residual=1.000
	// ==================
	// optimized solution
	// ==================
	// L = 5.000
	// a = 2.000
	// b = 4.000
	// =========================================
	// 0 * [2.000] + 1 * [4.000] + 1.000 = 5.000
	// =========================================
	// > fitted length without residual: 4.000
	// > got minimum out of 3 residuals
}
