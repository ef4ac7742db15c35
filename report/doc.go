// Package report turns a residual.Solution into the console summary
// the original optimizer programs printed: input echo at three decimal
// places, the equation string with the residual term shown explicitly,
// the evaluated-candidate count, and optional extras.
//
// ✨ Key features:
//   - one rendering path for all presentation variants: the immediate
//     report, the explicit solve method and the residual survey are
//     just Options combinations, not separate implementations
//   - the core computes, the caller measures, report only formats:
//     elapsed time is passed in, never taken here
//   - explicit-residual convention: the equation always reads
//     x * [a] + y * [b] + residual = L
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/LucasMaul/linfit/report"
//	    "github.com/LucasMaul/linfit/residual"
//	)
//
//	start := time.Now()
//	sol, err := residual.Solve(20.5, 0.80, 1.25)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = report.Write(os.Stdout, 20.5, 0.80, 1.25, sol, report.Options{
//	    Elapsed: time.Since(start),
//	})
//
// See examples in example_test.go and runnable programs in examples/.
package report
