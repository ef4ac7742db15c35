package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/LucasMaul/linfit/report"
	"github.com/LucasMaul/linfit/residual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEquation_ExplicitResidual pins the equation convention: the
// residual term is always shown explicitly and the right-hand side
// reconstructs the target.
func TestEquation_ExplicitResidual(t *testing.T) {
	sol, err := residual.Solve(20.5, 0.80, 1.25)
	require.NoError(t, err)

	got := report.Equation(0.80, 1.25, sol)
	assert.Equal(t, "10 * [0.800] + 10 * [1.250] + 0.000 = 20.500", got)
}

// TestEquation_NonZeroResidual checks formatting when the fit is not
// exact: L=5, a=2, b=4 leaves a residual of 1.
func TestEquation_NonZeroResidual(t *testing.T) {
	sol, err := residual.Solve(5, 2, 4)
	require.NoError(t, err)

	got := report.Equation(2, 4, sol)
	assert.Equal(t, "0 * [2.000] + 1 * [4.000] + 1.000 = 5.000", got)
}

// TestWrite_SolutionBlock verifies the full report layout: banner,
// input echo at three decimals, equation framed by bars sized to it,
// fitted length and evaluated count.
func TestWrite_SolutionBlock(t *testing.T) {
	sol, err := residual.Solve(5, 2, 4)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.Write(&sb, 5, 2, 4, sol, report.Options{}))

	equation := report.Equation(2, 4, sol)
	bar := strings.Repeat("=", len(equation))
	want := "==================\n" +
		"optimized solution\n" +
		"==================\n" +
		"L = 5.000\n" +
		"a = 2.000\n" +
		"b = 4.000\n" +
		bar + "\n" +
		equation + "\n" +
		bar + "\n" +
		"> fitted length without residual: 4.000\n" +
		"> got minimum out of 3 residuals\n"
	assert.Equal(t, want, sb.String())
}

// TestWrite_ElapsedLine verifies the timing line appears exactly when
// a positive duration is supplied; the caller owns the measurement.
func TestWrite_ElapsedLine(t *testing.T) {
	sol, err := residual.Solve(5, 2, 4)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.Write(&sb, 5, 2, 4, sol, report.Options{Elapsed: 1500 * time.Millisecond}))
	assert.Contains(t, sb.String(), "> optimization took 1.5s\n")

	sb.Reset()
	require.NoError(t, report.Write(&sb, 5, 2, 4, sol, report.Options{}))
	assert.NotContains(t, sb.String(), "optimization took", "zero duration must omit the timing line")
}

// TestWrite_ResidualSurvey verifies the survey section: one line per
// evaluated candidate in scan order, preceding the solution block.
func TestWrite_ResidualSurvey(t *testing.T) {
	sol, err := residual.Solve(5, 2, 4, residual.WithCollectResiduals())
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.Write(&sb, 5, 2, 4, sol, report.Options{ShowResiduals: true}))

	out := sb.String()
	assert.Contains(t, out, "evaluated (x, residual)\n")
	assert.Contains(t, out, "x=0 residual=1.000\n")
	assert.Contains(t, out, "x=1 residual=-1.000\n")
	assert.Contains(t, out, "x=2 residual=1.000\n")
	assert.Less(t, strings.Index(out, "evaluated (x, residual)"), strings.Index(out, "optimized solution"),
		"survey must precede the solution block")
}

// TestWrite_SurveySkippedWithoutCollection checks that requesting the
// survey on a Solution solved without residual collection renders the
// solution block only.
func TestWrite_SurveySkippedWithoutCollection(t *testing.T) {
	sol, err := residual.Solve(5, 2, 4)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.Write(&sb, 5, 2, 4, sol, report.Options{ShowResiduals: true}))
	assert.NotContains(t, sb.String(), "evaluated (x, residual)")
}

// TestWrite_LargeScenario renders the large-range scenario and checks
// the headline numbers survive formatting.
func TestWrite_LargeScenario(t *testing.T) {
	sol, err := residual.Solve(1061105.570, 1.250, 0.800)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.Write(&sb, 1061105.570, 1.250, 0.800, sol, report.Options{}))

	out := sb.String()
	assert.Contains(t, out, "L = 1061105.570\n")
	assert.Contains(t, out, "7 * [1.250] + 1326371 * [0.800] + 0.020 = 1061105.570\n")
	assert.Contains(t, out, "> got minimum out of 848885 residuals\n")
}
