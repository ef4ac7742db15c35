package residual

import "context"

// Minimizer holds a validated pair of coefficients plus solve options,
// for callers that fit many targets against the same (a, b). It is
// immutable after construction and safe for concurrent use: every
// Solve runs an independent scan with no shared mutable state.
type Minimizer struct {
	a, b float64 // validated coefficients, a paired with x
	opts Options // normalized options applied to every solve
}

// New builds a Minimizer for the equation L ≈ a·x + b·y.
//
// Coefficients are validated once, here, so each subsequent Solve only
// validates its target. Functional options set the defaults for every
// solve made through this Minimizer.
//
// Errors: ErrInvalidCoefficient if a ≤ 0, b ≤ 0, or either is NaN/±Inf.
func New(a, b float64, opts ...Option) (*Minimizer, error) {
	if err := validateCoefficients(a, b); err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	cfg.normalize()

	return &Minimizer{a: a, b: b, opts: cfg}, nil
}

// Solve scans for the minimal-residual pair approximating L with the
// Minimizer's coefficients. See Solve (package level) for the full
// contract; coefficient validation is already done.
func (m *Minimizer) Solve(L float64) (Solution, error) {
	return solve(L, m.a, m.b, m.opts)
}

// SolveContext is Solve with a per-call cancellation context, taking
// precedence over any WithContext option given to New. A cancelled
// scan returns ctx.Err() and no partial Solution.
func (m *Minimizer) SolveContext(ctx context.Context, L float64) (Solution, error) {
	cfg := m.opts
	if ctx != nil {
		cfg.Ctx = ctx
	}

	return solve(L, m.a, m.b, cfg)
}

// Coefficients returns the validated (a, b) pair this Minimizer scans
// with, in the caller's original orientation.
func (m *Minimizer) Coefficients() (a, b float64) { return m.a, m.b }
