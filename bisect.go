package linerate

import "math"

// Evaluator is a scalar function assumed non-decreasing over the solve
// domain: the rating as a function of conductor temperature, or the
// temperature rise as a function of current.
type Evaluator func(x float64) float64

// SolverConfig controls bracket expansion and bisection.
type SolverConfig struct {
	Lo           float64 // initial lower bound
	Hi           float64 // initial upper bound
	Tolerance    float64 // absolute tolerance, in units of the unknown
	Growth       float64 // bracket growth factor, must exceed 1
	MaxMagnitude float64 // cap on upper-bound expansion
}

// DefaultSolverConfig returns the reference solver settings. Lo and Hi
// are left zero; call sites supply the physical bracket.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Tolerance:    0.01,
		Growth:       2.0,
		MaxMagnitude: math.MaxFloat64 / 2.0,
	}
}

// SolveMonotone finds x such that f(x) ≈ target for a non-decreasing f.
//
// Phase 1 multiplies the upper bound by cfg.Growth until f overshoots
// the target or the bound reaches cfg.MaxMagnitude; for any monotone f
// with a reachable target this brackets the root. Phase 2 bisects the
// bracket down to cfg.Tolerance and returns its midpoint, which then
// lies within the tolerance of the true root whenever f is monotone
// non-decreasing and continuous on the final bracket.
//
// There is no failure return. When the target is unreachable below the
// cap the midpoint of the exhausted bracket comes back anyway; callers
// that must tell "solved" from "gave up" re-evaluate f at the result,
// which is what Converged does. A non-monotone f yields the first
// bisection-consistent root, not necessarily the global one — that
// precondition belongs to the caller, not to this routine.
func SolveMonotone(f Evaluator, target float64, cfg SolverConfig) float64 {
	lo, hi := cfg.Lo, cfg.Hi

	for f(hi) < target && hi < cfg.MaxMagnitude {
		hi *= cfg.Growth
	}

	for hi-lo > cfg.Tolerance {
		mid := (lo + hi) / 2.0
		if f(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2.0
}

// Converged reports whether x actually solves f(x) ≈ target within tol.
// Use it after SolveMonotone to detect an unreachable target.
func Converged(f Evaluator, target, x, tol float64) bool {
	return math.Abs(f(x)-target) <= tol
}
