package linerate

import (
	"math"
	"testing"
)

// AssertionConfig contains thresholds for heat-balance properties.
type AssertionConfig struct {
	// Amps of drift allowed on a rating → temperature → rating loop
	RoundTripTolerance float64

	// Solver tolerance (°C or A) used inside the assertions
	SolverTolerance float64

	// Grid points for monotonicity sweeps
	Samples int
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RoundTripTolerance: 1.0,
		SolverTolerance:    0.01,
		Samples:            16,
	}
}

// AssertMonotoneRating verifies the steady rating never decreases as
// the target temperature rises across [loTemp, hiTemp]. This is the
// precondition Temperature relies on to invert Rating by bisection.
func AssertMonotoneRating(t *testing.T, env Environment, c Conductor, loTemp, hiTemp float64, cfg AssertionConfig) {
	t.Helper()

	step := (hiTemp - loTemp) / float64(cfg.Samples)
	prev := Rating(env, c, loTemp)
	for i := 1; i <= cfg.Samples; i++ {
		temp := loTemp + float64(i)*step
		cur := Rating(env, c, temp)
		if cur < prev {
			t.Errorf("Rating not monotone: %.3f A at %.2f °C after %.3f A at %.2f °C",
				cur, temp, prev, temp-step)
		}
		prev = cur
	}

	t.Logf("✓ Rating monotone over [%.1f, %.1f] °C (%d samples)", loTemp, hiTemp, cfg.Samples)
}

// AssertMonotoneRise verifies the transient temperature rise never
// decreases as current grows across [loCurrent, hiCurrent]. This is
// the precondition TransientRating relies on.
func AssertMonotoneRise(t *testing.T, env Environment, c Conductor, initialTemperature, timeStep float64, steps int, loCurrent, hiCurrent float64, cfg AssertionConfig) {
	t.Helper()

	step := (hiCurrent - loCurrent) / float64(cfg.Samples)
	prev := TemperatureRise(env, c, initialTemperature, loCurrent, timeStep, steps)
	for i := 1; i <= cfg.Samples; i++ {
		current := loCurrent + float64(i)*step
		cur := TemperatureRise(env, c, initialTemperature, current, timeStep, steps)
		if cur < prev {
			t.Errorf("TemperatureRise not monotone: %.4f °C at %.1f A after %.4f °C at %.1f A",
				cur, current, prev, current-step)
		}
		prev = cur
	}

	t.Logf("✓ TemperatureRise monotone over [%.0f, %.0f] A (%d samples)", loCurrent, hiCurrent, cfg.Samples)
}

// AssertRoundTrip verifies Rating(Temperature(current)) returns to
// current within cfg.RoundTripTolerance amps.
func AssertRoundTrip(t *testing.T, env Environment, c Conductor, current float64, cfg AssertionConfig) {
	t.Helper()

	temp := Temperature(env, c, current, cfg.SolverTolerance)
	back := Rating(env, c, temp)

	if math.Abs(back-current) > cfg.RoundTripTolerance {
		t.Errorf("Round trip drifted: %.3f A → %.3f °C → %.3f A (tolerance %.3f A)",
			current, temp, back, cfg.RoundTripTolerance)
		return
	}

	t.Logf("✓ Round trip: %.1f A → %.2f °C → %.3f A", current, temp, back)
}

// AssertConverged verifies a SolveMonotone result actually hit its
// target, failing the test on an unreachable-target midpoint.
func AssertConverged(t *testing.T, f Evaluator, target, x, tol float64) {
	t.Helper()

	if !Converged(f, target, x, tol) {
		t.Errorf("Solver gave up: f(%.4f) = %.4f, target %.4f (tolerance %.4f)",
			x, f(x), target, tol)
		return
	}

	t.Logf("✓ Converged: f(%.4f) = %.4f ≈ %.4f", x, f(x), target)
}
