package linerate

import (
	"math"
	"testing"
)

func TestRating_ZeroBelowAmbient(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()

	if got := Rating(env, cond, env.AmbientTemperature-1.0); got != 0.0 {
		t.Errorf("Rating below ambient should be exactly 0, got %v", got)
	}

	t.Log("✓ Rating(target < ambient) = 0")
}

func TestRating_ZeroOnNegativeNetFlux(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()

	// A brutal fixed irradiance: solar gain alone overwhelms what a
	// conductor 1 °C above ambient can shed, so no current fits.
	env.SolarRadiation = 1000.0

	if got := Rating(env, cond, env.AmbientTemperature+1.0); got != 0.0 {
		t.Errorf("Rating with negative net flux should clamp to 0, got %v", got)
	}

	t.Log("✓ Negative net heat flux clamps the rating to 0")
}

func TestRating_MonotoneInTemperature(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()

	AssertMonotoneRating(t, env, cond, env.AmbientTemperature, 250.0, DefaultAssertionConfig())
}

func TestTemperature_NegativeCurrent(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()

	if got := Temperature(env, cond, -100.0, 0.01); got != 0.0 {
		t.Errorf("Temperature of a negative current should be 0, got %v", got)
	}

	t.Log("✓ Temperature(current < 0) = 0")
}

func TestTemperature_ZeroCurrentWithoutSun(t *testing.T) {
	env := referenceEnv()
	env.SolarRadiation = 0.0
	cond := referenceConductor()

	// With no solar gain and no current the only equilibrium is ambient.
	got := Temperature(env, cond, 0.0, 0.01)
	if math.Abs(got-env.AmbientTemperature) > 0.01 {
		t.Errorf("Zero current without sun should settle at ambient, got %.4f °C", got)
	}

	t.Logf("✓ Temperature(0 A, no sun) = %.4f °C", got)
}

func TestRoundTrip_AcrossCurrents(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()
	cfg := DefaultAssertionConfig()

	for _, current := range []float64{200.0, 600.0, 1000.0, 1400.0} {
		AssertRoundTrip(t, env, cond, current, cfg)
	}
}

func TestTemperature_GrowsWithCurrent(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()

	prev := Temperature(env, cond, 100.0, 0.01)
	for _, current := range []float64{400.0, 800.0, 1200.0, 1600.0} {
		cur := Temperature(env, cond, current, 0.01)
		if cur < prev {
			t.Errorf("Temperature fell from %.3f to %.3f °C as current rose to %.0f A", prev, cur, current)
		}
		prev = cur
	}

	t.Logf("✓ Temperature non-decreasing in current, %.2f °C at 1600 A", prev)
}
