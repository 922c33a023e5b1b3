package linerate

import (
	"math"
	"testing"
)

func TestConvectiveLoss_WindIncreasesLoss(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()

	calm := env
	calm.WindSpeed = 0.0

	still := ConvectiveLoss(calm, cond, 100.0)
	windy := ConvectiveLoss(env, cond, 100.0)

	if still <= 0.0 {
		t.Errorf("Natural convection should be positive above ambient, got %.4f", still)
	}
	if windy <= still {
		t.Errorf("Forced convection at 2 ft/s (%.4f W/ft) should beat natural (%.4f W/ft)", windy, still)
	}

	t.Logf("✓ Convection: natural %.3f W/ft, forced %.3f W/ft", still, windy)
}

func TestConvectiveLoss_WindAngleReflection(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()

	// 90°, 270°, and −90° are the same crosswind once reflected into
	// [0°, 90°].
	base := ConvectiveLoss(env, cond, 100.0)
	for _, angle := range []float64{270.0, -90.0, 450.0} {
		rotated := env
		rotated.WindAngle = angle
		got := ConvectiveLoss(rotated, cond, 100.0)
		if math.Abs(got-base) > 1e-12 {
			t.Errorf("Wind angle %.0f° gave %.6f W/ft, want %.6f W/ft", angle, got, base)
		}
	}

	// A parallel wind sheds less heat than a crosswind.
	parallel := env
	parallel.WindAngle = 0.0
	if got := ConvectiveLoss(parallel, cond, 100.0); got >= base {
		t.Errorf("Parallel wind (%.4f W/ft) should shed less than crosswind (%.4f W/ft)", got, base)
	}

	t.Logf("✓ Wind angle reflected into [0°, 90°], crosswind %.3f W/ft", base)
}

func TestRadiatedLoss_SignFollowsTemperatureDifference(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()

	if hot := RadiatedLoss(env, cond, 100.0); hot <= 0.0 {
		t.Errorf("Radiated loss above ambient should be positive, got %.4f", hot)
	}
	if equal := RadiatedLoss(env, cond, env.AmbientTemperature); equal != 0.0 {
		t.Errorf("Radiated loss at ambient should be zero, got %.6f", equal)
	}
	if cold := RadiatedLoss(env, cond, 20.0); cold >= 0.0 {
		t.Errorf("Radiated loss below ambient should be negative, got %.4f", cold)
	}

	t.Log("✓ Radiated loss sign follows surface-minus-ambient")
}

func TestSolarGain_FixedIrradiance(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()

	env.SolarRadiation = 94.6
	gain := SolarGain(env, cond)
	want := cond.Absorptivity * env.SolarRadiation * cond.Diameter

	if math.Abs(gain-want) > 1e-12 {
		t.Errorf("Fixed irradiance gain %.8f, want α·Q·D = %.8f", gain, want)
	}

	env.SolarRadiation = 2.0 * 94.6
	if doubled := SolarGain(env, cond); math.Abs(doubled-2.0*want) > 1e-12 {
		t.Errorf("Gain should be linear in irradiance: %.8f vs %.8f", doubled, 2.0*want)
	}

	t.Logf("✓ Fixed irradiance short-circuit: %.5f W/ft", gain)
}

func TestSolarGain_ComputedSun(t *testing.T) {
	env := referenceEnv()
	cond := referenceConductor()

	day := SolarGain(env, cond)
	if day <= 0.0 {
		t.Errorf("Computed solar gain at 11:00 in June should be positive, got %.5f", day)
	}

	night := env
	night.HourOfDay = 0.0
	if got := SolarGain(night, cond); got != 0.0 {
		t.Errorf("Solar gain at midnight should be zero, got %.6f", got)
	}

	industrial := env
	industrial.AtmosphereClear = false
	haze := SolarGain(industrial, cond)
	if haze <= 0.0 || haze >= day {
		t.Errorf("Industrial atmosphere gain %.5f should be positive and below clear-sky %.5f", haze, day)
	}

	t.Logf("✓ Computed sun: clear %.5f W/ft, industrial %.5f W/ft, midnight 0", day, haze)
}

func TestDayOfYear(t *testing.T) {
	cases := []struct {
		month, day, want int
	}{
		{1, 1, 1},
		{2, 1, 32},
		{6, 10, 161},
		{12, 31, 365},
	}

	for _, tc := range cases {
		if got := DayOfYear(tc.month, tc.day); got != tc.want {
			t.Errorf("DayOfYear(%d, %d) = %d, want %d", tc.month, tc.day, got, tc.want)
		}
	}
}

func TestResistance_LinearInterpolation(t *testing.T) {
	cond := referenceConductor()

	if got := cond.Resistance(25.0); math.Abs(got-cond.RLow) > 1e-18 {
		t.Errorf("Resistance at TLow = %.8e, want %.8e", got, cond.RLow)
	}
	if got := cond.Resistance(75.0); math.Abs(got-cond.RHigh) > 1e-18 {
		t.Errorf("Resistance at THigh = %.8e, want %.8e", got, cond.RHigh)
	}

	mid := cond.Resistance(50.0)
	want := (cond.RLow + cond.RHigh) / 2.0
	if math.Abs(mid-want) > 1e-18 {
		t.Errorf("Resistance at midpoint = %.8e, want %.8e", mid, want)
	}

	// Extrapolation above THigh keeps climbing.
	if cond.Resistance(100.0) <= cond.RHigh {
		t.Error("Resistance should keep increasing above THigh")
	}

	t.Logf("✓ Linear resistance: %.5e Ω/ft at 50 °C", mid)
}
