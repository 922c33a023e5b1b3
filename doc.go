// Package linerate computes the current-carrying capacity of bare
// overhead conductors per the IEEE 738 heat-balance standard.
//
// # Overview
//
// A conductor in service sits at the temperature where the heat it
// takes in balances the heat it sheds:
//
//	I²·R(T_s) + Q_s = Q_c + Q_r
//
// Where:
//   - I: current (A)
//   - R(T_s): resistance at surface temperature T_s (Ω/ft)
//   - Q_s: solar heat gain (W/ft)
//   - Q_c: convective heat loss (W/ft)
//   - Q_r: radiated heat loss (W/ft)
//
// The package answers three questions about that balance:
//
//   - Rating: what steady current holds the conductor at a target
//     surface temperature?
//   - Temperature: what surface temperature results from a given
//     steady current?
//   - TransientRating: what constant current can the conductor carry
//     for a bounded time window without exceeding a temperature limit?
//
// Rating is closed-form. The other two invert nonlinear relationships
// and share one numerical engine: SolveMonotone, a bracket-expansion
// plus bisection root-finder for non-decreasing scalar functions.
//
// # Quick Start
//
//	cond := linerate.Conductor{
//	    Diameter:     0.092333333, // ft
//	    Absorptivity: 0.8,
//	    Emissivity:   0.8,
//	    TLow:         25.0,
//	    THigh:        75.0,
//	    RLow:         2.20833e-5, // Ω/ft
//	    RHigh:        2.63258e-5, // Ω/ft
//	    HeatCapacity: 305.6328,   // J/(ft·°C)
//	}
//
//	env := linerate.Environment{
//	    AmbientTemperature: 40.0,
//	    WindSpeed:          2.0, // ft/s
//	    WindAngle:          90.0,
//	    SolarRadiation:     -1.0, // compute from date/time/location
//	    Month:              6,
//	    DayOfMonth:         10,
//	    HourOfDay:          11.0,
//	    Latitude:           30.0,
//	    LineAzimuth:        90.0,
//	    AtmosphereClear:    true,
//	}
//
//	amps := linerate.Rating(env, cond, 100.0)
//	temp := linerate.Temperature(env, cond, amps, 0.01)
//
// # Transient Ratings
//
// TemperatureRise advances the heat-balance ODE under a fixed current
// with an explicit-Euler stepper; TransientRating inverts it to find
// the largest current whose rise stays under a ceiling:
//
//	// Max current for 31 minutes starting from 100 °C, ceiling 254.3 °C.
//	amps := linerate.TransientRating(env, cond, 100.0, 254.3, 60.0, 31, 0.01)
//
// Step size is the caller's stability knob: explicit Euler is only
// accurate when the step duration is small against the conductor's
// thermal time constant (HeatCapacity over the effective heat-transfer
// coefficient).
//
// # Edge Policy
//
// There is no error type. Physically invalid inputs (target below
// ambient, negative current, ceiling below the starting temperature)
// and negative net heat flux (solar gain exceeding losses) all produce
// a zero result. The root-finder never fails either: when a target is
// unreachable it returns the midpoint of its exhausted bracket, and
// Converged lets callers tell that apart from a real solution.
//
// # Units
//
// The primary surface uses the standard's US customary formulation
// (feet, ft/s, W/ft, Ω/ft, °C). The ...SI functions carry the metric
// formulation; the solvers are agnostic to which family the caller
// composes, but the two must not be mixed within one call.
//
// # Testing
//
// assertions.go provides property checks for use in tests:
//
//	func TestMyConductor(t *testing.T) {
//	    cfg := linerate.DefaultAssertionConfig()
//	    linerate.AssertMonotoneRating(t, env, cond, 50, 150, cfg)
//	    linerate.AssertRoundTrip(t, env, cond, 800, cfg)
//	}
package linerate
