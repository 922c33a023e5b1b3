package linerate

import "math"

// Steady-state temperature search bracket. 256 °C sits above any sane
// operating limit for bare conductors; the solver doubles past it when
// a current demands more.
const temperatureBracketHi = 256.0

// Rating returns the steady-state thermal rating in amps: the constant
// current at which resistive heating balances the net heat loss with
// the conductor surface held at conductorTemperature. Current² is
// linear in net flux at a fixed temperature, so no iteration is needed:
//
//	I = √((Q_c + Q_r − Q_s) / R(T_s))
//
// Returns 0 when conductorTemperature is below ambient, and 0 when the
// net heat loss is negative — ambient plus solar heating already holds
// the conductor above the target, so no current fits.
func Rating(env Environment, c Conductor, conductorTemperature float64) float64 {
	if conductorTemperature < env.AmbientTemperature {
		return 0.0
	}

	qc := ConvectiveLoss(env, c, conductorTemperature)
	qr := RadiatedLoss(env, c, conductorTemperature)
	qs := SolarGain(env, c)

	net := qc + qr - qs
	if net < 0.0 {
		return 0.0
	}

	return math.Sqrt(net / c.Resistance(conductorTemperature))
}

// Temperature returns the steady-state conductor surface temperature in
// °C reached under the given constant current, found by inverting
// Rating over the bracket [ambient, 256 °C] to the given tolerance
// (°C). Negative current is not physical and returns 0.
func Temperature(env Environment, c Conductor, current, tolerance float64) float64 {
	if current < 0.0 {
		return 0.0
	}

	cfg := DefaultSolverConfig()
	cfg.Lo = env.AmbientTemperature
	cfg.Hi = temperatureBracketHi
	cfg.Tolerance = tolerance

	return SolveMonotone(func(t float64) float64 {
		return Rating(env, c, t)
	}, current, cfg)
}
