package linerate

// Transient rating search bracket. Most lines rate below 4096 A; the
// solver doubles past it when a scenario supports more.
const currentBracketHi = 4096.0

// StepFunc advances a conductor temperature by one time step of dt
// seconds, given the heat-balance derivative dT/dt as a function of
// temperature.
type StepFunc func(temperature, dt float64, deriv func(t float64) float64) float64

// EulerStep is the reference first-order explicit update. It is the
// default everywhere; the published test values assume it.
func EulerStep(temperature, dt float64, deriv func(t float64) float64) float64 {
	return temperature + dt*deriv(temperature)
}

// HeunStep is a second-order predictor-corrector alternative for
// callers that want accuracy at larger step sizes. It does not
// reproduce the reference outputs.
func HeunStep(temperature, dt float64, deriv func(t float64) float64) float64 {
	k1 := deriv(temperature)
	k2 := deriv(temperature + dt*k1)
	return temperature + dt*(k1+k2)/2.0
}

// heatRate returns dT/dt in °C/s at the given surface temperature for a
// fixed current: net heat flux over heat capacity per unit length.
func heatRate(env Environment, c Conductor, current, temperature float64) float64 {
	qc := ConvectiveLoss(env, c, temperature)
	qr := RadiatedLoss(env, c, temperature)
	qs := SolarGain(env, c)
	r := c.Resistance(temperature)
	return (r*current*current + qs - qc - qr) / c.HeatCapacity
}

// TemperatureRise integrates the heat-balance ODE under a constant
// current for steps increments of timeStep seconds, starting from
// initialTemperature, and returns the net rise (final − initial, °C)
// using the explicit-Euler stepper. A starting point below ambient is
// not physical and returns 0.
//
// Stability is the caller's concern: timeStep must be small against the
// conductor's thermal time constant or the explicit update oscillates.
func TemperatureRise(env Environment, c Conductor, initialTemperature, current, timeStep float64, steps int) float64 {
	return TemperatureRiseWith(env, c, initialTemperature, current, timeStep, steps, EulerStep)
}

// TemperatureRiseWith is TemperatureRise with a pluggable stepper.
func TemperatureRiseWith(env Environment, c Conductor, initialTemperature, current, timeStep float64, steps int, step StepFunc) float64 {
	if initialTemperature < env.AmbientTemperature {
		return 0.0
	}

	deriv := func(t float64) float64 {
		return heatRate(env, c, current, t)
	}

	temperature := initialTemperature
	for i := 0; i < steps; i++ {
		temperature = step(temperature, timeStep, deriv)
	}

	return temperature - initialTemperature
}

// Trajectory records the explicit-Euler temperature path under a
// constant current: steps+1 entries, the first being the initial
// temperature. Unlike TemperatureRise it applies no below-ambient
// guard; it reports whatever the integrator does.
func Trajectory(env Environment, c Conductor, initialTemperature, current, timeStep float64, steps int) []float64 {
	deriv := func(t float64) float64 {
		return heatRate(env, c, current, t)
	}

	path := make([]float64, 0, steps+1)
	path = append(path, initialTemperature)

	temperature := initialTemperature
	for i := 0; i < steps; i++ {
		temperature = EulerStep(temperature, timeStep, deriv)
		path = append(path, temperature)
	}

	return path
}

// TransientRating returns the largest constant current in amps that the
// conductor can carry for steps increments of timeStep seconds without
// its temperature rising from initialTemperature past maxTemperature.
// It inverts TemperatureRise over the bracket [0, 4096 A] to the given
// tolerance (A). A ceiling below the starting temperature returns 0.
func TransientRating(env Environment, c Conductor, initialTemperature, maxTemperature, timeStep float64, steps int, tolerance float64) float64 {
	if maxTemperature < initialTemperature {
		return 0.0
	}

	cfg := DefaultSolverConfig()
	cfg.Lo = 0.0
	cfg.Hi = currentBracketHi
	cfg.Tolerance = tolerance

	return SolveMonotone(func(current float64) float64 {
		return TemperatureRise(env, c, initialTemperature, current, timeStep, steps)
	}, maxTemperature-initialTemperature, cfg)
}
