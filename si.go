package linerate

import "math"

// SI-unit formulation of the same heat-balance terms: meters, m/s,
// W/m, Ω/m. The solvers don't care which family they are composed
// with, but a single call must stay within one family.

// Material holds thermal properties of a conductor material.
type Material struct {
	Name             string
	Conductivity     float64 // W/(cm·°C)
	SpecificHeat     float64 // J/(kg·°C)
	ThermalExpansion float64 // 1/°C
}

// Materials lists the common conductor core and strand materials.
var Materials = []Material{
	{Name: "steel", Conductivity: 0.5119, SpecificHeat: 481.0, ThermalExpansion: 1.00e-4},
	{Name: "aluminum", Conductivity: 1.116, SpecificHeat: 897.0, ThermalExpansion: 3.80e-4},
}

// ConvectiveLossSI returns the convective heat loss Q_c in W/m, the
// metric counterpart of ConvectiveLoss.
func ConvectiveLossSI(env Environment, c Conductor, conductorTemperature float64) float64 {
	windAngleRad := limitWindAngle(env.WindAngle) * degToRad

	tfilm := (conductorTemperature + env.AmbientTemperature) / 2.0

	// Equation 13a: absolute viscosity of air (kg/m·s).
	uf := 1.458e-6 * math.Pow(tfilm+273.0, 1.5) / (tfilm + 383.4)

	// Equation 14a: air density (kg/m³).
	pf := (1.293 - 1.525e-4*env.Elevation + 6.379e-9*env.Elevation*env.Elevation) /
		(1.0 + 0.00367*tfilm)

	kangle := 1.194 - math.Cos(windAngleRad) +
		0.194*math.Cos(2.0*windAngleRad) +
		0.368*math.Sin(2.0*windAngleRad)

	nre := c.Diameter * pf * env.WindSpeed / uf

	// Equation 15a: thermal conductivity of air.
	kf := 2.424e-2 + 7.477e-5*tfilm - 4.407e-9*tfilm*tfilm

	rise := conductorTemperature - env.AmbientTemperature

	qc0 := 3.645 * math.Sqrt(pf) * math.Pow(c.Diameter, 0.75) * math.Pow(rise, 1.25)
	qc1 := kangle * (1.01 + 1.35*math.Pow(nre, 0.52)) * kf * rise
	qc2 := kangle * 0.754 * math.Pow(nre, 0.6) * kf * rise

	return math.Max(qc0, math.Max(qc1, qc2))
}

// RadiatedLossSI returns the radiated heat loss Q_r in W/m (equation 7a).
func RadiatedLossSI(env Environment, c Conductor, conductorTemperature float64) float64 {
	ts := (conductorTemperature + 273.0) / 100.0
	ta := (env.AmbientTemperature + 273.0) / 100.0
	return 17.8 * c.Diameter * c.Emissivity * (math.Pow(ts, 4) - math.Pow(ta, 4))
}

// SolarGainSI returns the solar heat gain Q_s in W/m for a measured
// irradiance in W/m². The metric formulation has no computed-sun path;
// negative irradiance is treated as no sun.
func SolarGainSI(env Environment, c Conductor) float64 {
	if env.SolarRadiation < 0.0 {
		return 0.0
	}
	return c.Absorptivity * env.SolarRadiation * c.Diameter
}

// RatingSI is Rating over the SI flux terms, with the same edge policy:
// zero below ambient, zero on negative net flux.
func RatingSI(env Environment, c Conductor, conductorTemperature float64) float64 {
	if conductorTemperature < env.AmbientTemperature {
		return 0.0
	}

	qc := ConvectiveLossSI(env, c, conductorTemperature)
	qr := RadiatedLossSI(env, c, conductorTemperature)
	qs := SolarGainSI(env, c)

	net := qc + qr - qs
	if net < 0.0 {
		return 0.0
	}

	return math.Sqrt(net / c.Resistance(conductorTemperature))
}
