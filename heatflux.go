package linerate

import "math"

const degToRad = math.Pi / 180.0

// Atmosphere condition coefficients for the total heat intensity
// polynomial (Table 3, US customary column).
var (
	atmosClear      = [7]float64{-3.9241, 5.9276, -1.7856e-1, 3.223e-3, -3.3549e-5, 1.8053e-7, -3.7868e-10}
	atmosIndustrial = [7]float64{4.9408, 1.3208, 6.1444e-2, -2.9411e-3, 5.07752e-5, -4.03627e-7, 1.22967e-9}
)

// ConvectiveLoss returns the convective heat loss Q_c in W/ft with the
// conductor surface at conductorTemperature. The standard evaluates
// natural convection and both forced-convection forms and keeps the
// largest (section 4.4.3).
func ConvectiveLoss(env Environment, c Conductor, conductorTemperature float64) float64 {
	windAngleRad := limitWindAngle(env.WindAngle) * degToRad

	// Equation 6: air film temperature.
	tfilm := (conductorTemperature + env.AmbientTemperature) / 2.0

	// Equation 13b: absolute viscosity of air (lb/ft·h).
	uf := 0.00353 * math.Pow(tfilm+273.15, 1.5) / (tfilm + 383.4)

	// Equation 14b: air density (lb/ft³).
	pf := (0.080695 - 2.901e-6*env.Elevation + 3.7e-11*env.Elevation*env.Elevation) /
		(1.0 + 0.00367*tfilm)

	// Equation 4a: wind direction factor.
	kangle := 1.194 - math.Cos(windAngleRad) +
		0.194*math.Cos(2.0*windAngleRad) +
		0.368*math.Sin(2.0*windAngleRad)

	// Equation 2c: Reynolds number. Viscosity is per hour, so the wind
	// speed converts to ft/h.
	nre := c.Diameter * pf * (env.WindSpeed * 3600.0) / uf

	// Equation 15b: thermal conductivity of air.
	kf := 7.388e-3 + 2.279e-5*tfilm - 1.343e-9*tfilm*tfilm

	rise := conductorTemperature - env.AmbientTemperature

	// Equations 5a/5b: natural convection.
	qc0 := 1.825 * math.Sqrt(pf) * math.Pow(c.Diameter, 0.75) * math.Pow(rise, 1.25)

	// Equations 3a/3b: forced convection, low- and high-Reynolds forms.
	qc1 := kangle * (1.01 + 1.35*math.Pow(nre, 0.52)) * kf * rise
	qc2 := kangle * 0.754 * math.Pow(nre, 0.6) * kf * rise

	return math.Max(qc0, math.Max(qc1, qc2))
}

// RadiatedLoss returns the radiated heat loss Q_r in W/ft (equation
// 7b). Negative below ambient: a cold conductor absorbs net radiation.
func RadiatedLoss(env Environment, c Conductor, conductorTemperature float64) float64 {
	ts := (conductorTemperature + 273.0) / 100.0
	ta := (env.AmbientTemperature + 273.0) / 100.0
	return 1.656 * c.Diameter * c.Emissivity * (math.Pow(ts, 4) - math.Pow(ta, 4))
}

// SolarGain returns the solar heat gain Q_s in W/ft. With a fixed
// non-negative irradiance the gain is just absorptivity × irradiance ×
// diameter; otherwise the sun's position is computed from the date,
// time of day, latitude, and line azimuth (equations 8, 9, and 16–20).
func SolarGain(env Environment, c Conductor) float64 {
	if env.SolarRadiation >= 0.0 {
		return c.Absorptivity * env.SolarRadiation * c.Diameter
	}

	n := float64(DayOfYear(env.Month, env.DayOfMonth))
	latRad := env.Latitude * degToRad

	// Hour angle relative to noon: 15° per hour, negative before noon.
	wDeg := (env.HourOfDay - 12.0) * 15.0
	wRad := wDeg * degToRad

	coef := atmosIndustrial
	if env.AtmosphereClear {
		coef = atmosClear
	}

	// Table H.5: solar heat multiplying factor for high altitude.
	mult := 1.0
	switch {
	case env.Elevation > 15000.0:
		mult = 1.3
	case env.Elevation > 10000.0:
		mult = 1.25
	case env.Elevation > 5000.0:
		mult = 1.15
	}

	// Equation 16b: solar declination. 23.4583° per Annex A.
	pRad := ((284.0 + n) / 365.0) * 360.0 * degToRad
	deltaRad := 23.4583 * math.Sin(pRad) * degToRad

	// Equation 16a: solar altitude.
	hcRad := math.Asin(math.Cos(latRad)*math.Cos(deltaRad)*math.Cos(wRad) +
		math.Sin(latRad)*math.Sin(deltaRad))
	hcDeg := hcRad / degToRad

	// Equation 18: total solar and sky radiated heat intensity.
	qs := coef[0] + coef[1]*hcDeg + coef[2]*math.Pow(hcDeg, 2) +
		coef[3]*math.Pow(hcDeg, 3) + coef[4]*math.Pow(hcDeg, 4) +
		coef[5]*math.Pow(hcDeg, 5) + coef[6]*math.Pow(hcDeg, 6)

	// Equation 20: solar altitude correction factor.
	ksolar := 1.0 + 3.5e-5*env.Elevation - 1.0e-9*env.Elevation*env.Elevation

	// Equation 8: intensity corrected for elevation. The polynomial goes
	// negative when the sun is down; the least heating is none.
	qse := math.Max(qs, 0.0) * mult * ksolar

	// Equation 17b: solar azimuth variable.
	x := math.Sin(wRad) /
		(math.Sin(latRad)*math.Cos(wRad) - math.Cos(latRad)*math.Tan(deltaRad))

	// Solar azimuth constant, by quadrant of the hour angle.
	var ccDeg float64
	if wDeg >= -180.0 && wDeg < 0.0 {
		if x >= 0.0 {
			ccDeg = 0.0
		} else {
			ccDeg = 180.0
		}
	} else {
		if x < 0.0 {
			ccDeg = 180.0
		} else {
			ccDeg = 360.0
		}
	}

	// Azimuth of the sun and of the line.
	zcRad := ccDeg*degToRad + math.Atan(x)
	zlRad := env.LineAzimuth * degToRad

	// Equation 9: effective angle of incidence of the sun's rays.
	theta := math.Acos(math.Cos(hcRad) * math.Cos(zcRad-zlRad))

	return c.Absorptivity * qse * math.Sin(theta) * c.Diameter
}
