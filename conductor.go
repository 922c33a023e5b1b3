package linerate

import "math"

// Conductor describes the physical and electrical properties of a bare
// overhead conductor. Resistance follows the standard's linear model
// between two reference points, so THigh must exceed TLow and RHigh
// must exceed RLow.
type Conductor struct {
	Diameter     float64 // D_0: outer diameter (ft)
	Absorptivity float64 // α: solar absorptivity, 0.0 to 1.0
	Emissivity   float64 // ε: emissivity, 0.0 to 1.0
	TLow         float64 // low reference temperature (°C)
	THigh        float64 // high reference temperature (°C)
	RLow         float64 // resistance at TLow (Ω/ft)
	RHigh        float64 // resistance at THigh (Ω/ft)
	HeatCapacity float64 // m·Cp: heat capacity per unit length (J/(ft·°C))
}

// Resistance interpolates the conductor resistance at the given surface
// temperature (equation 10). The line through the two reference points
// is extrapolated outside them.
func (c Conductor) Resistance(conductorTemperature float64) float64 {
	ohmsPerDegree := (c.RHigh - c.RLow) / (c.THigh - c.TLow)
	return ohmsPerDegree*(conductorTemperature-c.TLow) + c.RLow
}

// Environment describes the weather and geometry around the conductor.
// SolarRadiation < 0 means "compute solar gain from the date, time, and
// location fields"; a non-negative value is used directly and the
// date/time/location fields are ignored.
type Environment struct {
	AmbientTemperature float64 // T_a (°C)
	WindSpeed          float64 // V_w (ft/s)
	WindAngle          float64 // degrees between wind and conductor axis
	SolarRadiation     float64 // W/ft², or negative to compute
	Month              int     // 1 (January) to 12 (December)
	DayOfMonth         int     // 1 to 31
	HourOfDay          float64 // 0 to 23; 11:00 AM is 11
	Latitude           float64 // decimal degrees
	LineAzimuth        float64 // Z_l: 90 for an east-west line
	Elevation          float64 // H_e: height above sea level (ft)
	AtmosphereClear    bool    // clear (true) or industrial (false)
}

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DayOfYear converts a month and day-of-month to a day number, 1 to 365.
func DayOfYear(month, dayOfMonth int) int {
	n := dayOfMonth
	for m := 1; m < month; m++ {
		n += daysInMonth[m]
	}
	return n
}

// limitWindAngle reflects an arbitrary wind angle into [0°, 90°]. The
// convective correction only depends on the acute angle between the
// wind and the conductor axis.
func limitWindAngle(deg float64) float64 {
	return 90.0 - math.Abs(math.Mod(math.Abs(deg), 180.0)-90.0)
}
