// Command linerate computes steady-state and transient IEEE 738
// ratings for a conductor/weather parameter set given on the command
// line. Defaults describe a Drake-class conductor on an east-west line
// at 30° N under a clear June sky.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexshd/linerate"
	"github.com/lmittmann/tint"
	"github.com/xuri/excelize/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	var (
		ambient    = flag.Float64("ambient", 40.0, "ambient temperature (°C)")
		windSpeed  = flag.Float64("wind-speed", 2.0, "wind speed (ft/s)")
		windAngle  = flag.Float64("wind-angle", 90.0, "angle between wind and conductor axis (degrees)")
		solar      = flag.Float64("solar", -1.0, "solar irradiance (W/ft²); negative computes it from date/time/location")
		month      = flag.Int("month", 6, "month, 1 to 12")
		day        = flag.Int("day", 10, "day of month")
		hour       = flag.Float64("hour", 11.0, "hour of day, 0 to 23")
		latitude   = flag.Float64("latitude", 30.0, "latitude (decimal degrees)")
		azimuth    = flag.Float64("azimuth", 90.0, "line azimuth (degrees; 90 for east-west)")
		elevation  = flag.Float64("elevation", 0.0, "conductor elevation above sea level (ft)")
		industrial = flag.Bool("industrial", false, "industrial atmosphere instead of clear")

		diameter     = flag.Float64("diameter", 0.092333333, "conductor outer diameter (ft)")
		absorptivity = flag.Float64("absorptivity", 0.8, "solar absorptivity, 0 to 1")
		emissivity   = flag.Float64("emissivity", 0.8, "emissivity, 0 to 1")
		tLow         = flag.Float64("t-low", 25.0, "low resistance reference temperature (°C)")
		tHigh        = flag.Float64("t-high", 75.0, "high resistance reference temperature (°C)")
		rLow         = flag.Float64("r-low", 2.20833e-5, "resistance at t-low (Ω/ft)")
		rHigh        = flag.Float64("r-high", 2.63258e-5, "resistance at t-high (Ω/ft)")
		heatCap      = flag.Float64("heat-capacity", 305.6328, "heat capacity per unit length (J/(ft·°C))")

		mot       = flag.Float64("mot", 100.0, "maximum operating temperature (°C)")
		tolerance = flag.Float64("tolerance", 0.01, "solver tolerance (A or °C)")
		current   = flag.Float64("current", 2000.0, "current for the transient step (A)")
		timeStep  = flag.Float64("time-step", 60.0, "transient time step (s)")
		steps     = flag.Int("steps", 31, "transient step count")
		maxTemp   = flag.Float64("max-temperature", 254.3, "transient temperature ceiling (°C)")

		plotPath = flag.String("plot", "", "write the transient trajectory as a PNG to this path")
		xlsxPath = flag.String("xlsx", "", "write a rating-vs-temperature workbook to this path")
	)
	flag.Parse()

	env := linerate.Environment{
		AmbientTemperature: *ambient,
		WindSpeed:          *windSpeed,
		WindAngle:          *windAngle,
		SolarRadiation:     *solar,
		Month:              *month,
		DayOfMonth:         *day,
		HourOfDay:          *hour,
		Latitude:           *latitude,
		LineAzimuth:        *azimuth,
		Elevation:          *elevation,
		AtmosphereClear:    !*industrial,
	}

	cond := linerate.Conductor{
		Diameter:     *diameter,
		Absorptivity: *absorptivity,
		Emissivity:   *emissivity,
		TLow:         *tLow,
		THigh:        *tHigh,
		RLow:         *rLow,
		RHigh:        *rHigh,
		HeatCapacity: *heatCap,
	}

	rating := linerate.Rating(env, cond, *mot)
	slog.Info("steady-state rating", "amps", rating, "mot_c", *mot)

	temp := linerate.Temperature(env, cond, rating, *tolerance)
	slog.Info("temperature at that rating", "celsius", temp)

	rise := linerate.TemperatureRise(env, cond, *mot, *current, *timeStep, 1)
	slog.Info("single-step temperature rise", "celsius", rise, "amps", *current, "seconds", *timeStep)

	transient := linerate.TransientRating(env, cond, *mot, *maxTemp, *timeStep, *steps, *tolerance)
	slog.Info("transient rating", "amps", transient, "ceiling_c", *maxTemp, "window_s", float64(*steps)*(*timeStep))

	if *plotPath != "" {
		if err := writeTrajectoryPlot(*plotPath, env, cond, *mot, *current, *timeStep, *steps); err != nil {
			slog.Error("trajectory plot failed", "err", err)
			os.Exit(1)
		}
		slog.Info("trajectory plot written", "path", *plotPath)
	}

	if *xlsxPath != "" {
		if err := writeRatingTable(*xlsxPath, env, cond, *mot); err != nil {
			slog.Error("rating table failed", "err", err)
			os.Exit(1)
		}
		slog.Info("rating table written", "path", *xlsxPath)
	}
}

// writeTrajectoryPlot renders the explicit-Euler temperature path at
// the given current as a PNG.
func writeTrajectoryPlot(path string, env linerate.Environment, cond linerate.Conductor, initial, current, timeStep float64, steps int) error {
	traj := linerate.Trajectory(env, cond, initial, current, timeStep, steps)

	pts := make(plotter.XYs, len(traj))
	for i, temp := range traj {
		pts[i].X = float64(i) * timeStep
		pts[i].Y = temp
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("trajectory line: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Conductor temperature at %.0f A", current)
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "temperature (°C)"
	p.Add(plotter.NewGrid(), line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// writeRatingTable exports steady ratings at 5 °C increments from just
// above ambient up to the maximum operating temperature.
func writeRatingTable(path string, env linerate.Environment, cond linerate.Conductor, mot float64) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetCellValue(sheet, "A1", "Conductor temperature (°C)"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B1", "Rating (A)"); err != nil {
		return err
	}

	row := 2
	for temp := env.AmbientTemperature + 5.0; temp <= mot; temp += 5.0 {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), temp); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), linerate.Rating(env, cond, temp)); err != nil {
			return err
		}
		row++
	}

	return f.SaveAs(path)
}
