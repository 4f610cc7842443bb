// Package plotting draws the declination weighting curve and source light
// curves. Output format follows the file extension (png, svg, pdf, eps).
package plotting

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/caseyjlaw/vlass/pkg/decfit"
)

// ErrNoPoints is returned when there is nothing to draw.
var ErrNoPoints = errors.New("plotting: no points")

const (
	width  = 6 * vg.Inch
	height = 4 * vg.Inch
)

// WeightCurve plots the fitted multiplier from f.Ref to the equator with
// the calibration points on top.
func WeightCurve(f decfit.Fit, table []decfit.Point, path string) error {
	if len(table) == 0 {
		return ErrNoPoints
	}
	p := plot.New()
	p.Title.Text = "Observing time penalty"
	p.X.Label.Text = "Declination (deg)"
	p.Y.Label.Text = "Time multiplier"

	const n = 100
	curve := make(plotter.XYs, n+1)
	for i := range curve {
		dec := f.Ref * (1 - float64(i)/n)
		curve[i].X = dec
		curve[i].Y = f.Eval(dec)
	}
	pts := make(plotter.XYs, len(table))
	for i, t := range table {
		pts[i].X, pts[i].Y = t.Dec, t.Mult
	}

	label := fmt.Sprintf("1 + %.3f (dec/%g)^%.3f", f.A, f.Ref, f.Alpha)
	if err := plotutil.AddLines(p, label, curve); err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	if err := plotutil.AddScatters(p, "table", pts); err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	p.Legend.Top = true
	return save(p, path)
}

// Measurement is one flux density of a source.
type Measurement struct {
	Survey string  `json:"survey" yaml:"survey"`
	Year   float64 `json:"year" yaml:"year"` // decimal year
	Flux   float64 `json:"flux_mjy" yaml:"flux_mjy"`
	Freq   float64 `json:"freq_ghz" yaml:"freq_ghz"`
}

// DefaultLightCurve is the FIRST / NVSS / VLASS history of a fading source.
var DefaultLightCurve = []Measurement{
	{Survey: "FIRST", Year: 1994.7, Flux: 21.1, Freq: 1.4},
	{Survey: "NVSS", Year: 1995.4, Flux: 18.5, Freq: 1.4},
	{Survey: "VLASS", Year: 2018.0, Flux: 0.1, Freq: 3.0},
}

// LightCurve plots flux against time on log-log axes.
func LightCurve(ms []Measurement, path string) error {
	if len(ms) == 0 {
		return ErrNoPoints
	}
	p := plot.New()
	p.Title.Text = "Light curve"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Flux density (mJy)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	var args []interface{}
	for _, m := range ms {
		if m.Year <= 0 || m.Flux <= 0 {
			return fmt.Errorf("plotting: %s: log axes need positive values (year=%v flux=%v)", m.Survey, m.Year, m.Flux)
		}
		args = append(args, fmt.Sprintf("%s %.1f GHz", m.Survey, m.Freq), plotter.XYs{{X: m.Year, Y: m.Flux}})
	}
	if err := plotutil.AddScatters(p, args...); err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	p.Legend.Top = true
	return save(p, path)
}

func save(p *plot.Plot, path string) error {
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}
	return nil
}
