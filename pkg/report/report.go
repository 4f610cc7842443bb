package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Text writes the human-readable report.
func Text(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	c, d := s.Config, s.Derived

	fmt.Fprintf(tw, "Baselines:\t%d\n", d.Baselines)
	fmt.Fprintf(tw, "Resolution (asec):\t%.3f\n", d.Resolution)
	fmt.Fprintf(tw, "Sensitivity per epoch (Jy):\t%.3g\n", d.Sensitivity)
	fmt.Fprintf(tw, "Effective integration time (s):\t%.4f\n", d.IntegrationTime)
	fmt.Fprintf(tw, "Survey speed (deg2/hr):\t%.4f\n", d.SurveySpeed)
	fmt.Fprintf(tw, "Scan rate (arcmin/s):\t%.4f\n", d.ScanRate)
	fmt.Fprintf(tw, "Data rate (MB/s):\t%.3f\n", d.DataRate)
	fmt.Fprintf(tw, "Min dump time for %g MB/s limit (s):\t%.4f\n", c.DRLimit, d.MinDumpTime)
	fmt.Fprintf(tw, "Fraction of beam slewed per int:\t%.4f\n", d.BeamFraction)
	fmt.Fprintln(tw)

	if s.Fitted() {
		fmt.Fprintf(tw, "Extra time scaling at (negative) declination:\ta=%.4f alpha=%.4f\n", s.Fit.A, s.Fit.Alpha)
		for _, p := range s.Samples {
			fmt.Fprintf(tw, "  %+.0f:\t%.3f\t(table %.2f)\n", p.Dec, p.Fit, p.Table)
		}
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "For uniform sensitivity at all Dec:\n")
		fmt.Fprintf(tw, "  True area (deg2):\t%.0f\n", s.Area.Nominal)
		fmt.Fprintf(tw, "  Effective area (deg2):\t%.0f\n", s.Area.Effective)
		fmt.Fprintf(tw, "  Scaling in time:\t%.2f\n", s.Area.Scaling)
		fmt.Fprintf(tw, "Total time including Tsys factor for low dec (hr):\t%.0f\n", s.Estimate.TotalHours)
	} else {
		fmt.Fprintf(tw, "Declination weighting unavailable:\t%s\n", s.FitError)
		fmt.Fprintf(tw, "  True area (deg2):\t%.0f\n", s.Area.Nominal)
	}
	fmt.Fprintf(tw, "Total time for uniform survey speed (hr):\t%.0f\n", s.Estimate.UniformHours)

	return tw.Flush()
}

// JSON writes s as indented JSON.
func JSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// YAML writes s as a YAML document.
func YAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// CSV writes one quantity,value,unit row per figure.
func CSV(w io.Writer, s Summary) error {
	cw := csv.NewWriter(w)
	rows := [][]string{{"quantity", "value", "unit"}}
	add := func(name string, v float64, unit string) {
		rows = append(rows, []string{name, strconv.FormatFloat(v, 'g', 10, 64), unit})
	}
	d := s.Derived
	add("baselines", float64(d.Baselines), "")
	add("resolution", d.Resolution, "arcsec")
	add("sensitivity", d.Sensitivity, "Jy")
	add("integration_time", d.IntegrationTime, "s")
	add("survey_speed", d.SurveySpeed, "deg2/hr")
	add("scan_rate", d.ScanRate, "arcmin/s")
	add("data_rate", d.DataRate, "MB/s")
	add("min_dump_time", d.MinDumpTime, "s")
	add("beam_fraction", d.BeamFraction, "")
	add("nominal_area", s.Area.Nominal, "deg2")
	add("uniform_hours", s.Estimate.UniformHours, "hr")
	if s.Fitted() {
		add("fit_a", s.Fit.A, "")
		add("fit_alpha", s.Fit.Alpha, "")
		add("effective_area", s.Area.Effective, "deg2")
		add("scaling", s.Area.Scaling, "")
		add("total_hours", s.Estimate.TotalHours, "hr")
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// HTML writes a standalone HTML page.
func HTML(w io.Writer, s Summary) error {
	return tpl.Execute(w, s)
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>VLASS Survey Model</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;font-size:14px;margin-bottom:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
.warn{color:#a40}
</style>

<h1>VLASS Survey Model</h1>

<h2>Configuration</h2>
<table>
<tr><td>FOV (arcmin)</td><td>{{.Config.FOV}}</td></tr>
<tr><td>Declination</td><td>{{.Config.DecMin}} .. {{.Config.DecMax}}</td></tr>
<tr><td>Antennas</td><td>{{.Config.NAnt}}</td></tr>
<tr><td>Epochs</td><td>{{.Config.NEpoch}}</td></tr>
<tr><td>Full sensitivity (Jy)</td><td>{{.Config.FullSens}}</td></tr>
<tr><td>Effective BW (Hz)</td><td>{{.Config.EffBW}}</td></tr>
<tr><td>Channels x products</td><td>{{.Config.NChan}} x {{.Config.NProd}}</td></tr>
<tr><td>Overhead</td><td>{{.Config.Overhead}}</td></tr>
</table>

<h2>Derived</h2>
<table>
<tr><td>Baselines</td><td>{{.Derived.Baselines}}</td></tr>
<tr><td>Resolution (arcsec)</td><td>{{printf "%.3f" .Derived.Resolution}}</td></tr>
<tr><td>Integration time (s)</td><td>{{printf "%.4f" .Derived.IntegrationTime}}</td></tr>
<tr><td>Survey speed (deg²/hr)</td><td>{{printf "%.4f" .Derived.SurveySpeed}}</td></tr>
<tr><td>Scan rate (arcmin/s)</td><td>{{printf "%.4f" .Derived.ScanRate}}</td></tr>
<tr><td>Data rate (MB/s)</td><td>{{printf "%.3f" .Derived.DataRate}}</td></tr>
<tr><td>Min dump time (s)</td><td>{{printf "%.4f" .Derived.MinDumpTime}}</td></tr>
</table>

<h2>Sky area and time</h2>
{{if .Fit}}
<table>
<tr><th>dec</th><th>table</th><th>fit</th></tr>
{{range .Samples}}<tr><td>{{printf "%.0f" .Dec}}</td><td>{{printf "%.2f" .Table}}</td><td>{{printf "%.3f" .Fit}}</td></tr>
{{end}}</table>
<table>
<tr><td>a, alpha</td><td>{{printf "%.4f" .Fit.A}}, {{printf "%.4f" .Fit.Alpha}}</td></tr>
<tr><td>True area (deg²)</td><td>{{printf "%.0f" .Area.Nominal}}</td></tr>
<tr><td>Effective area (deg²)</td><td>{{printf "%.0f" .Area.Effective}}</td></tr>
<tr><td>Scaling</td><td>{{printf "%.3f" .Area.Scaling}}</td></tr>
<tr><td>Total time (hr)</td><td>{{printf "%.0f" .Estimate.TotalHours}}</td></tr>
<tr><td>Uniform-speed time (hr)</td><td>{{printf "%.0f" .Estimate.UniformHours}}</td></tr>
</table>
{{else}}
<p class="warn">Declination weighting unavailable: {{.FitError}}</p>
<table>
<tr><td>True area (deg²)</td><td>{{printf "%.0f" .Area.Nominal}}</td></tr>
<tr><td>Uniform-speed time (hr)</td><td>{{printf "%.0f" .Estimate.UniformHours}}</td></tr>
</table>
{{end}}
</html>`))
