package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/caseyjlaw/vlass/pkg/decfit"
	"github.com/caseyjlaw/vlass/pkg/plotting"
	"github.com/caseyjlaw/vlass/pkg/report"
	"github.com/caseyjlaw/vlass/pkg/survey"
)

type opts struct {
	format string
	strict bool

	// outputs
	csvPath  string
	jsonPath string
	yamlPath string
	htmlPath string
	plotPath string
}

var modelOpts = &opts{}

func addModelFlags(cmd *cobra.Command) {
	o := modelOpts
	cmd.Flags().StringVarP(&o.format, "format", "f", "text", "stdout format: text, json, yaml, csv or html")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail when the declination weighting fit fails")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write the report to a CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json", "", "write the report to a JSON file")
	cmd.Flags().StringVar(&o.yamlPath, "yaml", "", "write the report to a YAML file")
	cmd.Flags().StringVar(&o.htmlPath, "html", "", "write the report to an HTML file")
	cmd.Flags().StringVar(&o.plotPath, "plot", "", "plot the declination weighting (png, svg or pdf)")
}

func runModel(cmd *cobra.Command, o *opts) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out, err := report.Lookup(o.format)
	if err != nil {
		return err
	}

	sum, err := report.Build(cfg)
	if err != nil {
		var pe *survey.ParamError
		if errors.As(err, &pe) {
			return fmt.Errorf("invalid --%s: %w", pe.Param, err)
		}
		return err
	}

	if ferr := sum.FitErr(); ferr != nil {
		switch {
		case errors.Is(ferr, decfit.ErrNoConvergence):
			slog.Warn("declination weighting fit did not converge; skipping fit-dependent outputs", "err", ferr)
		default:
			slog.Warn("declination weighting unavailable; skipping fit-dependent outputs", "err", ferr)
		}
		if o.strict {
			return ferr
		}
	}

	if o.format == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), _console, cfg.FOV, cfg.DecMin, cfg.DecMax, cfg.NAnt, cfg.NEpoch, cfg.FullSens*1e6)
	}
	if err := out(cmd.OutOrStdout(), sum); err != nil {
		return err
	}

	files := []struct {
		path   string
		writer report.Writer
	}{
		{o.csvPath, report.CSV},
		{o.jsonPath, report.JSON},
		{o.yamlPath, report.YAML},
		{o.htmlPath, report.HTML},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		if err := report.WriteFile(f.path, f.writer, sum); err != nil {
			return err
		}
		slog.Info("wrote report", "path", f.path)
	}

	if o.plotPath != "" {
		if !sum.Fitted() {
			slog.Warn("no weighting fit; skipping plot", "path", o.plotPath)
			return nil
		}
		if err := plotting.WeightCurve(*sum.Fit, decfit.Table, o.plotPath); err != nil {
			return err
		}
		slog.Info("wrote plot", "path", o.plotPath)
	}
	return nil
}

const _console = `VLASS survey model

       FOV: %.3f arcmin
       Dec: %d .. %d deg
       Antennas: %d
       Epochs: %d
       Full sensitivity: %.1f uJy/beam

`
