package report

import (
	"errors"

	"github.com/caseyjlaw/vlass/pkg/decfit"
	"github.com/caseyjlaw/vlass/pkg/survey"
)

// Sample is the fitted weight next to a calibration point.
type Sample struct {
	Dec   float64 `json:"dec" yaml:"dec"`
	Table float64 `json:"table" yaml:"table"`
	Fit   float64 `json:"fit" yaml:"fit"`
}

// Summary is everything one planning run produces.
type Summary struct {
	Config   survey.Config   `json:"config" yaml:"config"`
	Derived  survey.Derived  `json:"derived" yaml:"derived"`
	Fit      *decfit.Fit     `json:"fit,omitempty" yaml:"fit,omitempty"`
	Samples  []Sample        `json:"samples,omitempty" yaml:"samples,omitempty"`
	Area     decfit.Area     `json:"area" yaml:"area"`
	Estimate survey.Estimate `json:"estimate" yaml:"estimate"`

	// FitError is set when the declination weighting is unavailable;
	// Area.Effective and Estimate.TotalHours are zero then.
	FitError string `json:"fit_error,omitempty" yaml:"fit_error,omitempty"`

	fitErr error
}

// Build runs the calculator and the declination weighting for cfg.
// An invalid cfg is the only error; a failed fit is recorded in the
// summary and reported by FitErr.
func Build(cfg survey.Config) (Summary, error) {
	d, err := survey.Compute(cfg)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{Config: cfg, Derived: d}

	fit, area, err := decfit.Weighting(cfg.DecMin, cfg.DecMax)
	if err != nil {
		s.fitErr = err
		s.FitError = err.Error()
		s.Area = decfit.Area{Nominal: area.Nominal}
		s.Estimate = survey.EstimateTime(cfg, d, area.Nominal, 0)
		return s, nil
	}

	s.Fit = &fit
	s.Area = area
	s.Estimate = survey.EstimateTime(cfg, d, area.Nominal, area.Effective)
	for _, p := range decfit.Table {
		s.Samples = append(s.Samples, Sample{Dec: p.Dec, Table: p.Mult, Fit: fit.Eval(p.Dec)})
	}
	return s, nil
}

// FitErr returns the weighting failure, if any.
func (s Summary) FitErr() error {
	if s.fitErr == nil && s.FitError != "" {
		return errors.New(s.FitError)
	}
	return s.fitErr
}

// Fitted reports whether the fit-dependent figures are available.
func (s Summary) Fitted() bool { return s.Fit != nil }
