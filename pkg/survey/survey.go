package survey

import (
	"math"
)

// SpeedOfLight in m/s.
const SpeedOfLight = 2.997925e8

// beamArea converts FWHM² (arcmin²) to integrated beam area.
const beamArea = 0.5665

// Data rate in MB/s at a 1 s dump for a 16384 channel-product correlator setup.
const (
	rateRef     = 45.0
	chanProdRef = 16384.0
)

// Validate checks that every parameter is in range. The first failing
// parameter is reported as a *ParamError.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"freq", c.Freq},
		{"bmax", c.BMax},
		{"sefd", c.SEFD},
		{"eta", c.Eta},
		{"fov", c.FOV},
		{"overhead", c.Overhead},
		{"failurerate", c.FailureRate},
		{"fullsens", c.FullSens},
		{"nepoch", float64(c.NEpoch)},
		{"effbw", c.EffBW},
		{"nchan", float64(c.NChan)},
		{"nprod", float64(c.NProd)},
		{"rowsep", c.RowSep},
		{"tdump", c.TDump},
		{"drlimit", c.DRLimit},
	}
	for _, p := range positive {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return &ParamError{Param: p.name, Value: p.v, Reason: "must be finite"}
		}
		if p.v <= 0 {
			return &ParamError{Param: p.name, Value: p.v, Reason: "must be > 0"}
		}
	}
	if c.Eta > 1 {
		return &ParamError{Param: "eta", Value: c.Eta, Reason: "must be <= 1"}
	}
	if c.NAnt < 2 {
		return &ParamError{Param: "nant", Value: c.NAnt, Reason: "need at least 2 antennas"}
	}
	if c.DecMin < -90 || c.DecMin > 90 {
		return &ParamError{Param: "decmin", Value: c.DecMin, Reason: "must be in [-90,90]"}
	}
	if c.DecMax < -90 || c.DecMax > 90 {
		return &ParamError{Param: "decmax", Value: c.DecMax, Reason: "must be in [-90,90]"}
	}
	if c.DecMin >= c.DecMax {
		return &ParamError{Param: "decmin", Value: c.DecMin, Reason: "must be < decmax"}
	}
	return nil
}

// Baselines returns the number of antenna pairs.
func Baselines(nant int) int { return nant * (nant - 1) / 2 }

// Resolution returns the synthesized beam in arcsec for freq in Hz and bmax in meters.
func Resolution(freq, bmax float64) float64 {
	return 3600 * degrees(SpeedOfLight/freq/bmax)
}

// IntegrationTime inverts the radiometer equation: the on-source time in
// seconds for nepoch epochs that each reach sens Jy.
func IntegrationTime(nepoch int, sefd, sens, eta float64, nbl int, effbw float64) float64 {
	r := sefd / (sens * eta)
	return float64(nepoch) * r * r / (2 * float64(nbl) * effbw * 2)
}

// SurveySpeed in deg²/hr for fov in arcmin and tint in seconds.
func SurveySpeed(fov, tint float64) float64 {
	return beamArea * fov * fov / tint
}

// DataRate in MB/s, excluding autocorrelations.
func DataRate(nchan, nprod int, tdump float64) float64 {
	return rateRef * (float64(nchan*nprod) / chanProdRef) / tdump
}

// MinDumpTime is the shortest dump time in seconds that stays below limit MB/s.
func MinDumpTime(nchan, nprod int, limit float64) float64 {
	return rateRef * (float64(nchan*nprod) / chanProdRef) / limit
}

// Compute validates cfg and derives the observational parameters.
func Compute(cfg Config) (Derived, error) {
	if err := cfg.Validate(); err != nil {
		return Derived{}, err
	}

	nbl := Baselines(cfg.NAnt)
	sens := math.Sqrt(float64(cfg.NEpoch)) * cfg.FullSens
	tint := IntegrationTime(cfg.NEpoch, cfg.SEFD, sens, cfg.Eta, nbl, cfg.EffBW)
	speed := SurveySpeed(cfg.FOV, tint)
	scan := speed / cfg.RowSep
	minDump := MinDumpTime(cfg.NChan, cfg.NProd, cfg.DRLimit)

	return Derived{
		Baselines:       nbl,
		Resolution:      Resolution(cfg.Freq, cfg.BMax),
		Sensitivity:     sens,
		IntegrationTime: tint,
		SurveySpeed:     speed,
		ScanRate:        scan,
		DataRate:        DataRate(cfg.NChan, cfg.NProd, cfg.TDump),
		MinDumpTime:     minDump,
		BeamFraction:    scan * minDump / cfg.FOV,
	}, nil
}

// EstimateTime returns the survey duration in hours for the nominal and
// Tsys-weighted sky areas (deg²).
func EstimateTime(cfg Config, d Derived, nominal, effective float64) Estimate {
	k := float64(cfg.NEpoch) * cfg.Overhead * cfg.FailureRate / d.SurveySpeed
	return Estimate{
		TotalHours:   k * effective,
		UniformHours: k * nominal,
	}
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
