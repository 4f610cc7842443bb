package survey

// Config holds instrument and survey constants.
// Units:
//   - Freq, EffBW: Hz
//   - BMax: meters
//   - SEFD, FullSens: Jy (FullSens is Jy/beam over the full survey)
//   - FOV, RowSep: arcmin (FOV is the primary beam FWHM)
//   - DecMin/DecMax: degrees, integer strips
//   - TDump: seconds
//   - DRLimit: MB/s
//   - Overhead/FailureRate: multiplicative factors on total time
type Config struct {
	Freq        float64 `json:"freq" yaml:"freq" mapstructure:"freq" form:"freq"`
	BMax        float64 `json:"bmax" yaml:"bmax" mapstructure:"bmax" form:"bmax"`
	SEFD        float64 `json:"sefd" yaml:"sefd" mapstructure:"sefd" form:"sefd"`
	Eta         float64 `json:"eta" yaml:"eta" mapstructure:"eta" form:"eta"`
	NAnt        int     `json:"nant" yaml:"nant" mapstructure:"nant" form:"nant"`
	FOV         float64 `json:"fov" yaml:"fov" mapstructure:"fov" form:"fov"`
	DecMin      int     `json:"decmin" yaml:"decmin" mapstructure:"decmin" form:"decmin"`
	DecMax      int     `json:"decmax" yaml:"decmax" mapstructure:"decmax" form:"decmax"`
	Overhead    float64 `json:"overhead" yaml:"overhead" mapstructure:"overhead" form:"overhead"`
	FailureRate float64 `json:"failurerate" yaml:"failurerate" mapstructure:"failurerate" form:"failurerate"`
	FullSens    float64 `json:"fullsens" yaml:"fullsens" mapstructure:"fullsens" form:"fullsens"`
	NEpoch      int     `json:"nepoch" yaml:"nepoch" mapstructure:"nepoch" form:"nepoch"`
	EffBW       float64 `json:"effbw" yaml:"effbw" mapstructure:"effbw" form:"effbw"`
	NChan       int     `json:"nchan" yaml:"nchan" mapstructure:"nchan" form:"nchan"`
	NProd       int     `json:"nprod" yaml:"nprod" mapstructure:"nprod" form:"nprod"`
	RowSep      float64 `json:"rowsep" yaml:"rowsep" mapstructure:"rowsep" form:"rowsep"`
	TDump       float64 `json:"tdump" yaml:"tdump" mapstructure:"tdump" form:"tdump"`
	DRLimit     float64 `json:"drlimit" yaml:"drlimit" mapstructure:"drlimit" form:"drlimit"`
}

// DefaultConfig returns the B-configuration S-band survey setup.
func DefaultConfig() Config {
	return Config{
		Freq:        3.0e9,  // band center
		BMax:        11.1e3, // longest B-config baseline
		SEFD:        350,    // band average
		Eta:         0.92,   // correlator efficiency
		NAnt:        26,
		FOV:         14.786,
		DecMin:      -40,
		DecMax:      90,
		Overhead:    1.19,
		FailureRate: 1.0,
		FullSens:    69e-6,
		NEpoch:      3,
		EffBW:       1.5e9, // RFI-free
		NChan:       1024,  // 16 spw x 64 channels
		NProd:       4,     // full polarization
		RowSep:      7.2,
		TDump:       0.45,
		DRLimit:     25,
	}
}

// Derived holds the observational parameters computed from a Config.
type Derived struct {
	Baselines       int     `json:"baselines" yaml:"baselines"`
	Resolution      float64 `json:"resolution_arcsec" yaml:"resolution_arcsec"`
	Sensitivity     float64 `json:"sensitivity_jy" yaml:"sensitivity_jy"`
	IntegrationTime float64 `json:"integration_time_s" yaml:"integration_time_s"`
	SurveySpeed     float64 `json:"survey_speed_deg2_hr" yaml:"survey_speed_deg2_hr"`
	ScanRate        float64 `json:"scan_rate_arcmin_s" yaml:"scan_rate_arcmin_s"`
	DataRate        float64 `json:"data_rate_mb_s" yaml:"data_rate_mb_s"`
	MinDumpTime     float64 `json:"min_dump_time_s" yaml:"min_dump_time_s"`
	BeamFraction    float64 `json:"beam_fraction" yaml:"beam_fraction"` // fraction of FOV slewed per min dump
}

// Estimate is the total time on sky in hours.
type Estimate struct {
	TotalHours   float64 `json:"total_hours" yaml:"total_hours"`     // with low-dec Tsys penalty
	UniformHours float64 `json:"uniform_hours" yaml:"uniform_hours"` // uniform survey speed
}
