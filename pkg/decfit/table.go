package decfit

// Point is a (declination, time multiplier) calibration pair.
type Point struct {
	Dec  float64 `json:"dec" yaml:"dec"`
	Mult float64 `json:"mult" yaml:"mult"`
}

// Table is the penalty for nearly uniform sensitivity at the middle of
// S band with a ±1.5 hr transit window, scaled as (uniform)^0.7.
var Table = []Point{
	{Dec: -40, Mult: 1.95},
	{Dec: -35, Mult: 1.48},
	{Dec: -30, Mult: 1.20},
	{Dec: -25, Mult: 1.14},
	{Dec: -20, Mult: 1.07},
}
