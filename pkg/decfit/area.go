package decfit

import (
	"fmt"
	"math"
)

// Area is the sky area covered between two declinations, in deg².
type Area struct {
	Nominal   float64 `json:"nominal_deg2" yaml:"nominal_deg2"`
	Effective float64 `json:"effective_deg2" yaml:"effective_deg2"`

	// Scaling is Effective/Nominal, the survey time multiplier.
	Scaling float64 `json:"scaling" yaml:"scaling"`
}

// StripArea is the area in deg² of the 1° band at dec.
func StripArea(dec int) float64 {
	return math.Abs(math.Cos(radians(float64(dec))) * degrees(2*math.Pi))
}

// Integrate sums the nominal and weighted areas over [decmin, decmax).
// weight multiplies the area of every strip; nil means unweighted.
func Integrate(decmin, decmax int, weight func(dec float64) float64) Area {
	var nominal, effective float64
	for _, start := range []int{decmin, decmin + 1} {
		for dec := start; dec < decmax; dec++ {
			a := StripArea(dec)
			nominal += a
			if weight != nil {
				a *= weight(float64(dec))
			}
			effective += a
		}
	}
	ar := Area{Nominal: nominal / 2, Effective: effective / 2}
	if ar.Nominal > 0 {
		ar.Scaling = ar.Effective / ar.Nominal
	}
	return ar
}

// Weighting fits Table with ref = decmin and integrates the survey area.
// On fit failure the returned Area is still the unweighted one, so callers
// can keep the nominal figures.
func Weighting(decmin, decmax int) (Fit, Area, error) {
	if decmin >= decmax {
		return Fit{}, Area{}, fmt.Errorf("%w: decmin %d >= decmax %d", ErrDegenerate, decmin, decmax)
	}
	f, err := FitPowerLaw(Table, float64(decmin))
	if err != nil {
		return Fit{}, Integrate(decmin, decmax, nil), err
	}
	return f, Integrate(decmin, decmax, f.Weight), nil
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
