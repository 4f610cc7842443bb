package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"
)

// ErrBadAngle is returned for unparseable sexagesimal or decimal angles.
var ErrBadAngle = errors.New("types: bad angle")

// Angle is an angle in degrees.
type Angle float64

// Hours builds an Angle from hours of right ascension.
func Hours(h float64) Angle { return Angle(h * 15) }

func (a Angle) Degrees() float64 { return float64(a) }
func (a Angle) Hours() float64 { return float64(a) / 15 }
func (a Angle) Arcsec() float64 { return a.Unit().Sec() }

// Unit returns a as a unit.Angle.
func (a Angle) Unit() unit.Angle { return unit.AngleFromDeg(float64(a)) }

// RA returns a as a unit.RA.
func (a Angle) RA() unit.RA { return unit.RAFromDeg(float64(a)) }

// String formats a as decimal degrees.
func (a Angle) String() string { return strconv.FormatFloat(float64(a), 'f', 6, 64) + "°" }

// ParseHMS parses right ascension as "hh:mm:ss.s", "hh mm ss.s" or
// decimal hours.
func ParseHMS(s string) (Angle, error) {
	neg, h, m, sec, err := parseSexagesimal(s)
	if err != nil {
		return 0, err
	}
	v := unit.FromSexa(' ', h, m, sec)
	if neg || v >= 24 {
		return 0, fmt.Errorf("%w: right ascension %q out of [0,24)h", ErrBadAngle, s)
	}
	return Hours(v), nil
}

// ParseDMS parses declination as "±dd:mm:ss.s", "±dd mm ss.s" or decimal
// degrees. The sign applies to the whole angle, so "-00:30:00" is -0.5°.
func ParseDMS(s string) (Angle, error) {
	neg, d, m, sec, err := parseSexagesimal(s)
	if err != nil {
		return 0, err
	}
	sign := byte(' ')
	if neg {
		sign = '-'
	}
	v := unit.FromSexa(sign, d, m, sec)
	if v < -90 || v > 90 {
		return 0, fmt.Errorf("%w: declination %q out of [-90,90]", ErrBadAngle, s)
	}
	return Angle(v), nil
}

const (
	hmsDay  = 24 * 3600 * 100 // hundredths of a second of time
	dmsUnit = 10              // tenths of an arcsecond
)

// FormatHMS formats a as "hh:mm:ss.ss".
func FormatHMS(a Angle) string {
	cs := int64(math.Round(a.RA().Hour() * 3600 * 100))
	cs = (cs%hmsDay + hmsDay) % hmsDay
	return fmt.Sprintf("%02d:%02d:%05.2f", cs/360000, cs/6000%60, float64(cs%6000)/100)
}

// FormatDMS formats a as "±dd:mm:ss.s".
func FormatDMS(a Angle) string {
	ds := int64(math.Round(math.Abs(a.Arcsec()) * dmsUnit))
	sign := "+"
	if a < 0 && ds > 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d:%04.1f", sign, ds/36000, ds/600%60, float64(ds%600)/dmsUnit)
}

// parseSexagesimal splits s into sign, whole degrees (or hours), whole
// minutes and seconds. Only the last field may be fractional; a single
// decimal field comes back entirely as seconds.
func parseSexagesimal(s string) (neg bool, d, m int, sec float64, err error) {
	bad := func() (bool, int, int, float64, error) {
		return false, 0, 0, 0, fmt.Errorf("%w: %q", ErrBadAngle, s)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return false, 0, 0, 0, fmt.Errorf("%w: empty", ErrBadAngle)
	}
	body := s
	switch body[0] {
	case '-':
		neg, body = true, body[1:]
	case '+':
		body = body[1:]
	}
	parts := strings.FieldsFunc(body, func(r rune) bool { return r == ':' || r == ' ' || r == '\t' })
	if len(parts) == 0 || len(parts) > 3 {
		return bad()
	}
	fs := make([]float64, len(parts))
	for i, p := range parts {
		f, perr := strconv.ParseFloat(p, 64)
		if perr != nil || f < 0 || math.IsInf(f, 0) {
			return bad()
		}
		if i > 0 && f >= 60 {
			return false, 0, 0, 0, fmt.Errorf("%w: %q: field %d >= 60", ErrBadAngle, s, i)
		}
		if i < len(parts)-1 && f != math.Trunc(f) {
			return bad()
		}
		fs[i] = f
	}

	switch len(fs) {
	case 1:
		sec = fs[0] * 3600
	case 2:
		d = int(fs[0])
		m = int(fs[1])
		sec = (fs[1] - math.Trunc(fs[1])) * 60
	default:
		d, m, sec = int(fs[0]), int(fs[1]), fs[2]
	}
	return neg, d, m, sec, nil
}
