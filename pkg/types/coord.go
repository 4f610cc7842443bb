package types

import (
	"fmt"

	"github.com/soniakeys/meeus/v3/angle"
)

// Coord is an equatorial (ICRS) position.
type Coord struct {
	RA  Angle `json:"ra" yaml:"ra"`
	Dec Angle `json:"dec" yaml:"dec"`
}

// ParseCoord parses a sexagesimal RA (hours) and Dec (degrees) pair.
func ParseCoord(ra, dec string) (Coord, error) {
	r, err := ParseHMS(ra)
	if err != nil {
		return Coord{}, err
	}
	d, err := ParseDMS(dec)
	if err != nil {
		return Coord{}, err
	}
	return Coord{RA: r, Dec: d}, nil
}

// Separation returns the great-circle distance to o. Pauwels' formula is
// stable near 0 and near 180°.
func (c Coord) Separation(o Coord) Angle {
	sep := angle.SepPauwels(c.RA.Unit(), c.Dec.Unit(), o.RA.Unit(), o.Dec.Unit())
	return Angle(sep.Deg())
}

func (c Coord) String() string {
	return fmt.Sprintf("%s %s", FormatHMS(c.RA), FormatDMS(c.Dec))
}
