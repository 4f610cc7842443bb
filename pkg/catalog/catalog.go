// Package catalog reads whitespace-separated source tables and writes
// DS9 region files for them.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/caseyjlaw/vlass/pkg/types"
)

// ErrColumns indicates a row with the wrong number of columns.
var ErrColumns = errors.New("catalog: wrong column count")

// Columns is the expected table layout.
var Columns = []string{"ra0", "ra1", "ra2", "dec0", "dec1", "dec2", "Sf", "eSf", "L", "z", "offset"}

// Source is one table row. Position fields keep the sexagesimal text as
// written so regions reproduce the table exactly.
type Source struct {
	RA     [3]string `json:"ra" yaml:"ra"`
	Dec    [3]string `json:"dec" yaml:"dec"`
	Flux   float64   `json:"sf" yaml:"sf"`
	FluxEr float64   `json:"esf" yaml:"esf"`
	Lum    float64   `json:"l" yaml:"l"`
	Z      float64   `json:"z" yaml:"z"`
	Offset float64   `json:"offset" yaml:"offset"`
}

// Coord converts the sexagesimal position.
func (s Source) Coord() (types.Coord, error) {
	return types.ParseCoord(strings.Join(s.RA[:], ":"), strings.Join(s.Dec[:], ":"))
}

// ReadTable parses r. Blank lines and text after '#' are ignored; missing
// numeric values may be written as "-" or "nan".
func ReadTable(r io.Reader) ([]Source, error) {
	var out []Source
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		if len(f) != len(Columns) {
			return nil, fmt.Errorf("%w: line %d has %d, want %d", ErrColumns, n, len(f), len(Columns))
		}
		var nums [5]float64
		for i := range nums {
			v, err := parseValue(f[6+i])
			if err != nil {
				return nil, fmt.Errorf("catalog: line %d column %s: %w", n, Columns[6+i], err)
			}
			nums[i] = v
		}
		s := Source{
			RA:     [3]string{f[0], f[1], f[2]},
			Dec:    [3]string{f[3], f[4], f[5]},
			Flux:   nums[0],
			FluxEr: nums[1],
			Lum:    nums[2],
			Z:      nums[3],
			Offset: nums[4],
		}
		if _, err := s.Coord(); err != nil {
			return nil, fmt.Errorf("catalog: line %d: %w", n, err)
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	return out, nil
}

func parseValue(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "-", "nan", "":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// WriteRegions appends one DS9 circle per source with the given radius.
func WriteRegions(w io.Writer, sources []Source, radiusArcsec float64) error {
	bw := bufio.NewWriter(w)
	for _, s := range sources {
		if _, err := fmt.Fprintf(bw, "circle(%s:%s:%s,%s:%s:%s,%g\")\n",
			trimInt(s.RA[0]), trimInt(s.RA[1]), s.RA[2],
			trimInt(s.Dec[0]), trimInt(s.Dec[1]), s.Dec[2], radiusArcsec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// trimInt renders integral fields without a fractional part ("05.0" -> "5").
func trimInt(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) {
		return s
	}
	if v == 0 && strings.HasPrefix(s, "-") {
		return "-0"
	}
	return strconv.Itoa(int(v))
}
