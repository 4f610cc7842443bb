package archive

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/caseyjlaw/vlass/pkg/types"
)

// Tile is one row of the survey summary: a rectangle in RA (hours) and
// Dec (degrees) imaged in a given epoch.
type Tile struct {
	Name   string  `json:"name" yaml:"name"`
	DecMin float64 `json:"decmin" yaml:"decmin"`
	DecMax float64 `json:"decmax" yaml:"decmax"`
	RAMin  float64 `json:"ramin" yaml:"ramin"` // hours
	RAMax  float64 `json:"ramax" yaml:"ramax"` // hours
	Epoch  string  `json:"epoch" yaml:"epoch"`
	Date   string  `json:"date" yaml:"date"`
}

// Contains reports whether c lies in [RAMin,RAMax) x [DecMin,DecMax).
func (t Tile) Contains(c types.Coord) bool {
	ra, dec := c.RA.Hours(), c.Dec.Degrees()
	return ra >= t.RAMin && ra < t.RAMax && dec >= t.DecMin && dec < t.DecMax
}

// ParseTileList reads the summary table. Only rows marked "imaged" are
// kept; each has at least the fields
//
//	name decmin decmax ramin ramax epoch date
func ParseTileList(r io.Reader) ([]Tile, error) {
	var tiles []Tile
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if !strings.Contains(text, "imaged") {
			continue
		}
		f := strings.Fields(text)
		if len(f) < 7 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrShortRow, line, len(f))
		}
		var nums [4]float64
		for i := range nums {
			v, err := strconv.ParseFloat(f[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("archive: line %d field %d: %w", line, i+2, err)
			}
			nums[i] = v
		}
		tiles = append(tiles, Tile{
			Name:   f[0],
			DecMin: nums[0],
			DecMax: nums[1],
			RAMin:  nums[2],
			RAMax:  nums[3],
			Epoch:  f[5],
			Date:   f[6],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("archive: read tile list: %w", err)
	}
	return tiles, nil
}

// Coverage returns the tiles containing c. An empty epoch matches all epochs.
func Coverage(tiles []Tile, c types.Coord, epoch string) []Tile {
	var out []Tile
	for _, t := range tiles {
		if epoch != "" && t.Epoch != epoch {
			continue
		}
		if t.Contains(c) {
			out = append(out, t)
		}
	}
	return out
}

// TileName returns the single tile covering c.
func TileName(tiles []Tile, c types.Coord, epoch string) (string, error) {
	cov := Coverage(tiles, c, epoch)
	switch len(cov) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoTile, c)
	case 1:
		return cov[0].Name, nil
	default:
		names := make([]string, len(cov))
		for i, t := range cov {
			names[i] = t.Name + "/" + t.Epoch
		}
		return "", fmt.Errorf("%w: %s: %s", ErrAmbiguousTile, c, strings.Join(names, ", "))
	}
}
