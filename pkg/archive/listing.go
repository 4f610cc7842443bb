package archive

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/caseyjlaw/vlass/pkg/types"
)

// hrefs returns the targets of the <a> links in an index page that contain
// every one of the given substrings.
func hrefs(r io.Reader, contains ...string) ([]string, error) {
	var out []string
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return out, err
			}
			return out, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, more := z.TagName()
			if string(name) != "a" {
				continue
			}
			for more {
				var key, val []byte
				key, val, more = z.TagAttr()
				if string(key) == "href" && containsAll(string(val), contains) {
					out = append(out, string(val))
				}
			}
		}
	}
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// ImageCenter extracts the pointing center from a quick-look image name,
// e.g. VLASS1.1.ql.T20t18.J112120+763000.10.2048.v1 -> 11:21:20 +76:30:00.
// The center is the first dot-separated token after the tile name.
func ImageCenter(name, tile string) (types.Coord, error) {
	i := strings.LastIndex(name, tile)
	if i < 0 {
		return types.Coord{}, fmt.Errorf("archive: %q does not contain tile %q", name, tile)
	}
	parts := strings.Split(name[i+len(tile):], ".")
	if len(parts) < 2 {
		return types.Coord{}, fmt.Errorf("archive: %q has no center token", name)
	}
	j := parts[1]
	if len(j) < 14 || j[0] != 'J' {
		return types.Coord{}, fmt.Errorf("archive: bad center token %q in %q", j, name)
	}
	ra := j[1:3] + ":" + j[3:5] + ":" + j[5:7]
	dec := j[7:10] + ":" + j[10:12] + ":" + j[12:14]
	return types.ParseCoord(ra, dec)
}

// Closest picks the image whose center is nearest to c. Names without a
// parseable center are ignored.
func Closest(c types.Coord, tile string, names []string) (string, types.Angle, error) {
	best, sep := "", types.Angle(360)
	for _, n := range names {
		center, err := ImageCenter(n, tile)
		if err != nil {
			continue
		}
		if s := c.Separation(center); s < sep {
			best, sep = n, s
		}
	}
	if best == "" {
		return "", 0, fmt.Errorf("%w: tile %s", ErrNoImage, tile)
	}
	return best, sep, nil
}
