package types

import "fmt"

// Bytes is a size in bytes, used for download accounting.
type Bytes int64

var byteUnits = []string{"KB", "MB", "GB", "TB"}

// Humanized returns b with a binary unit, e.g. "1.50 MB".
func (b Bytes) Humanized() string {
	if b < 1024 {
		return fmt.Sprintf("%d B", int64(b))
	}
	v := float64(b) / 1024
	u := 0
	for v >= 1024 && u < len(byteUnits)-1 {
		v /= 1024
		u++
	}
	return fmt.Sprintf("%.2f %s", v, byteUnits[u])
}
