package catalog

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const table = `# ra0 ra1 ra2 dec0 dec1 dec2 Sf eSf L z offset
11 21 20.1  76 30 00.5  21.1 0.5 1e30 0.05 0.3
02 05 09.7 -00 40 12.0  18.5 0.4 -    0.11 1.2  # trailing comment

`

func TestReadTable(t *testing.T) {
	src, err := ReadTable(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, src, 2)

	assert.Equal(t, [3]string{"11", "21", "20.1"}, src[0].RA)
	assert.InDelta(t, 21.1, src[0].Flux, 1e-12)
	assert.True(t, math.IsNaN(src[1].Lum))

	c, err := src[1].Coord()
	require.NoError(t, err)
	assert.Less(t, c.Dec.Degrees(), 0.0, "sign of -00 must survive")
	assert.InDelta(t, -(40.0/60 + 12.0/3600), c.Dec.Degrees(), 1e-9)
}

func TestReadTable_Errors(t *testing.T) {
	_, err := ReadTable(strings.NewReader("1 2 3\n"))
	assert.ErrorIs(t, err, ErrColumns)

	_, err = ReadTable(strings.NewReader("11 21 20 76 30 00 x 0.5 1 0.05 0.3\n"))
	assert.Error(t, err)

	_, err = ReadTable(strings.NewReader("25 00 00 76 30 00 1 0.5 1 0.05 0.3\n"))
	assert.Error(t, err)
}

func TestWriteRegions(t *testing.T) {
	src, err := ReadTable(strings.NewReader(table))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRegions(&buf, src, 30))
	assert.Equal(t, "circle(11:21:20.1,76:30:00.5,30\")\n"+
		"circle(2:5:09.7,-0:40:12.0,30\")\n", buf.String())
}
