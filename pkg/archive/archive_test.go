package archive

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caseyjlaw/vlass/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tileList = `<pre>
name    decmin decmax ramin ramax epoch    date
T20t18  70.2   79.2   10.5  12.0  VLASS1.1 2017-10-01 imaged
T20t18  70.2   79.2   10.5  12.0  VLASS1.2 2019-06-01 imaged
T01t01 -40.0  -36.0   0.0   0.5   VLASS1.1 2017-09-10 imaged
T02t02 -36.0  -32.0   0.0   0.5   VLASS1.1 2017-09-11 observed
</pre>
`

const (
	tileDir  = "VLASS1.1.ql.T20t18.J112120+763000.10.2048.v1"
	otherDir = "VLASS1.1.ql.T20t18.J105000+753000.10.2048.v1"
	fitsName = tileDir + ".I.iter1.image.pbcor.tt0.subim.fits"
)

var fitsBody = bytes.Repeat([]byte("SIMPLE  =                    T"), 100)

func newArchive(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/VLASS_dyn_summary.php":
			_, _ = w.Write([]byte(tileList))
		case "/quicklook/VLASS1.1/T20t18/":
			_, _ = w.Write([]byte(`<a href="?C=N;O=D">Name</a>
<a href="` + otherDir + `/">` + otherDir + `/</a>
<a href="` + tileDir + `/">` + tileDir + `/</a>
`))
		case "/quicklook/VLASS1.1/T20t18/" + tileDir + "/":
			_, _ = w.Write([]byte(`<a href="` + tileDir + `.I.iter1.image.pbcor.tt0.rms.subim.fits">rms</a>
<a href="` + fitsName + `">image</a>
`))
		case "/quicklook/VLASS1.1/T20t18/" + tileDir + "/" + fitsName:
			_, _ = w.Write(fitsBody)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testClient(srv *httptest.Server) *Client {
	c := NewClient()
	c.BaseURL = srv.URL
	c.HTTP = srv.Client()
	return c
}

func mustCoord(t *testing.T, ra, dec string) types.Coord {
	t.Helper()
	c, err := types.ParseCoord(ra, dec)
	require.NoError(t, err)
	return c
}

func TestParseTileList(t *testing.T) {
	tiles, err := ParseTileList(strings.NewReader(tileList))
	require.NoError(t, err)
	require.Len(t, tiles, 3)

	assert.Equal(t, Tile{Name: "T20t18", DecMin: 70.2, DecMax: 79.2, RAMin: 10.5, RAMax: 12, Epoch: "VLASS1.1", Date: "2017-10-01"}, tiles[0])
	assert.Equal(t, "VLASS1.2", tiles[1].Epoch)
	assert.Equal(t, -40.0, tiles[2].DecMin)
}

func TestParseTileList_Errors(t *testing.T) {
	_, err := ParseTileList(strings.NewReader("T1 1 2 imaged\n"))
	assert.ErrorIs(t, err, ErrShortRow)

	_, err = ParseTileList(strings.NewReader("T1 a 2 3 4 VLASS1.1 2017 imaged\n"))
	assert.Error(t, err)
}

func TestCoverage(t *testing.T) {
	tiles, err := ParseTileList(strings.NewReader(tileList))
	require.NoError(t, err)

	c := mustCoord(t, "11:20:00", "+76:00:00")
	assert.Len(t, Coverage(tiles, c, ""), 2)
	assert.Len(t, Coverage(tiles, c, "VLASS1.2"), 1)

	name, err := TileName(tiles, c, "VLASS1.1")
	require.NoError(t, err)
	assert.Equal(t, "T20t18", name)

	_, err = TileName(tiles, c, "")
	assert.ErrorIs(t, err, ErrAmbiguousTile)

	_, err = TileName(tiles, mustCoord(t, "18:00:00", "+10:00:00"), "")
	assert.ErrorIs(t, err, ErrNoTile)

	// upper bounds are exclusive
	_, err = TileName(tiles, mustCoord(t, "00:30:00", "-38:00:00"), "")
	assert.ErrorIs(t, err, ErrNoTile)
	name, err = TileName(tiles, mustCoord(t, "00:00:00", "-40:00:00"), "")
	require.NoError(t, err)
	assert.Equal(t, "T01t01", name)
}

func TestHrefs(t *testing.T) {
	page := `<html><body><pre>
<IMG SRC="/icons/back.gif"> <A HREF="/vlass/quicklook/">Parent Directory</A>
<a href='` + tileDir + `/'>` + tileDir + `/</a> 2018-01-01 12:00 -
<a href="VLASS1.1.ql.T20t18.J105000&#43;753000.10.2048.v1/">other</a>
<a href="?C=M;O=A">Last modified</a><a class="x" href="` + otherDir + `.tar">tar</a>
</pre></body></html>`

	got, err := hrefs(strings.NewReader(page), "T20t18")
	require.NoError(t, err)
	assert.Equal(t, []string{
		tileDir + "/",
		"VLASS1.1.ql.T20t18.J105000+753000.10.2048.v1/",
		otherDir + ".tar",
	}, got)

	got, err = hrefs(strings.NewReader(page), "T20t18", ".v1/")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = hrefs(strings.NewReader(page))
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestImageCenter(t *testing.T) {
	c, err := ImageCenter(tileDir, "T20t18")
	require.NoError(t, err)
	assert.Equal(t, "11:21:20.00 +76:30:00.0", c.String())

	_, err = ImageCenter(tileDir, "T99t99")
	assert.Error(t, err)
	_, err = ImageCenter("VLASS1.1.ql.T20t18", "T20t18")
	assert.Error(t, err)
	_, err = ImageCenter("VLASS1.1.ql.T20t18.X1.v1", "T20t18")
	assert.Error(t, err)
}

func TestClosest(t *testing.T) {
	c := mustCoord(t, "11:20:00", "+76:00:00")
	name, sep, err := Closest(c, "T20t18", []string{otherDir, "junk", tileDir})
	require.NoError(t, err)
	assert.Equal(t, tileDir, name)
	assert.Less(t, sep.Degrees(), 1.0)

	_, _, err = Closest(c, "T20t18", []string{"junk"})
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestClient_Locate(t *testing.T) {
	srv := newArchive(t)
	c := testClient(srv)

	img, err := c.Locate(context.Background(), mustCoord(t, "11:20:00", "+76:00:00"))
	require.NoError(t, err)
	assert.Equal(t, "T20t18", img.Tile)
	assert.Equal(t, tileDir, img.Name)
	assert.Equal(t, srv.URL+"/quicklook/VLASS1.1/T20t18/"+tileDir+"/"+fitsName, img.URL)
	t.Logf("located %s offset %.3f deg", img.URL, img.Offset.Degrees())
}

func TestClient_TilesFilePreferred(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tiles.txt")
	require.NoError(t, os.WriteFile(p, []byte("T05t05 0 4 1 2 VLASS1.1 2018-01-01 imaged\n"), 0o644))

	c := NewClient()
	c.BaseURL = "http://127.0.0.1:0" // never contacted
	c.TilesFile = p

	tiles, err := c.Tiles(context.Background())
	require.NoError(t, err)
	require.Len(t, tiles, 1)
	assert.Equal(t, "T05t05", tiles[0].Name)

	// missing file falls back to the archive
	srv := newArchive(t)
	c = testClient(srv)
	c.TilesFile = filepath.Join(dir, "missing.txt")
	tiles, err = c.Tiles(context.Background())
	require.NoError(t, err)
	assert.Len(t, tiles, 3)
}

func TestClient_Fetch(t *testing.T) {
	srv := newArchive(t)
	c := testClient(srv)
	dir := t.TempDir()
	coord := mustCoord(t, "11:20:00", "+76:00:00")

	_, out, ok, err := c.Fetch(context.Background(), coord, dir)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, fitsName), out)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, fitsBody, got)

	// second fetch leaves the file alone
	_, _, ok, err = c.Fetch(context.Background(), coord, dir)
	require.NoError(t, err)
	assert.False(t, ok)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestClient_DownloadWithProgress(t *testing.T) {
	srv := newArchive(t)
	c := testClient(srv)
	var buf bytes.Buffer
	c.Progress = &buf

	out := filepath.Join(t.TempDir(), "img.fits")
	url := srv.URL + "/quicklook/VLASS1.1/T20t18/" + tileDir + "/" + fitsName
	ok, err := c.Download(context.Background(), url, out)
	require.NoError(t, err)
	assert.True(t, ok)

	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, int64(len(fitsBody)), fi.Size())
}

func TestClient_Status(t *testing.T) {
	srv := newArchive(t)
	c := testClient(srv)

	_, err := c.Download(context.Background(), srv.URL+"/nope", filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, ErrStatus)

	c.Epoch = "VLASS9.9"
	_, err = c.Locate(context.Background(), mustCoord(t, "11:20:00", "+76:00:00"))
	assert.ErrorIs(t, err, ErrNoTile)
}

func TestClient_Canceled(t *testing.T) {
	srv := newArchive(t)
	c := testClient(srv)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Tiles(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
