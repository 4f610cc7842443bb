package archive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosuri/uiprogress"

	"github.com/caseyjlaw/vlass/pkg/types"
)

const (
	// DefaultBaseURL is the NRAO VLASS archive.
	DefaultBaseURL = "https://archive-new.nrao.edu/vlass"
	// DefaultEpoch is the quick-look epoch searched for images.
	DefaultEpoch = "VLASS1.1"

	tileListPage = "VLASS_dyn_summary.php"
	imageSuffix  = "tt0.subim.fits"
)

// Client looks up and downloads quick-look images.
type Client struct {
	BaseURL string
	Epoch   string

	// TilesFile is a local copy of the tile list, used when it exists.
	TilesFile string
	HTTP      *http.Client

	// Progress receives a download progress bar; nil disables it.
	Progress io.Writer
}

// NewClient returns a Client for the public archive.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Epoch:   DefaultEpoch,
		HTTP:    &http.Client{Timeout: 5 * time.Minute},
	}
}

// Image is a located quick-look image.
type Image struct {
	Tile   string      `json:"tile" yaml:"tile"`
	Name   string      `json:"name" yaml:"name"`
	Offset types.Angle `json:"offset_deg" yaml:"offset_deg"`
	URL    string      `json:"url" yaml:"url"`
}

// Tiles loads the tile list from TilesFile or, failing that, the archive.
func (c *Client) Tiles(ctx context.Context) ([]Tile, error) {
	if c.TilesFile != "" {
		f, err := os.Open(c.TilesFile)
		if err == nil {
			defer f.Close()
			return ParseTileList(f)
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("archive: open tiles file: %w", err)
		}
	}
	body, err := c.get(ctx, c.BaseURL+"/"+tileListPage)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ParseTileList(body)
}

// TileName returns the tile covering coord in the client's epoch.
func (c *Client) TileName(ctx context.Context, coord types.Coord) (string, error) {
	tiles, err := c.Tiles(ctx)
	if err != nil {
		return "", err
	}
	return TileName(tiles, coord, c.Epoch)
}

// Filename finds the image directory nearest to coord in tile.
func (c *Client) Filename(ctx context.Context, coord types.Coord, tile string) (string, types.Angle, error) {
	links, err := c.links(ctx, c.tileURL(tile)+"/", tile)
	if err != nil {
		return "", 0, err
	}
	var names []string
	for _, h := range links {
		names = append(names, strings.TrimSuffix(h, "/"))
	}
	return Closest(coord, tile, names)
}

// Locate resolves coord to its tile, image directory and FITS URL.
func (c *Client) Locate(ctx context.Context, coord types.Coord) (Image, error) {
	tile, err := c.TileName(ctx, coord)
	if err != nil {
		return Image{}, err
	}
	name, sep, err := c.Filename(ctx, coord, tile)
	if err != nil {
		return Image{}, err
	}
	dir := c.tileURL(tile) + "/" + name
	files, err := c.links(ctx, dir+"/", name, imageSuffix)
	if err != nil {
		return Image{}, err
	}
	if len(files) == 0 {
		return Image{}, fmt.Errorf("%w: no %s in %s", ErrNoImage, imageSuffix, dir)
	}
	return Image{Tile: tile, Name: name, Offset: sep, URL: dir + "/" + files[0]}, nil
}

// Download saves url to out. An existing out is left untouched and
// reported with downloaded=false.
func (c *Client) Download(ctx context.Context, url, out string) (downloaded bool, err error) {
	if out == "" {
		out = path.Base(url)
	}
	if _, err := os.Stat(out); err == nil {
		return false, nil
	}

	body, size, err := c.open(ctx, url)
	if err != nil {
		return false, err
	}
	defer body.Close()

	tmp, err := os.CreateTemp(filepath.Dir(out), ".vlass-*")
	if err != nil {
		return false, fmt.Errorf("archive: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	var w io.Writer = tmp
	if c.Progress != nil && size > 0 {
		p := uiprogress.New()
		p.SetOut(c.Progress)
		bar := p.AddBar(int(size)).AppendCompleted().PrependElapsed()
		p.Start()
		defer p.Stop()
		w = &barWriter{w: tmp, bar: bar}
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("archive: download %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("archive: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return false, fmt.Errorf("archive: rename: %w", err)
	}
	return true, nil
}

// Fetch locates the image for coord and downloads it into dir.
func (c *Client) Fetch(ctx context.Context, coord types.Coord, dir string) (Image, string, bool, error) {
	img, err := c.Locate(ctx, coord)
	if err != nil {
		return Image{}, "", false, err
	}
	out := filepath.Join(dir, path.Base(img.URL))
	ok, err := c.Download(ctx, img.URL, out)
	return img, out, ok, err
}

func (c *Client) tileURL(tile string) string {
	return c.BaseURL + "/quicklook/" + c.Epoch + "/" + tile
}

func (c *Client) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) open(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("archive: request %s: %w", url, err)
	}
	resp, err := c.client().Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("archive: get %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("%w: %s: %s", ErrStatus, url, resp.Status)
	}
	return resp.Body, resp.ContentLength, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	body, _, err := c.open(ctx, url)
	return body, err
}

func (c *Client) links(ctx context.Context, url string, contains ...string) ([]string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	out, err := hrefs(body, contains...)
	if err != nil {
		return nil, fmt.Errorf("archive: read %s: %w", url, err)
	}
	return out, nil
}

type barWriter struct {
	w   io.Writer
	bar *uiprogress.Bar
	n   int
}

func (b *barWriter) Write(p []byte) (int, error) {
	n, err := b.w.Write(p)
	b.n += n
	_ = b.bar.Set(b.n)
	return n, err
}
