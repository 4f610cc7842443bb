package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/caseyjlaw/vlass/pkg/archive"
	"github.com/caseyjlaw/vlass/pkg/catalog"
	"github.com/caseyjlaw/vlass/pkg/types"
)

type archiveOpts struct {
	baseURL   string
	epoch     string
	tilesFile string
	outDir    string
	progress  bool
}

func (a *archiveOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.baseURL, "archive", archive.DefaultBaseURL, "archive base URL")
	cmd.Flags().StringVar(&a.epoch, "epoch", archive.DefaultEpoch, "quick-look epoch")
	cmd.Flags().StringVar(&a.tilesFile, "tiles", "", "local tile list, used instead of the archive when present")
}

func (a *archiveOpts) client() *archive.Client {
	c := archive.NewClient()
	c.BaseURL = a.baseURL
	c.Epoch = a.epoch
	c.TilesFile = a.tilesFile
	if a.progress {
		c.Progress = os.Stderr
	}
	return c
}

func newTileCmd() *cobra.Command {
	var a archiveOpts
	var all bool
	cmd := &cobra.Command{
		Use:   "tile RA DEC",
		Short: "List the survey tiles covering a position (RA in hours, Dec in degrees)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := types.ParseCoord(args[0], args[1])
			if err != nil {
				return err
			}
			tiles, err := a.client().Tiles(cmd.Context())
			if err != nil {
				return err
			}
			epoch := a.epoch
			if all {
				epoch = ""
			}
			cov := archive.Coverage(tiles, coord, epoch)
			if len(cov) == 0 {
				return fmt.Errorf("%w: %s", archive.ErrNoTile, coord)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDEC\tRA (h)\tEPOCH\tDATE")
			for _, t := range cov {
				fmt.Fprintf(tw, "%s\t%g..%g\t%g..%g\t%s\t%s\n", t.Name, t.DecMin, t.DecMax, t.RAMin, t.RAMax, t.Epoch, t.Date)
			}
			return tw.Flush()
		},
	}
	a.register(cmd)
	cmd.Flags().BoolVar(&all, "all-epochs", false, "list tiles from every epoch")
	return cmd
}

func newFetchCmd() *cobra.Command {
	var a archiveOpts
	var dry bool
	cmd := &cobra.Command{
		Use:   "fetch RA DEC",
		Short: "Download the quick-look image nearest to a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := types.ParseCoord(args[0], args[1])
			if err != nil {
				return err
			}
			c := a.client()
			if dry {
				img, err := c.Locate(cmd.Context(), coord)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), img.URL)
				return nil
			}
			if err := os.MkdirAll(a.outDir, 0o755); err != nil {
				return err
			}
			img, out, ok, err := c.Fetch(cmd.Context(), coord, a.outDir)
			if err != nil {
				return err
			}
			slog.Info("found image", "tile", img.Tile, "name", img.Name, "offset_arcsec", img.Offset.Arcsec())
			if !ok {
				slog.Info("already downloaded", "path", out)
			} else if fi, err := os.Stat(out); err == nil {
				slog.Info("downloaded", "path", out, "size", types.Bytes(fi.Size()).Humanized())
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	a.register(cmd)
	cmd.Flags().StringVarP(&a.outDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&a.progress, "progress", true, "show a download progress bar")
	cmd.Flags().BoolVar(&dry, "url-only", false, "print the image URL without downloading")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var a archiveOpts
	cmd := &cobra.Command{
		Use:   "batch TABLE",
		Short: "Download images for every source of a whitespace table (ra0 ra1 ra2 dec0 dec1 dec2 ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := readCatalog(args[0])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(a.outDir, 0o755); err != nil {
				return err
			}

			c := a.client()
			var failed int
			for i, s := range sources {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				coord, _ := s.Coord() // validated by ReadTable
				_, out, _, err := c.Fetch(cmd.Context(), coord, a.outDir)
				if err != nil {
					failed++
					slog.Warn("skipping source", "row", i+1, "coord", coord.String(), "err", err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			slog.Info("batch done", "sources", len(sources), "failed", failed)
			if failed == len(sources) && failed > 0 {
				return fmt.Errorf("batch: all %d sources failed", failed)
			}
			return nil
		},
	}
	a.register(cmd)
	cmd.Flags().StringVarP(&a.outDir, "out", "o", ".", "output directory")
	return cmd
}

func readCatalog(path string) ([]catalog.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return catalog.ReadTable(f)
}
