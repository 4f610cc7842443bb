package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/caseyjlaw/vlass/pkg/catalog"
)

func newRegionCmd() *cobra.Command {
	var (
		out    string
		radius float64
	)
	cmd := &cobra.Command{
		Use:   "region TABLE",
		Short: "Append a DS9 circle region for every source of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := readCatalog(args[0])
			if err != nil {
				return err
			}
			f, err := os.OpenFile(out, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return err
			}
			if err := catalog.WriteRegions(f, sources, radius); err != nil {
				_ = f.Close()
				return err
			}
			slog.Info("wrote regions", "path", out, "n", len(sources))
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "ds9.reg", "region file (appended)")
	cmd.Flags().Float64Var(&radius, "radius", 30, "circle radius (arcsec)")
	return cmd
}
