package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/caseyjlaw/vlass/pkg/plotting"
)

func newLightCurveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lightcurve OUT",
		Short: "Plot the FIRST/NVSS/VLASS light curve of a fading source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := plotting.LightCurve(plotting.DefaultLightCurve, args[0]); err != nil {
				return err
			}
			slog.Info("wrote plot", "path", args[0])
			return nil
		},
	}
}
