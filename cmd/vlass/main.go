package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "vlass",
		Short: "VLASS survey planning and quick-look retrieval",
		Long: `vlass estimates the observing parameters of the VLA Sky Survey from a
handful of instrument constants: baselines, resolution, per-epoch
sensitivity, integration time, survey speed, scan rate and data rate.
It fits the low-declination time penalty and integrates the sky area to
give the total survey time.

The same binary looks up quick-look tiles and images in the NRAO archive.

Examples:
  vlass --fov 14.786 --decmin -40 --decmax 90 --nepoch 3
  vlass --config survey.yaml --json out/model.json --plot out/weight.png
  vlass tile 11:21:20 +76:30:00
  vlass fetch 11:21:20 +76:30:00 -o images/
  vlass serve --addr :8080`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl := slog.LevelInfo
			if verbose {
				lvl = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModel(cmd, modelOpts)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./vlass.{yaml,toml,json} if present)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addSurveyFlags(root.PersistentFlags())
	addModelFlags(root)

	root.AddCommand(
		newTileCmd(),
		newFetchCmd(),
		newBatchCmd(),
		newRegionCmd(),
		newLightCurveCmd(),
		newServeCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
