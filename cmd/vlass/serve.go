package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/caseyjlaw/vlass/pkg/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr string
		a    archiveOpts
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the survey model and tile lookup over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if !verbose {
				gin.SetMode(gin.ReleaseMode)
			}
			s := &server.Server{Base: cfg, Tiles: a.client(), Epoch: a.epoch}
			slog.Info("listening", "addr", addr)
			return s.Run(cmd.Context(), addr)
		},
	}
	a.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
