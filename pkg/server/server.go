// Package server exposes the survey calculator and tile lookup over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caseyjlaw/vlass/pkg/archive"
	"github.com/caseyjlaw/vlass/pkg/survey"
)

// TileSource supplies the tile list for /api/tile.
type TileSource interface {
	Tiles(ctx context.Context) ([]archive.Tile, error)
}

// Server holds the handler dependencies.
type Server struct {
	// Base is the configuration that query parameters override.
	Base  survey.Config
	Tiles TileSource
	Epoch string
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.health)
	api := r.Group("/api")
	{
		api.GET("/model", s.modelQuery)
		api.POST("/model", s.modelJSON)
		if s.Tiles != nil {
			api.GET("/tile", s.tile)
		}
	}
	return r
}

// Run serves on addr until ctx is canceled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shut); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
