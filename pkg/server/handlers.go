package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caseyjlaw/vlass/pkg/archive"
	"github.com/caseyjlaw/vlass/pkg/report"
	"github.com/caseyjlaw/vlass/pkg/survey"
	"github.com/caseyjlaw/vlass/pkg/types"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// modelQuery runs the model with query parameters (?fov=..&nant=..)
// overriding the base configuration.
func (s *Server) modelQuery(c *gin.Context) {
	cfg := s.Base
	if err := c.ShouldBindQuery(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.respond(c, cfg)
}

// modelJSON runs the model on a JSON body; omitted fields keep the base values.
func (s *Server) modelJSON(c *gin.Context) {
	cfg := s.Base
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.respond(c, cfg)
}

func (s *Server) respond(c *gin.Context, cfg survey.Config) {
	sum, err := report.Build(cfg)
	if err != nil {
		var pe *survey.ParamError
		if errors.As(err, &pe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "param": pe.Param})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// tile resolves ?ra=hh:mm:ss&dec=dd:mm:ss to the covering tiles.
func (s *Server) tile(c *gin.Context) {
	coord, err := types.ParseCoord(c.Query("ra"), c.Query("dec"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tiles, err := s.Tiles.Tiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	epoch := c.DefaultQuery("epoch", s.Epoch)
	cov := archive.Coverage(tiles, coord, epoch)
	if len(cov) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": archive.ErrNoTile.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coord": coord.String(), "tiles": cov})
}
