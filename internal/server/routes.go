package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uptime":    time.Since(s.started).String(),
			"component": "gwbridge",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Sensor paths are arbitrary (/outdoor, /channel_3/temperature, ...),
	// so they resolve in the fallback handler instead of a wildcard route
	// that would collide with /metrics and /healthz.
	s.router.NoRoute(s.handleQuery)
}

func (s *Server) handleQuery(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
		return
	}

	if err := s.cache.EnsureFresh(c.Request.Context()); err != nil {
		if s.cache.Read().Empty() {
			c.JSON(http.StatusBadGateway, gin.H{"error": "gateway unavailable"})
			return
		}
		// Stale-but-available beats unavailable; the refresh failure was
		// already logged and counted by the cache.
		log.Debug().Err(err).Msg("serving stale snapshot")
	}

	result, found := s.cache.Resolve(c.Request.URL.Path)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}
