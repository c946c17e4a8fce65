// Package server is the HTTP front-end over the livedata core. It only
// consumes the three-operation contract (EnsureFresh, Read, Resolve);
// all rendering decisions live here.
package server

import (
	"net/http"
	"time"

	"github.com/ecolink/gwbridge/internal/livedata"
	"github.com/ecolink/gwbridge/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Server struct {
	cache   *livedata.Cache
	router  *gin.Engine
	started time.Time
}

func New(cache *livedata.Cache, corsOrigins []string) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware())
	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{cache: cache, router: r, started: time.Now()}
	s.registerRoutes()
	return s
}

// Handler exposes the router for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	log.Info().Str("addr", addr).Msg("http server listening")
	return s.router.Run(addr)
}
