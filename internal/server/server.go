// Package server exposes the on-demand JSON endpoints around the alert
// pipeline.
package server

import (
	"fmt"
	"time"

	"gold-price-telegram-bot/config"
	"gold-price-telegram-bot/internal/alert"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Server hosts the HTTP API.
type Server struct {
	cfg     *config.Config
	alerts  *alert.Service
	sender  alert.Sender
	started time.Time
}

// New creates the server. sender may be nil when no bot is configured;
// delivery endpoints then answer with a server error envelope.
func New(cfg *config.Config, alerts *alert.Service, sender alert.Sender) *Server {
	return &Server{
		cfg:     cfg,
		alerts:  alerts,
		sender:  sender,
		started: time.Now(),
	}
}

// Router builds the gin engine with middleware and all routes.
func (s *Server) Router() *gin.Engine {
	if !s.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(cors.New(s.corsConfig()))

	router.GET("/", s.handleWelcome)
	router.GET("/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/telegram")
	api.POST("/send-test", s.handleSendTest)
	api.POST("/price-alert", s.handlePriceAlert)
	api.GET("/gold-prices", s.handleGoldPrices)

	return router
}

// Run starts the server on the configured port and blocks.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	log.Infof("🌐 API available at http://localhost%s", addr)
	return s.Router().Run(addr)
}

func (s *Server) corsConfig() cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Content-Type", "Authorization", "X-Requested-With"}
	c.MaxAge = 24 * time.Hour

	if len(s.cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = s.cfg.AllowedOrigins
		c.AllowCredentials = true
	}
	return c
}
