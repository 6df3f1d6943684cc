package server

import (
	"strconv"
	"time"

	"gold-price-telegram-bot/internal/metrics"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// requestLogger logs every request with status, latency, and client IP, and
// feeds the HTTP request counter.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		path := c.Request.URL.Path

		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()

		switch {
		case status >= 500:
			log.Errorf("%d %s %s - %s - IP: %s", status, c.Request.Method, path, latency, c.ClientIP())
		case status >= 400:
			log.Warnf("%d %s %s - %s - IP: %s", status, c.Request.Method, path, latency, c.ClientIP())
		default:
			log.Infof("%d %s %s - %s - IP: %s", status, c.Request.Method, path, latency, c.ClientIP())
		}
	}
}
