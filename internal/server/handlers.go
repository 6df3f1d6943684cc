package server

import (
	"net/http"
	"time"

	"gold-price-telegram-bot/internal/types"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleWelcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the gold price crawler API",
		"endpoints": gin.H{
			"GET /":                          "This welcome message",
			"POST /api/telegram/send-test":   "Send test message to Telegram",
			"POST /api/telegram/price-alert": "Send gold price alert to Telegram",
			"GET /api/telegram/gold-prices":  "Get current gold prices (JSON)",
		},
		"telegram_configured": s.cfg.TelegramConfigured(),
		"server_time":         time.Now().UTC().Format(time.RFC3339),
		"started":             humanize.Time(s.started),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (s *Server) handleSendTest(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Message content is required",
		})
		return
	}

	if s.sender == nil {
		failSend(c, "Failed to send message", "telegram bot is not configured")
		return
	}

	result, err := s.sender.Send(body.Message)
	if err != nil {
		failSend(c, "Failed to send message", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully",
		"result":  result,
	})
}

func (s *Server) handlePriceAlert(c *gin.Context) {
	var body struct {
		IncludeDetails *bool `json:"includeDetails"`
	}
	// missing or empty body means a detailed alert
	_ = c.ShouldBindJSON(&body)
	includeDetails := body.IncludeDetails == nil || *body.IncludeDetails

	result, err := s.alerts.SendPriceAlert(includeDetails)
	if err != nil {
		failSend(c, "Failed to send price alert", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gold price alert sent successfully",
		"result":  result,
	})
}

func (s *Server) handleGoldPrices(c *gin.Context) {
	records, err := s.alerts.GoldPrices()
	if err != nil {
		failSend(c, "Failed to fetch gold price data", err.Error())
		return
	}
	if records == nil {
		records = []types.PriceRecord{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Gold price data fetched successfully",
		"data":      records,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"source":    s.cfg.Source.GoldPriceURL,
	})
}

func failSend(c *gin.Context, message, errText string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"error":   errText,
	})
}
