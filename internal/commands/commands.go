// Package commands implements the bot command handlers. Each handler
// returns the reply text; an empty reply means the handler already delivered
// its own message.
package commands

import (
	"gold-price-telegram-bot/config"
	"gold-price-telegram-bot/internal/alert"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// CommandStart handles /start.
func CommandStart(cfg *config.Config) string {
	return cfg.Commands.Start
}

// CommandHelp handles /help.
func CommandHelp(cfg *config.Config) string {
	return cfg.Commands.Help
}

// CommandPrice handles /price: the price alert itself is delivered to the
// requesting chat, so no extra reply text is returned on success.
func CommandPrice(svc *alert.Service, chatID int64) (string, error) {
	log.Debugf("processing command /price for chat %d", chatID)

	if _, err := svc.SendPriceAlertTo(chatID, true); err != nil {
		return "", errors.Wrap(err, "command /price")
	}
	return "", nil
}
