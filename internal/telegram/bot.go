package telegram

import (
	"strconv"

	"gold-price-telegram-bot/internal/metrics"
	"gold-price-telegram-bot/internal/types"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

// NewBot creates new telegram bot
func NewBot(c BotConfig) (*Bot, error) {
	chatID, err := strconv.ParseInt(c.ChatID, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid chat id %q", c.ChatID)
	}

	bot, err := tgbotapi.NewBotAPI(c.Token)
	if err != nil {
		return nil, errors.Wrap(err, "could not create telegram bot")
	}

	bot.Debug = c.Debug

	return &Bot{
		Bot:           bot,
		Config:        c,
		defaultChatID: chatID,
	}, nil
}

// GetUpdatesChannel gets new updates
func (b *Bot) GetUpdatesChannel() tgbotapi.UpdatesChannel {
	updatesConfig := tgbotapi.NewUpdate(0)
	if b.Config.UpdatesTimeout > 0 {
		updatesConfig.Timeout = b.Config.UpdatesTimeout
	}
	return b.Bot.GetUpdatesChan(updatesConfig)
}

// Send delivers text to the configured default chat.
func (b *Bot) Send(text string) (*types.DeliveryResult, error) {
	return b.SendTo(b.defaultChatID, text)
}

// SendTo delivers text to an explicit chat. The body is wrapped in a
// fixed-width code block so the price table keeps its alignment.
func (b *Bot) SendTo(chatID int64, text string) (*types.DeliveryResult, error) {
	msg := tgbotapi.NewMessage(chatID, "```"+text+"```")
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true

	sent, err := b.Bot.Send(msg)
	if err != nil {
		metrics.DeliveryFailures.Inc()
		return nil, errors.Wrapf(err, "could not send message to chat %d", chatID)
	}

	return &types.DeliveryResult{
		MessageID: sent.MessageID,
		ChatID:    chatID,
		Date:      sent.Date,
	}, nil
}
