// Package alert runs the fetch → parse → format → send pipeline.
package alert

import (
	"time"

	"gold-price-telegram-bot/internal/metrics"
	"gold-price-telegram-bot/internal/types"
	"gold-price-telegram-bot/lib/helpers"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Source supplies parsed gold price records.
type Source interface {
	GoldPrices() ([]types.PriceRecord, error)
}

// Sender delivers a text message to the default chat or to an explicit one.
type Sender interface {
	Send(text string) (*types.DeliveryResult, error)
	SendTo(chatID int64, text string) (*types.DeliveryResult, error)
}

// Service wires the scraper and the notifier into the alert pipeline. Each
// invocation is independent: no state is shared between runs beyond the
// read-only collaborators, so concurrent runs are safe.
type Service struct {
	source Source
	sender Sender
	now    func() time.Time
}

// NewService creates the alert pipeline. A nil sender is allowed; delivery
// attempts then fail with a "not configured" error.
func NewService(source Source, sender Sender) *Service {
	return &Service{
		source: source,
		sender: sender,
		now:    time.Now,
	}
}

// GoldPrices returns the current parsed records straight from the source.
func (s *Service) GoldPrices() ([]types.PriceRecord, error) {
	return s.source.GoldPrices()
}

// SendPriceAlert delivers a price alert to the default chat. A fetch failure
// is not fatal: the fixed no-data message is delivered instead.
func (s *Service) SendPriceAlert(includeDetails bool) (*types.DeliveryResult, error) {
	if s.sender == nil {
		return nil, errors.New("telegram bot is not configured")
	}
	return s.deliver(s.sender.Send, s.buildAlert(includeDetails))
}

// SendPriceAlertTo delivers a price alert to an explicit chat, used by the
// /price bot command.
func (s *Service) SendPriceAlertTo(chatID int64, includeDetails bool) (*types.DeliveryResult, error) {
	if s.sender == nil {
		return nil, errors.New("telegram bot is not configured")
	}
	send := func(text string) (*types.DeliveryResult, error) {
		return s.sender.SendTo(chatID, text)
	}
	return s.deliver(send, s.buildAlert(includeDetails))
}

func (s *Service) buildAlert(includeDetails bool) string {
	records, err := s.source.GoldPrices()
	if err != nil {
		log.Errorf("could not fetch gold prices: %v", err)
		records = nil
	}
	return BuildMessage(records, helpers.VietnameseTimestamp(s.now()), includeDetails)
}

func (s *Service) deliver(send func(string) (*types.DeliveryResult, error), text string) (*types.DeliveryResult, error) {
	result, err := send(text)
	if err != nil {
		return nil, errors.Wrap(err, "could not deliver price alert")
	}
	metrics.AlertsSent.Inc()
	return result, nil
}
