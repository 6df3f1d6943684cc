package alert

import (
	"strings"
	"testing"
	"time"

	"gold-price-telegram-bot/internal/types"

	"github.com/pkg/errors"
)

type fakeSource struct {
	records []types.PriceRecord
	err     error
}

func (f *fakeSource) GoldPrices() ([]types.PriceRecord, error) {
	return f.records, f.err
}

type fakeSender struct {
	sent    []string
	chatIDs []int64
	err     error
}

func (f *fakeSender) Send(text string) (*types.DeliveryResult, error) {
	return f.SendTo(0, text)
}

func (f *fakeSender) SendTo(chatID int64, text string) (*types.DeliveryResult, error) {
	f.sent = append(f.sent, text)
	f.chatIDs = append(f.chatIDs, chatID)
	if f.err != nil {
		return nil, f.err
	}
	return &types.DeliveryResult{MessageID: len(f.sent), ChatID: chatID}, nil
}

func newTestService(source Source, sender Sender) *Service {
	svc := NewService(source, sender)
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC) }
	return svc
}

func TestSendPriceAlertFetchFailure(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(&fakeSource{err: errors.New("connection refused")}, sender)

	result, err := svc.SendPriceAlert(true)
	if err != nil {
		t.Fatalf("fetch failure must not fail the pipeline: %v", err)
	}
	if result == nil {
		t.Fatal("expected a delivery result")
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected exactly one delivery, got %d", len(sender.sent))
	}
	if sender.sent[0] != MessageNoData {
		t.Errorf("expected the fixed no-data message, got %q", sender.sent[0])
	}
}

func TestSendPriceAlertWithRecords(t *testing.T) {
	sender := &fakeSender{}
	source := &fakeSource{records: []types.PriceRecord{
		{Type: "Vàng SJC", BuyPrice: "7.950.000 ▲ +50.000", SellPrice: "8.050.000 ▲ +50.000"},
	}}

	if _, err := newTestService(source, sender).SendPriceAlert(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one delivery, got %d", len(sender.sent))
	}
	msg := sender.sent[0]
	if !strings.HasPrefix(msg, "Thứ Hai, 02/06/2025 - 06:00:00\n") {
		t.Errorf("missing timestamp header: %q", msg)
	}
	if !strings.Contains(msg, "Vàng SJC") || !strings.Contains(msg, "▲") {
		t.Errorf("table content missing: %q", msg)
	}
}

func TestSendPriceAlertDeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("api unreachable")}
	source := &fakeSource{records: []types.PriceRecord{{Type: "Vàng SJC"}}}

	if _, err := newTestService(source, sender).SendPriceAlert(true); err == nil {
		t.Fatal("expected the delivery error to surface")
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected exactly one attempt, got %d", len(sender.sent))
	}
}

func TestSendPriceAlertToChat(t *testing.T) {
	sender := &fakeSender{}
	source := &fakeSource{records: []types.PriceRecord{{Type: "Vàng SJC"}}}

	if _, err := newTestService(source, sender).SendPriceAlertTo(42, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.chatIDs) != 1 || sender.chatIDs[0] != 42 {
		t.Errorf("expected delivery to chat 42, got %v", sender.chatIDs)
	}
}

func TestSendPriceAlertWithoutSender(t *testing.T) {
	svc := newTestService(&fakeSource{}, nil)
	if _, err := svc.SendPriceAlert(true); err == nil {
		t.Fatal("expected an error when no sender is configured")
	}
}
