package telegram

import "testing"

func TestNewBotInvalidChatID(t *testing.T) {
	// chat id validation happens before any network call
	_, err := NewBot(BotConfig{Token: "123456:abcdef", ChatID: "not-a-number"})
	if err == nil {
		t.Fatal("expected an error for a non-numeric chat id")
	}
}
