package types

// PriceRecord is one row of the scraped gold price table. The price fields
// already carry the trend marker and trend text, e.g. "7.950.000 ▲ +50.000".
type PriceRecord struct {
	Type      string `json:"type"`
	BuyPrice  string `json:"buyPrice"`
	SellPrice string `json:"sellPrice"`
}

// DeliveryResult describes a message accepted by the Telegram API.
type DeliveryResult struct {
	MessageID int   `json:"message_id"`
	ChatID    int64 `json:"chat_id"`
	Date      int   `json:"date"`
}
