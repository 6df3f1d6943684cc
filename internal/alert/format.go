package alert

import (
	"strings"

	"gold-price-telegram-bot/internal/types"
	"gold-price-telegram-bot/lib/helpers"
)

const (
	columnWidth  = 13
	maxTableRows = 10

	// MessageNoData is delivered when the source yields no price records.
	MessageNoData = "❌ Unable to fetch gold price data\n\nPlease try again later."

	fillerUpdating = "📈 Giá vàng đang được cập nhật...\nVui lòng thử lại sau ít phút."
)

var (
	tableBorder = "+" + strings.Repeat(strings.Repeat("-", columnWidth+2)+"+", 3)

	columnTitles = [3]string{"Loại vàng", "Giá mua", "Giá bán"}
)

// BuildMessage renders the alert text: a timestamp header followed by either
// the fixed-width price table or the updating filler. Empty records yield
// the no-data fallback regardless of includeDetails. Never fails.
func BuildMessage(records []types.PriceRecord, timestamp string, includeDetails bool) string {
	if len(records) == 0 {
		return MessageNoData
	}

	var b strings.Builder
	b.WriteString(timestamp)
	b.WriteString("\n")

	if includeDetails {
		b.WriteString(tableBorder + "\n")
		b.WriteString(tableRow(columnTitles[0], columnTitles[1], columnTitles[2]))
		b.WriteString(tableBorder + "\n")

		for i, r := range records {
			if i >= maxTableRows {
				break
			}
			b.WriteString(tableRow(r.Type, r.BuyPrice, r.SellPrice))
		}

		b.WriteString(tableBorder + "\n")
	} else {
		b.WriteString(fillerUpdating + "\n")
	}

	return b.String()
}

func tableRow(goldType, buy, sell string) string {
	return "| " + helpers.FitColumn(goldType, columnWidth) +
		" | " + helpers.FitColumn(buy, columnWidth) +
		" | " + helpers.FitColumn(sell, columnWidth) + " |\n"
}
