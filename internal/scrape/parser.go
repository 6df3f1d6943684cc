package scrape

import (
	"strings"

	"gold-price-telegram-bot/internal/types"
	"gold-price-telegram-bot/lib/helpers"

	"github.com/PuerkitoBio/goquery"
)

const priceTableSelector = "table.gia-vang-search-data-table tbody tr"

const (
	markerUp   = " ▲ "
	markerDown = " ▼ "
)

// RecordExtractor extracts price records from a parsed document. The
// traversal rule sits behind this interface so it can be swapped when the
// upstream markup changes, without touching formatting or delivery.
type RecordExtractor interface {
	ExtractRecords(doc *goquery.Document) []types.PriceRecord
}

// TableExtractor reads the 24h.com.vn gold price table. The lookups are
// positional (nth cell, nth span) because the source markup carries no
// stable field identifiers.
type TableExtractor struct{}

// ExtractRecords returns one record per table row, in row order. Rows with
// fewer than four cells are skipped; malformed cells yield empty fields,
// never an error.
func (TableExtractor) ExtractRecords(doc *goquery.Document) []types.PriceRecord {
	var records []types.PriceRecord

	doc.Find(priceTableSelector).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		records = append(records, types.PriceRecord{
			Type:      strings.TrimSpace(cells.Eq(0).Text()),
			BuyPrice:  extractPrice(cells.Eq(1)),
			SellPrice: extractPrice(cells.Eq(2)),
		})
	})

	return records
}

// extractPrice composes the price string for a buy or sell cell: the first
// span holds the current price, the third span the trend delta, with the
// trend marker derived from the delta span's color class.
func extractPrice(cell *goquery.Selection) string {
	spans := cell.Find("span")
	trendSpan := spans.Eq(2)

	price := helpers.StripWhitespace(spans.Eq(0).Text())
	trend := helpers.StripWhitespace(trendSpan.Text())

	return price + trendMarker(trendSpan) + trend
}

func trendMarker(span *goquery.Selection) string {
	switch {
	case span.HasClass("colorGreen") || span.Find(".colorGreen").Length() > 0:
		return markerUp
	case span.HasClass("colorRed") || span.Find(".colorRed").Length() > 0:
		return markerDown
	default:
		return ""
	}
}
