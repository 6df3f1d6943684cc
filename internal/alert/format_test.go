package alert

import (
	"fmt"
	"strings"
	"testing"

	"gold-price-telegram-bot/internal/types"
)

const testTimestamp = "Thứ Hai, 02/06/2025 - 06:00:00"

func makeRecords(n int) []types.PriceRecord {
	records := make([]types.PriceRecord, n)
	for i := range records {
		records[i] = types.PriceRecord{
			Type:      fmt.Sprintf("Vàng %d", i+1),
			BuyPrice:  "7.950.000 ▲ +50.000",
			SellPrice: "8.050.000 ▼ -20.000",
		}
	}
	return records
}

func TestBuildMessageEmptyRecords(t *testing.T) {
	withDetails := BuildMessage(nil, testTimestamp, true)
	withoutDetails := BuildMessage(nil, testTimestamp, false)

	if withDetails != MessageNoData {
		t.Errorf("expected no-data fallback, got %q", withDetails)
	}
	if withDetails != withoutDetails {
		t.Error("details flag must be irrelevant when records are empty")
	}
}

func TestBuildMessageTableShape(t *testing.T) {
	msg := BuildMessage(makeRecords(15), testTimestamp, true)
	lines := strings.Split(strings.TrimRight(msg, "\n"), "\n")

	if lines[0] != testTimestamp {
		t.Errorf("first line = %q, want timestamp header", lines[0])
	}

	var borders, rows int
	for _, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, "+"):
			borders++
		case strings.HasPrefix(line, "| "):
			rows++
		default:
			t.Errorf("unexpected table line: %q", line)
		}
	}

	if borders != 3 {
		t.Errorf("expected 3 border lines, got %d", borders)
	}
	// header row plus exactly 10 data rows, records beyond 10 dropped
	if rows != 11 {
		t.Errorf("expected 11 pipe rows, got %d", rows)
	}
}

func TestBuildMessageCellWidths(t *testing.T) {
	records := []types.PriceRecord{
		{Type: "a label much longer than thirteen", BuyPrice: "short", SellPrice: ""},
	}
	msg := BuildMessage(records, testTimestamp, true)
	lines := strings.Split(msg, "\n")

	// line 0 header, 1 border, 2 column titles, 3 border, 4 data row
	dataRow := lines[4]
	cells := strings.Split(strings.Trim(dataRow, "|"), " | ")
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d in %q", len(cells), dataRow)
	}
	if got := strings.TrimPrefix(cells[0], " "); len([]rune(got)) != 13 {
		t.Errorf("long label cell is %d runes, want 13: %q", len([]rune(got)), got)
	}
	if got := strings.TrimSuffix(cells[2], " "); len([]rune(got)) != 13 {
		t.Errorf("padded empty cell is %d runes, want 13: %q", len([]rune(got)), got)
	}
	if !strings.HasPrefix(strings.Trim(dataRow, "| "), "a label much ") {
		t.Errorf("label not truncated to 13 runes: %q", dataRow)
	}
}

func TestBuildMessageWithoutDetails(t *testing.T) {
	msg := BuildMessage(makeRecords(3), testTimestamp, false)

	if !strings.HasPrefix(msg, testTimestamp+"\n") {
		t.Errorf("missing timestamp header: %q", msg)
	}
	if !strings.Contains(msg, "Giá vàng đang được cập nhật") {
		t.Errorf("missing updating filler: %q", msg)
	}
	if strings.Contains(msg, "+---") {
		t.Errorf("table must not be rendered without details: %q", msg)
	}
}

func TestBuildMessageBorderWidth(t *testing.T) {
	msg := BuildMessage(makeRecords(1), testTimestamp, true)
	lines := strings.Split(msg, "\n")

	border := lines[1]
	dataRow := lines[4]
	if len(border) != len("+---------------+---------------+---------------+") {
		t.Errorf("unexpected border width: %q", border)
	}
	if len([]rune(dataRow)) != len([]rune(border)) {
		t.Errorf("row width %d != border width %d", len([]rune(dataRow)), len([]rune(border)))
	}
}
