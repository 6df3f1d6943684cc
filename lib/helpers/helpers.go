package helpers

import (
	"strings"
	"time"
)

// vietnameseDays indexed by time.Weekday (Sunday = 0).
var vietnameseDays = []string{
	"Chủ Nhật", "Thứ Hai", "Thứ Ba", "Thứ Tư", "Thứ Năm", "Thứ Sáu", "Thứ Bảy",
}

// VietnameseTimestamp formats t as a Vietnamese weekday plus date and time,
// e.g. "Thứ Hai, 02/06/2025 - 15:04:05".
func VietnameseTimestamp(t time.Time) string {
	return vietnameseDays[int(t.Weekday())] + t.Format(", 02/01/2006 - 15:04:05")
}

// FitColumn truncates s to width runes and right-pads with spaces to exactly
// width, for fixed-width table cells.
func FitColumn(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}

// StripWhitespace removes all whitespace from s, including interior runs.
func StripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
