package event

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISODate is the canonical date layout used everywhere in the engine.
// Lexical comparison of two ISODate strings is date-correct.
const ISODate = "2006-01-02"

// monthCodes maps genitive Russian month names (as they appear next to a
// day number in the source data) to two-digit month codes.
var monthCodes = map[string]string{
	"января":   "01",
	"февраля":  "02",
	"марта":    "03",
	"апреля":   "04",
	"мая":      "05",
	"июня":     "06",
	"июля":     "07",
	"августа":  "08",
	"сентября": "09",
	"октября":  "10",
	"ноября":   "11",
	"декабря":  "12",
}

// ParseLocaleDate converts a locale date phrase like "15 марта, 18:00" into
// an ISO calendar date. Only the first comma-separated segment is read: the
// first token is the day of month, the second a genitive month name. The
// year is always the year of now; the source data is assumed single-year,
// so a December run parsing a January date lands in the wrong year.
//
// Never fails: an unknown month falls back to "01", and an empty or
// unreadable phrase yields the current date.
func ParseLocaleDate(raw string, now time.Time) string {
	date, _ := parseLocaleDate(raw, now)
	return date
}

// parseLocaleDate reports whether the result came from a full parse or a
// fallback, so the silent degradation stays testable.
func parseLocaleDate(raw string, now time.Time) (string, bool) {
	first, _, _ := strings.Cut(raw, ",")
	parts := strings.Fields(first)
	if len(parts) == 0 {
		return now.Format(ISODate), false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return now.Format(ISODate), false
	}
	month := "01"
	known := false
	if len(parts) > 1 {
		if code, ok := monthCodes[strings.ToLower(parts[1])]; ok {
			month = code
			known = true
		}
	}
	return fmt.Sprintf("%d-%s-%02d", now.Year(), month, day), known
}

// FormatDotDate renders an ISO date as DD.MM.YYYY for display.
func FormatDotDate(iso string) string {
	t, err := time.Parse(ISODate, iso)
	if err != nil {
		return ""
	}
	return t.Format("02.01.2006")
}

// shortMonths holds abbreviated Russian month names for compact display.
var shortMonths = [12]string{
	"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
	"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
}

// FormatShortDate renders an ISO date as a compact "5 мая" style label.
func FormatShortDate(iso string) string {
	t, err := time.Parse(ISODate, iso)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d %s", t.Day(), shortMonths[t.Month()-1])
}
