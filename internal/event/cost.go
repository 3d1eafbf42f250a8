package event

import (
	"regexp"
	"strconv"
	"strings"
)

// FreeKeyword marks a free event anywhere in the cost text,
// case-insensitively.
const FreeKeyword = "бесплатно"

var costPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)`)

// NumericCost extracts the first decimal number from the raw cost text.
// A comma decimal separator is accepted. Empty text or no number yields 0;
// parsing never fails.
func (e *Event) NumericCost() float64 {
	if strings.TrimSpace(e.Cost) == "" {
		return 0
	}
	match := costPattern.FindString(e.Cost)
	if match == "" {
		return 0
	}
	cost, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil {
		return 0
	}
	return cost
}

// IsFree reports whether the cost text carries the free marker. Checked
// before the numeric buckets, so free events never count as
// unspecified-price.
func (e *Event) IsFree() bool {
	return e.Cost != "" && strings.Contains(strings.ToLower(e.Cost), FreeKeyword)
}
