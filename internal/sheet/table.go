package sheet

import "errors"

// ErrNoData is returned when the payload has no header row or no data rows.
// The dataset is unusable without both, so this is a fetch-level failure
// rather than something the normalizer degrades around.
var ErrNoData = errors.New("no data found in the sheet")

// Table is the raw tabular payload: an ordered header row plus ordered data
// rows. Rows may be shorter than the header; missing cells read as empty.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// cell returns the value at column i of row, or "" when the row is ragged.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// validate enforces the header-plus-one-data-row minimum.
func (t *Table) validate() error {
	if t == nil || len(t.Headers) == 0 || len(t.Rows) == 0 {
		return ErrNoData
	}
	return nil
}
