package event

import "strings"

// DiffKey identifies an event across fetches. IDs are positional and only
// stable within one fetch, so the diff is keyed on normalized title + date.
func DiffKey(e Event) string {
	return strings.ToLower(strings.TrimSpace(e.Title)) + "|" + e.Date
}

// Diff returns the events in current that were absent from previous,
// in current order.
func Diff(previous, current []Event) []Event {
	seen := make(map[string]bool, len(previous))
	for _, e := range previous {
		seen[DiffKey(e)] = true
	}

	var added []Event
	for _, e := range current {
		if !seen[DiffKey(e)] {
			added = append(added, e)
		}
	}
	return added
}
