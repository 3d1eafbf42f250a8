// Package event provides the normalized culture-event record and its
// derived-value parsers.
//
// The event package owns the typed Event model plus the best-effort parsers
// for the free-text fields of the source dataset: localized date phrases,
// cost text with a "free" marker, and raw coordinate pairs. All parsers
// degrade to well-defined defaults instead of returning errors, matching the
// availability-over-signaling contract of the dataset. It also detects
// newly-added events between two fetches via title+date keyed diffing.
package event
