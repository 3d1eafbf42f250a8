// Package filter implements the composable event filter pipeline.
//
// A State combines the list view's search term, exact-date, category, and
// price-bucket selections with the unconditional not-in-past rule; the
// predicates are independent and ANDed. Setters reset the page cursor so a
// criterion change always lands on page 1. The package also derives the
// distinct date and category option lists from a normalized collection.
package filter
