// Package view derives the list view: stable chronological ordering,
// fixed-size pagination, and the truncated page-number control.
package view

import (
	"sort"

	"github.com/kulevich/minsk-afisha/internal/event"
)

// PageSize is the fixed number of events per list page.
const PageSize = 15

// maxPageLinks bounds the run of leading page links before truncation.
const maxPageLinks = 4

// SortByDate returns a copy of events in ascending date order. ISO dates
// compare lexically, and the sort is stable: equal dates keep their
// relative input order.
func SortByDate(events []event.Event) []event.Event {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// TotalPages returns ceil(count/PageSize), at least 1 even for an empty
// collection.
func TotalPages(count int) int {
	pages := (count + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Page is one pagination window plus its metadata.
type Page struct {
	Events      []event.Event `json:"events"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
}

// Paginate slices the sorted collection into the requested window. The page
// number is clamped to [1, TotalPages].
func Paginate(events []event.Event, page int) Page {
	total := TotalPages(len(events))
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(events) {
		start = len(events)
	}
	if end > len(events) {
		end = len(events)
	}

	return Page{
		Events:      events[start:end],
		CurrentPage: page,
		TotalPages:  total,
	}
}

// PageItem is one entry of the page-number control: either a numbered link
// or the ellipsis marker.
type PageItem struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Active   bool `json:"active,omitempty"`
}

// PageItems renders the page-number control. Up to four pages are listed in
// full; beyond that the control keeps a fixed shape: page 1, pages up to
// min(4, total-1), an ellipsis once total exceeds 5, then the last page.
func PageItems(current, total int) []PageItem {
	var items []PageItem

	if total <= maxPageLinks {
		for i := 1; i <= total; i++ {
			items = append(items, PageItem{Number: i, Active: i == current})
		}
		return items
	}

	items = append(items, PageItem{Number: 1, Active: current == 1})

	last := maxPageLinks
	if total-1 < last {
		last = total - 1
	}
	for i := 2; i <= last; i++ {
		items = append(items, PageItem{Number: i, Active: i == current})
	}

	if total > maxPageLinks+1 {
		items = append(items, PageItem{Ellipsis: true})
	}

	items = append(items, PageItem{Number: total, Active: current == total})
	return items
}
