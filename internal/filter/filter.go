package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kulevich/minsk-afisha/internal/event"
)

// State holds the active list-view selections. It is transient and owned by
// one view; changing any criterion resets the page cursor to 1. State is
// also the single owner of the selected date shared with the calendar
// widget, which reads and writes it through calendar.DateSelection.
type State struct {
	SearchTerm         string     `json:"search_term,omitempty"`
	SelectedDate       string     `json:"selected_date,omitempty"` // YYYY-MM-DD or empty
	SelectedCategory   string     `json:"selected_category,omitempty"`
	SelectedPriceRange PriceRange `json:"selected_price_range,omitempty"`
	CurrentPage        int        `json:"current_page"`
}

// NewState creates a state with no active criteria on page 1.
func NewState() *State {
	return &State{
		SelectedPriceRange: PriceAll,
		CurrentPage:        1,
	}
}

// Date returns the selected date, empty when none is chosen.
func (s *State) Date() string { return s.SelectedDate }

// SetDate selects or clears the date filter and resets the page.
func (s *State) SetDate(iso string) {
	s.SelectedDate = iso
	s.CurrentPage = 1
}

// SetSearchTerm updates the title search and resets the page.
func (s *State) SetSearchTerm(term string) {
	s.SearchTerm = term
	s.CurrentPage = 1
}

// SetCategory selects or clears the category filter and resets the page.
func (s *State) SetCategory(category string) {
	s.SelectedCategory = category
	s.CurrentPage = 1
}

// SetPriceRange selects a price bucket and resets the page. An unknown
// value degrades to "all".
func (s *State) SetPriceRange(r PriceRange) {
	if !r.Valid() {
		r = PriceAll
	}
	s.SelectedPriceRange = r
	s.CurrentPage = 1
}

// SetPage navigates to a page, clamped to [1, totalPages].
func (s *State) SetPage(page, totalPages int) {
	if page < 1 {
		page = 1
	}
	if totalPages >= 1 && page > totalPages {
		page = totalPages
	}
	s.CurrentPage = page
}

// Matches checks an event against every active criterion, ANDed. The final
// predicate drops past events unconditionally: the list never shows
// anything before today.
func (s *State) Matches(e *event.Event, today string) bool {
	if s.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(e.Title), strings.ToLower(s.SearchTerm)) {
		return false
	}

	if s.SelectedDate != "" && e.Date != s.SelectedDate {
		return false
	}

	if s.SelectedCategory != "" && !strings.EqualFold(e.Category, s.SelectedCategory) {
		return false
	}

	if !s.SelectedPriceRange.Matches(e.NumericCost(), e.IsFree()) {
		return false
	}

	return e.Date >= today
}

// Apply returns the events matching every active criterion, in input order.
// today is the caller's clock as YYYY-MM-DD.
func (s *State) Apply(events []event.Event, today string) []event.Event {
	var filtered []event.Event
	for i := range events {
		if s.Matches(&events[i], today) {
			filtered = append(filtered, events[i])
		}
	}
	return filtered
}

// Dates returns the sorted distinct event dates, the calendar's
// availability set.
func Dates(events []event.Event) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, e := range events {
		if !seen[e.Date] {
			seen[e.Date] = true
			dates = append(dates, e.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

// Categories returns the distinct non-empty categories collated for the
// source locale, the dropdown's option list.
func Categories(events []event.Event) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, e := range events {
		if e.Category != "" && !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	collate.New(language.Russian).SortStrings(categories)
	return categories
}
