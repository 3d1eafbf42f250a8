package calendar

import (
	"fmt"
	"time"

	"github.com/kulevich/minsk-afisha/internal/event"
)

// DateSelection is the externally-owned selected-date value shared between
// the calendar widget and the list filter. Both views read it; each user
// action has exactly one writer.
type DateSelection interface {
	Date() string
	SetDate(iso string)
}

// DayState tags the visual state of one day cell. Precedence when several
// apply: selected, then today, then available, then unavailable.
type DayState string

const (
	DaySelected    DayState = "selected"
	DayToday       DayState = "today"
	DayAvailable   DayState = "available"
	DayUnavailable DayState = "unavailable"
)

// Day is one rendered day cell of the current month.
type Day struct {
	Date      string   `json:"date"` // YYYY-MM-DD
	Number    int      `json:"number"`
	State     DayState `json:"state"`
	Clickable bool     `json:"clickable"`
}

// Widget is the date-picker state machine: a month cursor, the shared date
// selection, and the open/closed flag. The same widget drives the list and
// map views; availability comes from the distinct event dates of the
// current fetch.
type Widget struct {
	currentMonth time.Time // first day of the visible month
	open         bool
	selection    DateSelection
	available    map[string]bool
	now          time.Time
}

// New creates a closed widget cursored on now's month with no selection
// changes. availableDates is the distinct-date set of the loaded events.
func New(selection DateSelection, availableDates []string, now time.Time) *Widget {
	available := make(map[string]bool, len(availableDates))
	for _, d := range availableDates {
		available[d] = true
	}
	return &Widget{
		currentMonth: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		selection:    selection,
		available:    available,
		now:          now,
	}
}

// IsOpen reports whether the picker is visible.
func (w *Widget) IsOpen() bool { return w.open }

// Toggle flips the picker open or closed.
func (w *Widget) Toggle() { w.open = !w.open }

// Close closes the picker, as an outside click does.
func (w *Widget) Close() { w.open = false }

// CurrentMonth returns the first day of the visible month.
func (w *Widget) CurrentMonth() time.Time { return w.currentMonth }

// PrevMonth moves the cursor back one calendar month. Unbounded.
func (w *Widget) PrevMonth() { w.currentMonth = w.currentMonth.AddDate(0, -1, 0) }

// NextMonth moves the cursor forward one calendar month. Unbounded.
func (w *Widget) NextMonth() { w.currentMonth = w.currentMonth.AddDate(0, 1, 0) }

// ClickDay handles a click on the day with the given ISO date. Clicking a
// disabled day does nothing. Clicking the already-selected day reopens the
// picker and keeps the selection, so the user can keep browsing. Clicking
// any other available day selects it and closes the picker.
func (w *Widget) ClickDay(iso string) {
	if !w.clickable(iso) {
		return
	}
	if w.selection.Date() == iso {
		w.open = true
		return
	}
	w.selection.SetDate(iso)
	w.open = false
}

// Reset clears the selection and closes the picker.
func (w *Widget) Reset() {
	w.selection.SetDate("")
	w.open = false
}

// IsDateAvailable reports whether any event falls on the given date.
func (w *Widget) IsDateAvailable(iso string) bool { return w.available[iso] }

// isFutureOrToday compares against the injected clock's date, inclusive of
// today.
func (w *Widget) isFutureOrToday(iso string) bool {
	return iso >= w.now.Format(event.ISODate)
}

// clickable gates day clicks: the date must carry events and not be past.
func (w *Widget) clickable(iso string) bool {
	return w.IsDateAvailable(iso) && w.isFutureOrToday(iso)
}

// Days renders the day cells of the visible month in order.
func (w *Widget) Days() []Day {
	today := w.now.Format(event.ISODate)
	selected := w.selection.Date()

	first := w.currentMonth
	next := first.AddDate(0, 1, 0)

	var days []Day
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		iso := d.Format(event.ISODate)
		clickable := w.clickable(iso)

		var state DayState
		switch {
		case iso == selected && selected != "":
			state = DaySelected
		case iso == today:
			state = DayToday
		case clickable:
			state = DayAvailable
		default:
			state = DayUnavailable
		}

		days = append(days, Day{
			Date:      iso,
			Number:    d.Day(),
			State:     state,
			Clickable: clickable,
		})
	}
	return days
}

// monthNames holds standalone (nominative) Russian month names.
var monthNames = [12]string{
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

// MonthTitle returns the visible month heading, e.g. "май 2026".
func (w *Widget) MonthTitle() string {
	return fmt.Sprintf("%s %d", monthNames[w.currentMonth.Month()-1], w.currentMonth.Year())
}

// Weekdays returns the Monday-first weekday captions for the grid header.
func Weekdays() []string {
	return []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}
}
