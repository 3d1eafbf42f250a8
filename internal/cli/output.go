package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kulevich/minsk-afisha/internal/calendar"
	"github.com/kulevich/minsk-afisha/internal/event"
	"github.com/kulevich/minsk-afisha/internal/geo"
	"github.com/kulevich/minsk-afisha/internal/view"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// listOutput is the JSON shape of the list command.
type listOutput struct {
	Events      []event.Event   `json:"events"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
	PageItems   []view.PageItem `json:"page_items"`
}

// WriteEventList writes one pagination window of the list view.
func WriteEventList(w io.Writer, page view.Page, format OutputFormat) error {
	items := view.PageItems(page.CurrentPage, page.TotalPages)

	if format == FormatJSON {
		return writeJSON(w, listOutput{
			Events:      page.Events,
			CurrentPage: page.CurrentPage,
			TotalPages:  page.TotalPages,
			PageItems:   items,
		})
	}

	if len(page.Events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	for _, e := range page.Events {
		line := event.FormatDotDate(e.Date)
		if e.Time != "" {
			line += " " + e.Time
		}
		line += "  " + e.Title
		if e.Location != "" {
			line += " — " + e.Location
		}
		if e.Category != "" {
			line += fmt.Sprintf(" [%s]", event.CapitalizeFirst(e.Category))
		}
		if e.Cost != "" {
			line += fmt.Sprintf(" (%s)", e.Cost)
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\nPage %d of %d: %s\n", page.CurrentPage, page.TotalPages, renderPageItems(items))
	return nil
}

// renderPageItems draws the page-number control, active page bracketed.
func renderPageItems(items []view.PageItem) string {
	var parts []string
	for _, item := range items {
		switch {
		case item.Ellipsis:
			parts = append(parts, "...")
		case item.Active:
			parts = append(parts, fmt.Sprintf("[%d]", item.Number))
		default:
			parts = append(parts, fmt.Sprintf("%d", item.Number))
		}
	}
	return strings.Join(parts, " ")
}

// clusterOutput pairs a cluster with its marker content for JSON output.
type clusterOutput struct {
	Key         string            `json:"key"`
	Coordinates event.Coordinates `json:"coordinates"`
	Marker      geo.Marker        `json:"marker"`
	Events      []event.Event     `json:"events"`
}

type mapOutput struct {
	Date     string          `json:"date"`
	Clusters []clusterOutput `json:"clusters"`
}

// WriteClusters writes the map view's marker clusters for one day.
func WriteClusters(w io.Writer, date string, clusters []geo.Cluster, format OutputFormat) error {
	if format == FormatJSON {
		out := mapOutput{Date: date}
		for _, c := range clusters {
			out.Clusters = append(out.Clusters, clusterOutput{
				Key:         c.Key,
				Coordinates: c.Coordinates,
				Marker:      c.Marker(),
				Events:      c.Events,
			})
		}
		return writeJSON(w, out)
	}

	if len(clusters) == 0 {
		fmt.Fprintf(w, "No events on the map for %s.\n", event.FormatDotDate(date))
		return nil
	}

	total := 0
	for _, c := range clusters {
		marker := c.Marker()
		fmt.Fprintf(w, "%s — %s\n", c.Key, marker.Header)
		for _, e := range c.Events {
			fmt.Fprintf(w, "  %s", e.Title)
			if e.Time != "" {
				fmt.Fprintf(w, ", %s", e.Time)
			}
			if e.Location != "" {
				fmt.Fprintf(w, " — %s", e.Location)
			}
			fmt.Fprintln(w)
			total++
		}
	}
	fmt.Fprintf(w, "\nTotal: %d events at %d markers\n", total, len(clusters))
	return nil
}

// calendarOutput is the JSON shape of the calendar command.
type calendarOutput struct {
	MonthTitle string         `json:"month_title"`
	Weekdays   []string       `json:"weekdays"`
	Days       []calendar.Day `json:"days"`
}

// WriteCalendar draws the date-picker month grid. Text mode brackets the
// selected day, parenthesizes today, and dots out disabled days.
func WriteCalendar(w io.Writer, widget *calendar.Widget, format OutputFormat) error {
	days := widget.Days()

	if format == FormatJSON {
		return writeJSON(w, calendarOutput{
			MonthTitle: widget.MonthTitle(),
			Weekdays:   calendar.Weekdays(),
			Days:       days,
		})
	}

	fmt.Fprintf(w, "%s\n", widget.MonthTitle())
	for _, wd := range calendar.Weekdays() {
		fmt.Fprintf(w, "%4s", wd)
	}
	fmt.Fprintln(w)

	// Monday-first column offset for the first day of the month.
	offset := (int(widget.CurrentMonth().Weekday()) + 6) % 7
	col := 0
	for ; col < offset; col++ {
		fmt.Fprintf(w, "%4s", "")
	}

	for _, d := range days {
		var cell string
		switch d.State {
		case calendar.DaySelected:
			cell = fmt.Sprintf("[%d]", d.Number)
		case calendar.DayToday:
			cell = fmt.Sprintf("(%d)", d.Number)
		case calendar.DayAvailable:
			cell = fmt.Sprintf("%d", d.Number)
		default:
			cell = "·"
		}
		fmt.Fprintf(w, "%4s", cell)
		col++
		if col%7 == 0 {
			fmt.Fprintln(w)
		}
	}
	if col%7 != 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\n[n] selected  (n) today  n available  · unavailable")
	return nil
}

// checkOutput is the JSON shape of the check command.
type checkOutput struct {
	CheckedAt  string        `json:"checked_at"`
	NewEvents  []event.Event `json:"new_events"`
	EventCount int           `json:"event_count"`
}

// WriteNewEvents reports the events added since the previous snapshot.
func WriteNewEvents(w io.Writer, added []event.Event, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, checkOutput{
			CheckedAt:  time.Now().UTC().Format(time.RFC3339),
			NewEvents:  added,
			EventCount: len(added),
		})
	}

	if len(added) == 0 {
		fmt.Fprintln(w, "No new events found.")
		return nil
	}

	for _, e := range added {
		fmt.Fprintf(w, "NEW: %s %s", event.FormatDotDate(e.Date), e.Title)
		if e.Location != "" {
			fmt.Fprintf(w, " — %s", e.Location)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\nTotal: %d new events\n", len(added))
	return nil
}
