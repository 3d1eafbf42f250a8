package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kulevich/minsk-afisha/internal/calendar"
	"github.com/kulevich/minsk-afisha/internal/event"
	"github.com/kulevich/minsk-afisha/internal/filter"
	"github.com/kulevich/minsk-afisha/internal/geo"
	"github.com/kulevich/minsk-afisha/internal/view"
)

func TestWriteEventListText(t *testing.T) {
	page := view.Page{
		Events: []event.Event{
			{ID: 1, Title: "Концерт", Date: "2026-05-05", Time: "19:00", Location: "Филармония", Category: "концерт", Cost: "10 р"},
		},
		CurrentPage: 2,
		TotalPages:  12,
	}

	var buf bytes.Buffer
	if err := WriteEventList(&buf, page, FormatText); err != nil {
		t.Fatalf("WriteEventList() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"05.05.2026 19:00", "Концерт", "Филармония", "[Концерт]", "(10 р)", "Page 2 of 12", "1 [2] 3 4 ... 12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteEventListEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEventList(&buf, view.Page{CurrentPage: 1, TotalPages: 1}, FormatText); err != nil {
		t.Fatalf("WriteEventList() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No events found.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriteEventListJSON(t *testing.T) {
	page := view.Page{
		Events:      []event.Event{{ID: 1, Title: "Концерт", Date: "2026-05-05"}},
		CurrentPage: 1,
		TotalPages:  1,
	}

	var buf bytes.Buffer
	if err := WriteEventList(&buf, page, FormatJSON); err != nil {
		t.Fatalf("WriteEventList() error = %v", err)
	}

	var decoded listOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.TotalPages != 1 || len(decoded.Events) != 1 || len(decoded.PageItems) != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestWriteClustersText(t *testing.T) {
	clusters := geo.Group([]event.Event{
		{ID: 1, Title: "Концерт", Time: "19:00", Location: "Филармония", Coordinates: "53.9,27.5"},
		{ID: 2, Title: "Лекция", Time: "17:00", Location: "Филармония", Coordinates: "53.9,27.5"},
	})

	var buf bytes.Buffer
	if err := WriteClusters(&buf, "2026-05-05", clusters, FormatText); err != nil {
		t.Fatalf("WriteClusters() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"53.9,27.5 — Мероприятия (2)", "Концерт, 19:00", "Total: 2 events at 1 markers"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteCalendarText(t *testing.T) {
	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	state := filter.NewState()
	widget := calendar.New(state, []string{"2026-04-15"}, now)
	widget.ClickDay("2026-04-15")

	var buf bytes.Buffer
	if err := WriteCalendar(&buf, widget, FormatText); err != nil {
		t.Fatalf("WriteCalendar() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"апрель 2026", "Пн", "[15]", "(10)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteNewEvents(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNewEvents(&buf, nil, FormatText); err != nil {
		t.Fatalf("WriteNewEvents() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No new events found.") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	added := []event.Event{{Title: "Концерт", Date: "2026-05-05", Location: "Филармония"}}
	if err := WriteNewEvents(&buf, added, FormatText); err != nil {
		t.Fatalf("WriteNewEvents() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "NEW: 05.05.2026 Концерт — Филармония") || !strings.Contains(out, "Total: 1 new events") {
		t.Errorf("output = %q", out)
	}
}
