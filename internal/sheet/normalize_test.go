package sheet

import (
	"errors"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, time.April, 10, 9, 0, 0, 0, time.UTC)

func testHeaders() []string {
	return []string{
		HeaderTitle, HeaderDescription, HeaderDate, HeaderTime, HeaderLocation,
		HeaderCategory, HeaderImage, HeaderAddress, HeaderCoordinates, HeaderCost, HeaderLink,
	}
}

func TestNormalize(t *testing.T) {
	table := &Table{
		Headers: testHeaders(),
		Rows: [][]string{
			{"Концерт", "описание", "5 мая", "19:00", "Филармония", "концерт", "", "пр. Независимости 50", "53.9,27.5", "Бесплатно", ""},
			{"", "без названия", "6 мая"},
			{"Выставка", "", "5 мая", "10:00", "Музей", "выставка", "", "", "", "15 р", ""},
		},
	}

	events, err := Normalize(table, fixedNow)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("Normalize() kept %d events, want 2", len(events))
	}

	first := events[0]
	if first.ID != 1 || first.Title != "Концерт" || first.Date != "2026-05-05" {
		t.Errorf("first event = %+v, want ID 1, title Концерт, date 2026-05-05", first)
	}
	if first.Location != "Филармония" || first.Cost != "Бесплатно" || first.Coordinates != "53.9,27.5" {
		t.Errorf("first event fields not mapped: %+v", first)
	}

	second := events[1]
	if second.ID != 2 || second.Title != "Выставка" || second.Date != "2026-05-05" {
		t.Errorf("second event = %+v, want ID 2, title Выставка, date 2026-05-05", second)
	}
}

func TestNormalizeRaggedRow(t *testing.T) {
	table := &Table{
		Headers: testHeaders(),
		Rows: [][]string{
			{"Спектакль"}, // every other cell missing
		},
	}

	events, err := Normalize(table, fixedNow)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Normalize() kept %d events, want 1", len(events))
	}

	e := events[0]
	if e.Description != "" || e.Time != "" || e.Cost != "" {
		t.Errorf("missing cells should read empty, got %+v", e)
	}
	if e.Date != "2026-04-10" {
		t.Errorf("missing date should default to current date, got %q", e.Date)
	}
}

func TestNormalizeUnknownColumnIgnored(t *testing.T) {
	table := &Table{
		Headers: []string{HeaderTitle, "Неожиданная колонка", HeaderDate},
		Rows: [][]string{
			{"Концерт", "мусор", "5 мая"},
		},
	}

	events, err := Normalize(table, fixedNow)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(events) != 1 || events[0].Date != "2026-05-05" {
		t.Errorf("Normalize() = %+v, want one event dated 2026-05-05", events)
	}
}

func TestNormalizeNoData(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
	}{
		{name: "nil table", table: nil},
		{name: "headers only", table: &Table{Headers: testHeaders()}},
		{name: "rows without headers", table: &Table{Rows: [][]string{{"x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Normalize(tt.table, fixedNow); !errors.Is(err, ErrNoData) {
				t.Errorf("Normalize() error = %v, want ErrNoData", err)
			}
		})
	}
}

func TestMapEvents(t *testing.T) {
	table := &Table{
		Headers: []string{HeaderTitle, HeaderCoordinates},
		Rows: [][]string{
			{"С координатами", "53.9,27.5"},
			{"Нулевая широта", "0,27.5"},
			{"Без координат", ""},
			{"Мусор", "abc"},
		},
	}

	events, err := Normalize(table, fixedNow)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	mapped := MapEvents(events)
	if len(mapped) != 1 {
		t.Fatalf("MapEvents() kept %d events, want 1", len(mapped))
	}
	if mapped[0].Title != "С координатами" {
		t.Errorf("MapEvents() kept %q", mapped[0].Title)
	}
}
