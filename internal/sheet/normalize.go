package sheet

import (
	"time"

	"github.com/kulevich/minsk-afisha/internal/event"
)

// Source column headers, exact and case-sensitive as published in the sheet.
const (
	HeaderTitle       = "Название"
	HeaderDescription = "Краткое описание"
	HeaderDate        = "Дата"
	HeaderTime        = "Время"
	HeaderLocation    = "Место"
	HeaderCategory    = "Жанр"
	HeaderImage       = "Фото"
	HeaderAddress     = "Адрес"
	HeaderCoordinates = "Координаты"
	HeaderCost        = "Стоимость"
	HeaderLink        = "Ссылка"
)

// fieldMap is the explicit header-to-field contract. A renamed or missing
// source column shows up here, not in scattered dynamic lookups.
var fieldMap = map[string]func(*event.Event, string){
	HeaderTitle:       func(e *event.Event, v string) { e.Title = v },
	HeaderDescription: func(e *event.Event, v string) { e.Description = v },
	HeaderTime:        func(e *event.Event, v string) { e.Time = v },
	HeaderLocation:    func(e *event.Event, v string) { e.Location = v },
	HeaderCategory:    func(e *event.Event, v string) { e.Category = v },
	HeaderImage:       func(e *event.Event, v string) { e.Image = v },
	HeaderAddress:     func(e *event.Event, v string) { e.Address = v },
	HeaderCoordinates: func(e *event.Event, v string) { e.Coordinates = v },
	HeaderCost:        func(e *event.Event, v string) { e.Cost = v },
	HeaderLink:        func(e *event.Event, v string) { e.Link = v },
}

// Normalize maps the raw table into typed Event records. Rows without a
// title are dropped silently. IDs are 1-based positions in the kept list,
// stable only within this one normalization pass. The date column is parsed
// against now's calendar year.
func Normalize(t *Table, now time.Time) ([]event.Event, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	events := make([]event.Event, 0, len(t.Rows))
	for _, row := range t.Rows {
		var e event.Event
		var rawDate string
		for i, header := range t.Headers {
			v := cell(row, i)
			if header == HeaderDate {
				rawDate = v
				continue
			}
			if assign, ok := fieldMap[header]; ok {
				assign(&e, v)
			}
		}
		if e.Title == "" {
			continue
		}
		e.Date = event.ParseLocaleDate(rawDate, now)
		e.ID = len(events) + 1
		events = append(events, e)
	}
	return events, nil
}

// MapEvents narrows a normalized collection to events carrying usable
// coordinates, for the map view. Events with missing, unparsable, or zero
// components are excluded here but remain valid in the list view.
func MapEvents(events []event.Event) []event.Event {
	var out []event.Event
	for _, e := range events {
		if _, ok := e.Coords(); ok {
			out = append(out, e)
		}
	}
	return out
}
