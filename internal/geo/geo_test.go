package geo

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kulevich/minsk-afisha/internal/event"
)

func TestForDate(t *testing.T) {
	events := []event.Event{
		{Title: "Сегодня", Date: "2026-04-10"},
		{Title: "Завтра", Date: "2026-04-11"},
	}

	got := ForDate(events, "2026-04-11", "2026-04-10")
	if len(got) != 1 || got[0].Title != "Завтра" {
		t.Errorf("ForDate(selected) = %v", got)
	}

	// No selection defaults to today.
	got = ForDate(events, "", "2026-04-10")
	if len(got) != 1 || got[0].Title != "Сегодня" {
		t.Errorf("ForDate(default today) = %v", got)
	}

	if got := ForDate(events, "2026-07-01", "2026-04-10"); len(got) != 0 {
		t.Errorf("ForDate(no events that day) = %v, want empty", got)
	}
}

func TestGroup(t *testing.T) {
	events := []event.Event{
		{ID: 1, Title: "Концерт", Coordinates: "53.9,27.5"},
		{ID: 2, Title: "Выставка", Coordinates: "53.8,27.4"},
		{ID: 3, Title: "Спектакль", Coordinates: "53.9,27.5"},
	}

	clusters := Group(events)
	if len(clusters) != 2 {
		t.Fatalf("Group() returned %d clusters, want 2", len(clusters))
	}

	// Insertion order by first occurrence.
	if clusters[0].Key != "53.9,27.5" || clusters[1].Key != "53.8,27.4" {
		t.Errorf("cluster order = [%s, %s]", clusters[0].Key, clusters[1].Key)
	}

	var ids []int
	for _, e := range clusters[0].Events {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []int{1, 3}) {
		t.Errorf("first cluster events = %v, want [1 3]", ids)
	}
	if len(clusters[1].Events) != 1 {
		t.Errorf("second cluster has %d events, want 1", len(clusters[1].Events))
	}
}

func TestGroupSkipsZeroCoordinates(t *testing.T) {
	events := []event.Event{
		{ID: 1, Title: "Нулевая широта", Coordinates: "0,27.5"},
		{ID: 2, Title: "Нулевая долгота", Coordinates: "53.9,0"},
		{ID: 3, Title: "Без координат", Coordinates: ""},
	}
	if clusters := Group(events); len(clusters) != 0 {
		t.Errorf("Group() = %v, want no clusters", clusters)
	}
}

func TestGroupExactMatchOnly(t *testing.T) {
	// Nearly identical coordinates stay separate: no tolerance.
	events := []event.Event{
		{ID: 1, Coordinates: "53.90000,27.5"},
		{ID: 2, Coordinates: "53.90001,27.5"},
	}
	if clusters := Group(events); len(clusters) != 2 {
		t.Errorf("Group() returned %d clusters, want 2", len(clusters))
	}
}

func TestMarkerSingle(t *testing.T) {
	clusters := Group([]event.Event{
		{Title: "Концерт", Location: "Филармония", Address: "пр. Независимости 50", Coordinates: "53.9,27.5"},
	})
	m := clusters[0].Marker()

	if m.Header != "Концерт" || m.Hint != "Концерт" {
		t.Errorf("single marker header/hint = %q/%q", m.Header, m.Hint)
	}
	if m.Body != "Филармония\nпр. Независимости 50" {
		t.Errorf("single marker body = %q", m.Body)
	}
}

func TestMarkerCombined(t *testing.T) {
	clusters := Group([]event.Event{
		{Title: "Концерт", Time: "19:00", Location: "Филармония", Coordinates: "53.9,27.5"},
		{Title: "Лекция", Time: "17:00", Location: "Филармония", Coordinates: "53.9,27.5"},
	})
	m := clusters[0].Marker()

	if m.Header != "Мероприятия (2)" || m.Hint != "Мероприятия (2)" {
		t.Errorf("combined marker header/hint = %q/%q", m.Header, m.Hint)
	}
	for _, want := range []string{"Концерт", "19:00 — Филармония", "Лекция", "17:00 — Филармония"} {
		if !strings.Contains(m.Body, want) {
			t.Errorf("combined marker body missing %q: %q", want, m.Body)
		}
	}
}
