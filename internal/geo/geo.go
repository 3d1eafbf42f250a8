// Package geo partitions map-view events into marker clusters.
//
// Clustering is by the exact coordinate key: two events share a marker only
// when their parsed latitude/longitude pairs format identically. There is
// no proximity tolerance. Clusters are ordered by first occurrence.
package geo

import (
	"fmt"
	"strings"

	"github.com/kulevich/minsk-afisha/internal/event"
)

// Cluster is one map marker: every event standing at the same exact
// coordinate, in input order.
type Cluster struct {
	Key         string            `json:"key"`
	Coordinates event.Coordinates `json:"coordinates"`
	Events      []event.Event     `json:"events"`
}

// Marker is the content payload a marker renders.
type Marker struct {
	Header string `json:"header"`
	Body   string `json:"body"`
	Hint   string `json:"hint"`
}

// ForDate narrows events to the map's single visible day: the selected
// date, or today when nothing is chosen. Defaulting to today keeps past
// events off the map without a separate predicate.
func ForDate(events []event.Event, selectedDate, today string) []event.Event {
	date := selectedDate
	if date == "" {
		date = today
	}
	var out []event.Event
	for _, e := range events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// Group clusters events by exact coordinate key, insertion-ordered by first
// occurrence. Events whose coordinates do not parse are skipped; the map
// collection should already have dropped them.
func Group(events []event.Event) []Cluster {
	index := make(map[string]int)
	var clusters []Cluster
	for _, e := range events {
		coords, ok := e.Coords()
		if !ok {
			continue
		}
		key := coords.Key()
		if i, seen := index[key]; seen {
			clusters[i].Events = append(clusters[i].Events, e)
			continue
		}
		index[key] = len(clusters)
		clusters = append(clusters, Cluster{
			Key:         key,
			Coordinates: coords,
			Events:      []event.Event{e},
		})
	}
	return clusters
}

// Marker composes the balloon content for the cluster. A combined marker
// lists every event's title, time, and location; a single marker shows the
// event's own location and address.
func (c *Cluster) Marker() Marker {
	first := c.Events[0]

	if len(c.Events) > 1 {
		header := fmt.Sprintf("Мероприятия (%d)", len(c.Events))
		var lines []string
		for _, e := range c.Events {
			lines = append(lines, fmt.Sprintf("%s\n%s — %s", e.Title, e.Time, e.Location))
		}
		return Marker{
			Header: header,
			Body:   strings.Join(lines, "\n\n"),
			Hint:   header,
		}
	}

	return Marker{
		Header: first.Title,
		Body:   fmt.Sprintf("%s\n%s", first.Location, first.Address),
		Hint:   first.Title,
	}
}
