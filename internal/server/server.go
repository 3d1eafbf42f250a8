// Package server exposes the engine's derived views as a read-only JSON
// API, the boundary a page shell consumes.
//
// The collection is fetched once at process start and held in memory, the
// same lifecycle as a page mount; every request recomputes its view
// synchronously from that collection.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kulevich/minsk-afisha/internal/calendar"
	"github.com/kulevich/minsk-afisha/internal/event"
	"github.com/kulevich/minsk-afisha/internal/filter"
	"github.com/kulevich/minsk-afisha/internal/geo"
	"github.com/kulevich/minsk-afisha/internal/logger"
	"github.com/kulevich/minsk-afisha/internal/sheet"
	"github.com/kulevich/minsk-afisha/internal/view"
)

// Server serves the list, map, and calendar views of one loaded collection.
type Server struct {
	events []event.Event
	now    func() time.Time
	router *mux.Router
}

// New creates a Server over a normalized collection. now is injected so
// tests can fix the clock.
func New(events []event.Event, now func() time.Time) *Server {
	s := &Server{
		events: events,
		now:    now,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/events", s.handleEvents).Methods(http.MethodGet)
	s.router.HandleFunc("/api/map", s.handleMap).Methods(http.MethodGet)
	s.router.HandleFunc("/api/calendar", s.handleCalendar).Methods(http.MethodGet)
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// eventsResponse is the list-view payload: one pagination window plus the
// metadata and option lists the controls need.
type eventsResponse struct {
	Events      []event.Event   `json:"events"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
	PageItems   []view.PageItem `json:"page_items"`
	Dates       []string        `json:"dates"`
	Categories  []string        `json:"categories"`
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	state := filter.NewState()
	state.SetSearchTerm(q.Get("search"))
	state.SetDate(q.Get("date"))
	state.SetCategory(q.Get("category"))
	if p := q.Get("price"); p != "" {
		state.SetPriceRange(filter.PriceRange(p))
	}

	today := s.now().Format(event.ISODate)
	filtered := state.Apply(s.events, today)
	sorted := view.SortByDate(filtered)

	page := 1
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		page = n
	}
	window := view.Paginate(sorted, page)

	writeJSON(w, eventsResponse{
		Events:      window.Events,
		CurrentPage: window.CurrentPage,
		TotalPages:  window.TotalPages,
		PageItems:   view.PageItems(window.CurrentPage, window.TotalPages),
		Dates:       filter.Dates(s.events),
		Categories:  filter.Categories(s.events),
	})
}

// mapCluster pairs a cluster with its rendered marker content.
type mapCluster struct {
	Key         string            `json:"key"`
	Coordinates event.Coordinates `json:"coordinates"`
	Events      []event.Event     `json:"events"`
	Marker      geo.Marker        `json:"marker"`
}

type mapResponse struct {
	Date     string       `json:"date"`
	Clusters []mapCluster `json:"clusters"`
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	today := s.now().Format(event.ISODate)
	selected := r.URL.Query().Get("date")

	visible := geo.ForDate(sheet.MapEvents(s.events), selected, today)

	resp := mapResponse{Date: selected}
	if resp.Date == "" {
		resp.Date = today
	}
	for _, c := range geo.Group(visible) {
		resp.Clusters = append(resp.Clusters, mapCluster{
			Key:         c.Key,
			Coordinates: c.Coordinates,
			Events:      c.Events,
			Marker:      c.Marker(),
		})
	}
	writeJSON(w, resp)
}

type calendarResponse struct {
	MonthTitle string         `json:"month_title"`
	Weekdays   []string       `json:"weekdays"`
	Days       []calendar.Day `json:"days"`
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := s.now()

	state := filter.NewState()
	state.SetDate(q.Get("selected"))

	widget := calendar.New(state, filter.Dates(s.events), now)

	// Cursor to the requested month through the widget's own transitions.
	if m, err := time.Parse("2006-01", q.Get("month")); err == nil {
		for widget.CurrentMonth().Before(m) {
			widget.NextMonth()
		}
		for widget.CurrentMonth().After(m) {
			widget.PrevMonth()
		}
	}

	writeJSON(w, calendarResponse{
		MonthTitle: widget.MonthTitle(),
		Weekdays:   calendar.Weekdays(),
		Days:       widget.Days(),
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("writing response", nil, err)
	}
}
