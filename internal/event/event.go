package event

import (
	"strconv"
	"strings"
)

// Event represents one culture event from the city dataset.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"` // YYYY-MM-DD, always populated
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Address     string `json:"address,omitempty"`
	Category    string `json:"category,omitempty"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`
	Cost        string `json:"cost,omitempty"`        // raw source text, e.g. "10 р" or "Бесплатно"
	Coordinates string `json:"coordinates,omitempty"` // raw "lat,lng" pair
}

// Coordinates is a parsed latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Key returns the exact string key used to cluster map markers.
// Matching is byte-for-byte on the formatted floats; there is no
// proximity tolerance.
func (c Coordinates) Key() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Coords parses the raw coordinate field. The second return is false when
// either component is missing, unparsable, or zero; such events are valid
// for the list view but excluded from the map.
func (e *Event) Coords() (Coordinates, bool) {
	parts := strings.SplitN(e.Coordinates, ",", 2)
	if len(parts) != 2 {
		return Coordinates{}, false
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLng != nil || lat == 0 || lng == 0 {
		return Coordinates{}, false
	}
	return Coordinates{Lat: lat, Lng: lng}, true
}

// CapitalizeFirst upper-cases the first letter and lower-cases the rest.
// Display-only; stored category text is never mutated.
func CapitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
