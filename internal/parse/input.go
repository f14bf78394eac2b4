package parse

import (
	"fmt"
	"strings"
	"time"

	"apartment-availability-backend/internal/model"
)

// Date parses a YYYY-MM-DD calendar date as UTC midnight.
func Date(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", raw, err)
	}
	return d, nil
}

// Location parses a search location. An empty value means all locations.
func Location(raw string) (model.Location, error) {
	s := model.Location(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" || s == model.LocationAll {
		return model.LocationAll, nil
	}
	if !s.Valid() {
		return "", fmt.Errorf("unknown location: %q", raw)
	}
	return s, nil
}

// TagFlatID qualifies a flat id with its location, e.g. "kadri-101".
func TagFlatID(loc model.Location, id string) string {
	return string(loc) + "-" + id
}

// TaggedFlatID splits a location-qualified flat id such as "kadri-101".
func TaggedFlatID(raw string) (model.Location, string, error) {
	loc, id, ok := strings.Cut(strings.TrimSpace(raw), "-")
	if !ok || id == "" {
		return "", "", fmt.Errorf("flat id %q is not location-qualified", raw)
	}
	l := model.Location(strings.ToLower(loc))
	if !l.Valid() {
		return "", "", fmt.Errorf("unknown location in flat id %q", raw)
	}
	return l, id, nil
}
