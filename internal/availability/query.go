// Package availability answers "which flats are free around this date" over a
// generated inventory.Dataset.
package availability

import (
	"time"

	"apartment-availability-backend/internal/inventory"
	"apartment-availability-backend/internal/model"
	"apartment-availability-backend/internal/parse"
)

// DefaultFlexibilityDays is the ± margin used by the search form.
const DefaultFlexibilityDays = 2

// Request describes a search. GuestCount is not validated here.
type Request struct {
	Location        model.Location
	Date            time.Time
	GuestCount      int
	FlexibilityDays int
}

// Day lists the flats free on one date of the window.
type Day struct {
	Date           time.Time
	AvailableFlats []string
}

// Result is the answer to a Request: one Day per date of the window, in order.
type Result struct {
	Request Request
	Days    []Day
}

// Search evaluates req against ds. Dates outside the generated range have no
// free flats. For LocationAll the ids are location-qualified ("kadri-101").
func Search(ds *inventory.Dataset, req Request) Result {
	req.Date = dateOnly(req.Date)
	req.FlexibilityDays = max(req.FlexibilityDays, 0)

	start := req.Date.AddDate(0, 0, -req.FlexibilityDays)
	days := make([]Day, 0, 2*req.FlexibilityDays+1)
	for i := 0; i <= 2*req.FlexibilityDays; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, Day{
			Date:           date,
			AvailableFlats: availableOn(ds, req.Location, date, req.GuestCount),
		})
	}
	return Result{Request: req, Days: days}
}

func availableOn(ds *inventory.Dataset, loc model.Location, date time.Time, guests int) []string {
	if loc != model.LocationAll {
		return freeFlats(ds, loc, date, guests)
	}

	ids := []string{}
	for _, l := range model.Locations {
		for _, id := range freeFlats(ds, l, date, guests) {
			ids = append(ids, parse.TagFlatID(l, id))
		}
	}
	return ids
}

func freeFlats(ds *inventory.Dataset, loc model.Location, date time.Time, guests int) []string {
	ids := []string{}
	day, ok := ds.Day(loc, date)
	if !ok {
		return ids
	}
	for _, flat := range ds.Registry().ByLocation(loc) {
		status, ok := day.FlatAvailability[flat.ID]
		if ok && status.Available && flat.Capacity >= guests {
			ids = append(ids, flat.ID)
		}
	}
	return ids
}

// FlatIDs returns every flat free on at least one day, in first-seen order.
func (r Result) FlatIDs() []string {
	seen := make(map[string]struct{})
	ids := []string{}
	for _, day := range r.Days {
		for _, id := range day.AvailableFlats {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// Empty reports whether no flat is free anywhere in the window.
func (r Result) Empty() bool {
	for _, day := range r.Days {
		if len(day.AvailableFlats) > 0 {
			return false
		}
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
