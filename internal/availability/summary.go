package availability

import (
	"slices"
	"time"

	"apartment-availability-backend/internal/inventory"
	"apartment-availability-backend/internal/model"
	"apartment-availability-backend/internal/parse"
)

// FlatSummary is one card of the results page.
type FlatSummary struct {
	Key            string // id as returned by Search
	Flat           model.Flat
	AvailableDates []time.Time
	OnTargetDate   bool
}

// Summary groups a Result by flat.
type Summary struct {
	Location   model.Location
	TargetDate time.Time
	GuestCount int
	From, To   time.Time
	Flats      []FlatSummary
}

// Empty reports whether nothing was found in the whole window.
func (s Summary) Empty() bool {
	return len(s.Flats) == 0
}

// Summarize resolves the flats of res against the registry of ds. Ids that do
// not resolve to a registered flat are skipped.
func Summarize(ds *inventory.Dataset, res Result) Summary {
	s := Summary{
		Location:   res.Request.Location,
		TargetDate: res.Request.Date,
		GuestCount: res.Request.GuestCount,
	}
	if len(res.Days) > 0 {
		s.From = res.Days[0].Date
		s.To = res.Days[len(res.Days)-1].Date
	}

	reg := ds.Registry()
	for _, key := range res.FlatIDs() {
		flat, ok := resolve(reg, res.Request.Location, key)
		if !ok {
			continue
		}

		fs := FlatSummary{Key: key, Flat: flat}
		for _, day := range res.Days {
			if !slices.Contains(day.AvailableFlats, key) {
				continue
			}
			fs.AvailableDates = append(fs.AvailableDates, day.Date)
			if day.Date.Equal(res.Request.Date) {
				fs.OnTargetDate = true
			}
		}
		s.Flats = append(s.Flats, fs)
	}
	return s
}

func resolve(reg inventory.Registry, loc model.Location, key string) (model.Flat, bool) {
	if loc != model.LocationAll {
		return reg.Lookup(loc, key)
	}
	l, id, err := parse.TaggedFlatID(key)
	if err != nil {
		return model.Flat{}, false
	}
	return reg.Lookup(l, id)
}
