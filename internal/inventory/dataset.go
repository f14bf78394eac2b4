package inventory

import (
	"time"

	"apartment-availability-backend/internal/model"
)

// Dataset is the generated availability of every location. It is built once
// and never modified; the DayAvailability values it hands out share their
// FlatAvailability maps and must be treated as read-only.
type Dataset struct {
	registry Registry
	days     map[model.Location][]model.DayAvailability
	index    map[model.Location]map[string]int
}

// Build generates a calendar for every location of the registry.
func Build(reg Registry, gen *Generator, start time.Time) *Dataset {
	days := make(map[model.Location][]model.DayAvailability, len(model.Locations))
	for _, loc := range model.Locations {
		days[loc] = gen.Generate(reg.ByLocation(loc), start)
	}
	return NewDataset(reg, days)
}

// NewDataset wraps already generated calendars.
func NewDataset(reg Registry, days map[model.Location][]model.DayAvailability) *Dataset {
	ds := &Dataset{
		registry: reg,
		days:     make(map[model.Location][]model.DayAvailability, len(days)),
		index:    make(map[model.Location]map[string]int, len(days)),
	}
	for loc, list := range days {
		ds.days[loc] = append([]model.DayAvailability(nil), list...)
		idx := make(map[string]int, len(list))
		for i, d := range list {
			idx[d.Date] = i
		}
		ds.index[loc] = idx
	}
	return ds
}

// Registry returns the flats the dataset was built for.
func (d *Dataset) Registry() Registry {
	return d.registry
}

// Days returns the calendar of loc in date order.
func (d *Dataset) Days(loc model.Location) []model.DayAvailability {
	return append([]model.DayAvailability(nil), d.days[loc]...)
}

// Day returns the availability of loc on date, if the date was generated.
func (d *Dataset) Day(loc model.Location, date time.Time) (model.DayAvailability, bool) {
	i, ok := d.index[loc][date.Format(time.DateOnly)]
	if !ok {
		return model.DayAvailability{}, false
	}
	return d.days[loc][i], true
}
