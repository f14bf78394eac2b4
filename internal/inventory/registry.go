package inventory

import "apartment-availability-backend/internal/model"

// Registry is the static list of flats, in display order.
type Registry struct {
	flats []model.Flat
}

// NewRegistry creates a registry from a copy of flats.
func NewRegistry(flats []model.Flat) Registry {
	return Registry{flats: append([]model.Flat(nil), flats...)}
}

// DefaultRegistry returns the flats of both locations.
func DefaultRegistry() Registry {
	return NewRegistry([]model.Flat{
		{ID: "101", Name: "Flat 101", Location: model.LocationKadri, Capacity: 3},
		{ID: "102", Name: "Flat 102", Location: model.LocationKadri, Capacity: 2},
		{ID: "201", Name: "Flat 201", Location: model.LocationKadri, Capacity: 4},
		{ID: "202", Name: "Flat 202", Location: model.LocationKadri, Capacity: 2},
		{ID: "302", Name: "Flat 302", Location: model.LocationKadri, Capacity: 3},
		{ID: "101", Name: "Flat 101", Location: model.LocationBejai, Capacity: 2},
		{ID: "102", Name: "Flat 102", Location: model.LocationBejai, Capacity: 3},
		{ID: "201", Name: "Flat 201", Location: model.LocationBejai, Capacity: 4},
		{ID: "202", Name: "Flat 202", Location: model.LocationBejai, Capacity: 2},
		{ID: "302", Name: "Flat 302", Location: model.LocationBejai, Capacity: 3},
	})
}

// All returns every flat.
func (r Registry) All() []model.Flat {
	return append([]model.Flat(nil), r.flats...)
}

// ByLocation returns the flats of loc. LocationAll returns every flat.
func (r Registry) ByLocation(loc model.Location) []model.Flat {
	if loc == model.LocationAll {
		return r.All()
	}
	var out []model.Flat
	for _, f := range r.flats {
		if f.Location == loc {
			out = append(out, f)
		}
	}
	return out
}

// Lookup finds a flat by location and id.
func (r Registry) Lookup(loc model.Location, id string) (model.Flat, bool) {
	for _, f := range r.flats {
		if f.Location == loc && f.ID == id {
			return f, true
		}
	}
	return model.Flat{}, false
}
