package model

// Location identifies where a flat is. LocationAll is only valid as a search filter.
type Location string

const (
	LocationKadri Location = "kadri"
	LocationBejai Location = "bejai"
	LocationAll   Location = "all"
)

// Locations lists the concrete locations in display order.
var Locations = []Location{LocationKadri, LocationBejai}

// Valid reports whether l is a concrete location.
func (l Location) Valid() bool {
	return l == LocationKadri || l == LocationBejai
}

// Title returns the display name, e.g. "Kadri".
func (l Location) Title() string {
	switch l {
	case LocationKadri:
		return "Kadri"
	case LocationBejai:
		return "Bejai"
	case LocationAll:
		return "All Locations"
	}
	return string(l)
}

// Flat is a rentable unit. ID is only unique within a Location.
type Flat struct {
	ID       string   `gorm:"primaryKey;size:16" json:"id"`
	Location Location `gorm:"primaryKey;size:16" json:"location"`
	Name     string   `gorm:"size:64;not null" json:"name"`
	Capacity int      `gorm:"not null" json:"capacity"`
}
