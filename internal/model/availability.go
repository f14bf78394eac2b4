package model

// FlatDayStatus is the state of one flat on one day.
// GuestCount, GuestName and Amount describe the placeholder occupant and are
// only set when Available is false.
type FlatDayStatus struct {
	Available  bool    `json:"available"`
	GuestCount int     `json:"guestCount"`
	GuestName  *string `json:"guestName,omitempty"`
	Amount     *int    `json:"amount,omitempty"`
}

// DayAvailability holds the status of every flat of a location for one date.
type DayAvailability struct {
	Date             string                   `json:"date"` // YYYY-MM-DD
	Day              string                   `json:"day"`  // Mon, Tue, ...
	FlatAvailability map[string]FlatDayStatus `json:"flatAvailability"`
}
