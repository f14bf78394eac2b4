package model

// CalendarEntry is the persisted form of one FlatDayStatus.
type CalendarEntry struct {
	Location   Location `gorm:"primaryKey;size:16"`
	Date       string   `gorm:"primaryKey;size:10"`
	FlatID     string   `gorm:"primaryKey;size:16"`
	Weekday    string   `gorm:"size:3;not null"`
	Available  bool     `gorm:"not null;index"`
	GuestCount int      `gorm:"not null"`
	GuestName  *string  `gorm:"size:64"`
	Amount     *int
}
