package model

import "time"

// SearchRecord logs a submitted search.
type SearchRecord struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Location        Location  `gorm:"size:16;not null" json:"location"`
	TargetDate      string    `gorm:"size:10;not null" json:"targetDate"`
	GuestCount      int       `gorm:"not null" json:"guestCount"`
	FlexibilityDays int       `gorm:"not null" json:"flexibilityDays"`
	MatchedFlats    int       `gorm:"not null" json:"matchedFlats"`
	CreatedAt       time.Time `gorm:"not null;index" json:"createdAt"`
}
