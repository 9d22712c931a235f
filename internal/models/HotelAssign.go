package models

import "time"

// HotelAssign binds a trip day to an external place id. Live details are
// fetched from the places provider at read time, never stored.
type HotelAssign struct {
	AssignmentID uint   `json:"AssignmentID" gorm:"primaryKey"`
	TripID       uint   `json:"TripID" gorm:"index"`
	DayNumber    int    `json:"DayNumber"`
	HotelID      string `json:"HotelID"` // opaque place id from the places API

	CreatedAt time.Time `json:"CreatedAt"`
}
