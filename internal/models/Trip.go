package models

import (
	"time"

	"gorm.io/gorm"
)

// Trip owns its itinerary and hotel-assignment rows. Deleting a trip is a
// soft delete; the owned rows stay in place under the deleted parent.
type Trip struct {
	TripID     uint      `json:"TripID" gorm:"primaryKey"`
	CityID     uint      `json:"CityID" gorm:"index"`
	TripName   string    `json:"TripName"`
	StartDate  time.Time `json:"StartDate" gorm:"type:date"`
	EndDate    time.Time `json:"EndDate" gorm:"type:date"`
	Duration   int       `json:"Duration"` // inclusive day count
	TravelerID uint      `json:"TravelerID" gorm:"index"`

	CreatedAt time.Time      `json:"CreatedAt"`
	UpdatedAt time.Time      `json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	City             *City         `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Itineraries      []Itinerary   `gorm:"foreignKey:TripID" json:"itineraries,omitempty"`
	HotelAssignments []HotelAssign `gorm:"foreignKey:TripID" json:"hotelAssignments,omitempty"`
}
