package models

import "time"

// Itinerary is one scheduled visit within a trip. Rows have no independent
// lifecycle; they are inserted with the trip and replaced by recreating it.
type Itinerary struct {
	ItineraryID   uint   `json:"ItineraryID" gorm:"primaryKey"`
	TripID        uint   `json:"TripID" gorm:"index"`
	DayNumber     int    `json:"DayNumber"`
	DestinationID uint   `json:"DestinationID"`
	OrderNumber   int    `json:"OrderNumber"`
	TimeFrom      string `json:"TimeFrom"`
	TimeTo        string `json:"TimeTo"`

	CreatedAt time.Time `json:"CreatedAt"`

	Destination *Destination `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
}
