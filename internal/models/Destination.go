package models

import (
	"time"

	"gorm.io/gorm"
)

type Destination struct {
	DestinationID   uint    `json:"DestinationID" gorm:"primaryKey"`
	DestinationName string  `json:"DestinationName"`
	Description     string  `json:"Description"`
	Image           string  `json:"Image"`
	CityID          uint    `json:"CityID" gorm:"index"`
	Latitude        float64 `json:"Latitude"`
	Longitude       float64 `json:"Longitude"`
	Ratings         float64 `json:"Ratings"`
	TimeSpent       float64 `json:"TimeSpent"` // typical visit duration in hours

	CreatedAt time.Time      `json:"CreatedAt"`
	UpdatedAt time.Time      `json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}
