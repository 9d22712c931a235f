package models

import (
	"time"

	"gorm.io/gorm"
)

type City struct {
	CityID          uint    `json:"CityID" gorm:"primaryKey"`
	CityName        string  `json:"CityName" gorm:"unique"`
	CityDescription string  `json:"CityDescription"`
	CityLatitude    float64 `json:"CityLatitude"`
	CityLongitude   float64 `json:"CityLongitude"`
	CityImage       string  `json:"CityImage"`

	CreatedAt time.Time      `json:"CreatedAt"`
	UpdatedAt time.Time      `json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Destinations []Destination `gorm:"foreignKey:CityID" json:"destinations,omitempty"`
}
