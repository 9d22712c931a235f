package models

import "time"

type User struct {
	UserID     uint   `json:"UserID" gorm:"primaryKey"`
	UserName   string `json:"UserName"`
	FirstName  string `json:"FirstName"`
	LastName   string `json:"LastName"`
	Email      string `json:"Email" gorm:"unique"`
	Password   string `json:"-"`
	Permission string `json:"Permission"` // "admin" or "traveler"
	Status     int    `json:"Status" gorm:"default:1"`

	// Password-reset lifecycle: only the one-way hash is stored.
	ResetPasswordToken   *string    `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"CreatedAt"`
	UpdatedAt time.Time `json:"UpdatedAt"`

	TravelerDetail *TravelerDetail `gorm:"foreignKey:UserID" json:"travelerDetail,omitempty"`
}
