package models

import "time"

// TravelerDetail is the traveler-facing profile owned by a User.
// Deactivation flips Status rather than removing the row.
type TravelerDetail struct {
	TravelerID uint    `json:"TravelerID" gorm:"primaryKey"`
	FirstName  string  `json:"FirstName"`
	LastName   string  `json:"LastName"`
	Country    string  `json:"Country"`
	Gender     *string `json:"Gender"` // "male", "female", "other" or nil
	Status     int     `json:"Status" gorm:"default:1"`
	UserID     uint    `json:"UserID" gorm:"index"`

	CreatedAt time.Time `json:"CreatedAt"`
	UpdatedAt time.Time `json:"UpdatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
