package repository

import (
	"time"

	"trek_seeker/internal/models"
)

// Repositories own persistence, including the transactional boundaries of
// multi-table writes. Services operate on these interfaces only, so they can
// be exercised against in-memory fakes.

type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	FindByResetToken(hashedToken string, now time.Time) (*models.User, error)
	List(limit, offset int) ([]models.User, int64, error)
	Save(user *models.User) error
	// Deactivate flips the user's status to 0 and cascades to a linked
	// traveler profile in the same transaction.
	Deactivate(user *models.User) error
}

type TravelerRepository interface {
	// Register inserts the login row and the traveler profile as one unit.
	Register(user *models.User, detail *models.TravelerDetail) error
	FindByID(id uint) (*models.TravelerDetail, error)
	FindActiveByID(id uint) (*models.TravelerDetail, error)
	List(limit, offset int) ([]models.TravelerDetail, int64, error)
	ListAll() ([]models.TravelerDetail, error)
	// SaveWithUser persists profile and login rows in one transaction.
	SaveWithUser(detail *models.TravelerDetail, user *models.User) error
	// Deactivate flips the profile's status to 0 and cascades to the owning
	// user in the same transaction.
	Deactivate(detail *models.TravelerDetail) error
}

type CityRepository interface {
	Create(city *models.City) error
	FindByName(name string) (*models.City, error)
	FindByID(id uint) (*models.City, error)
	FindByIDWithDestinations(id uint) (*models.City, error)
	List(limit, offset int) ([]models.City, int64, error)
	Save(city *models.City) error
	Delete(city *models.City) error
}

type DestinationRepository interface {
	Create(destination *models.Destination) error
	FindByID(id uint) (*models.Destination, error)
	FindByName(name string) (*models.Destination, error)
	List(limit, offset int) ([]models.Destination, int64, error)
	Save(destination *models.Destination) error
	Delete(destination *models.Destination) error
}

type TripRepository interface {
	// CreateWithDetails inserts the trip, its itinerary rows and its hotel
	// assignments all-or-nothing.
	CreateWithDetails(trip *models.Trip, itineraries []models.Itinerary, hotels []models.HotelAssign) error
	ListByTraveler(travelerID uint) ([]models.Trip, error)
	FindByID(id uint) (*models.Trip, error)
	FindBare(id uint) (*models.Trip, error)
	Delete(trip *models.Trip) error
}

// Dashboard rollup rows.

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type GenderCount struct {
	Gender *string `json:"Gender"`
	Count  int64   `json:"count"`
}

type CountryCount struct {
	Country string `json:"Country"`
	Count   int64  `json:"count"`
}

type PopularCity struct {
	CityID    uint   `json:"CityID"`
	TripCount int64  `json:"tripCount"`
	CityName  string `json:"CityName"`
}

type StatsRepository interface {
	TravelerUserCount() (int64, error)
	TravelerUserCountByStatus(status int) (int64, error)
	SignUpsByMonth() ([]MonthCount, error)
	TravelersByGender() ([]GenderCount, error)
	TravelersByCountry() ([]CountryCount, error)
	TripCount() (int64, error)
	// MostPopularCity returns nil when no trips exist. Ties break on the
	// lowest city id.
	MostPopularCity() (*PopularCity, error)
}
