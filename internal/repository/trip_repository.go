package repository

import (
	"gorm.io/gorm"

	"trek_seeker/internal/models"
)

type GormTripRepository struct {
	db *gorm.DB
}

func NewGormTripRepository(db *gorm.DB) *GormTripRepository {
	return &GormTripRepository{db: db}
}

func (r *GormTripRepository) CreateWithDetails(trip *models.Trip, itineraries []models.Itinerary, hotels []models.HotelAssign) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Omit("City", "Itineraries", "HotelAssignments").Create(trip).Error; err != nil {
		tx.Rollback()
		return err
	}

	if len(itineraries) > 0 {
		for i := range itineraries {
			itineraries[i].TripID = trip.TripID
		}
		if err := tx.Omit("Destination").Create(&itineraries).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if len(hotels) > 0 {
		for i := range hotels {
			hotels[i].TripID = trip.TripID
		}
		if err := tx.Create(&hotels).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

func (r *GormTripRepository) ListByTraveler(travelerID uint) ([]models.Trip, error) {
	var trips []models.Trip
	if err := r.db.Where("traveler_id = ?", travelerID).
		Preload("City").
		Preload("Itineraries").
		Preload("Itineraries.Destination").
		Preload("HotelAssignments").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *GormTripRepository) FindByID(id uint) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.Preload("City").
		Preload("Itineraries").
		Preload("Itineraries.Destination").
		Preload("HotelAssignments").
		First(&trip, id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *GormTripRepository) FindBare(id uint) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.First(&trip, id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *GormTripRepository) Delete(trip *models.Trip) error {
	return r.db.Delete(trip).Error
}
