package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trek_seeker/internal/models"
	"trek_seeker/internal/repository"
)

type DestinationService struct {
	destinations repository.DestinationRepository
}

func NewDestinationService(destinations repository.DestinationRepository) *DestinationService {
	return &DestinationService{destinations: destinations}
}

type CreateDestinationInput struct {
	DestinationName string   `json:"DestinationName" binding:"required"`
	Description     string   `json:"Description"`
	Image           string   `json:"Image"`
	CityID          uint     `json:"CityID" binding:"required"`
	Latitude        *float64 `json:"Latitude" binding:"required"`
	Longitude       *float64 `json:"Longitude" binding:"required"`
	Ratings         float64  `json:"Ratings"`
	TimeSpent       float64  `json:"TimeSpent"`
}

type DestinationUpdate struct {
	DestinationName *string  `json:"DestinationName"`
	Description     *string  `json:"Description"`
	Image           *string  `json:"Image"`
	CityID          *uint    `json:"CityID"`
	Latitude        *float64 `json:"Latitude"`
	Longitude       *float64 `json:"Longitude"`
	Ratings         *float64 `json:"Ratings"`
	TimeSpent       *float64 `json:"TimeSpent"`
}

func applyDestinationUpdate(destination models.Destination, update DestinationUpdate) models.Destination {
	if update.DestinationName != nil {
		destination.DestinationName = *update.DestinationName
	}
	if update.Description != nil {
		destination.Description = *update.Description
	}
	if update.Image != nil {
		destination.Image = *update.Image
	}
	if update.CityID != nil {
		destination.CityID = *update.CityID
	}
	if update.Latitude != nil {
		destination.Latitude = *update.Latitude
	}
	if update.Longitude != nil {
		destination.Longitude = *update.Longitude
	}
	if update.Ratings != nil {
		destination.Ratings = *update.Ratings
	}
	if update.TimeSpent != nil {
		destination.TimeSpent = *update.TimeSpent
	}
	return destination
}

func (s *DestinationService) Create(input CreateDestinationInput) (*models.Destination, error) {
	destination := models.Destination{
		DestinationName: input.DestinationName,
		Description:     input.Description,
		Image:           input.Image,
		CityID:          input.CityID,
		Latitude:        *input.Latitude,
		Longitude:       *input.Longitude,
		Ratings:         input.Ratings,
		TimeSpent:       input.TimeSpent,
	}
	if err := s.destinations.Create(&destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

func (s *DestinationService) List(limit, page int) ([]models.Destination, int64, error) {
	return s.destinations.List(limit, (page-1)*limit)
}

func (s *DestinationService) Get(id uint) (*models.Destination, error) {
	destination, err := s.destinations.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("destination %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return destination, nil
}

func (s *DestinationService) Update(id uint, update DestinationUpdate) (*models.Destination, error) {
	destination, err := s.destinations.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("destination %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	merged := applyDestinationUpdate(*destination, update)
	merged.City = nil
	if err := s.destinations.Save(&merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *DestinationService) Delete(id uint) error {
	destination, err := s.destinations.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("destination %d: %w", id, ErrNotFound)
		}
		return err
	}
	return s.destinations.Delete(destination)
}
