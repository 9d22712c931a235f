package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trek_seeker/internal/models"
	"trek_seeker/internal/repository"
)

type CityService struct {
	cities repository.CityRepository
}

func NewCityService(cities repository.CityRepository) *CityService {
	return &CityService{cities: cities}
}

type CreateCityInput struct {
	CityName        string  `json:"CityName" binding:"required"`
	CityDescription string  `json:"CityDescription"`
	CityLatitude    float64 `json:"CityLatitude"`
	CityLongitude   float64 `json:"CityLongitude"`
	CityImage       string  `json:"CityImage"`
}

type CityUpdate struct {
	CityName        *string  `json:"CityName"`
	CityDescription *string  `json:"CityDescription"`
	CityLatitude    *float64 `json:"CityLatitude"`
	CityLongitude   *float64 `json:"CityLongitude"`
	CityImage       *string  `json:"CityImage"`
}

func applyCityUpdate(city models.City, update CityUpdate) models.City {
	if update.CityName != nil {
		city.CityName = *update.CityName
	}
	if update.CityDescription != nil {
		city.CityDescription = *update.CityDescription
	}
	if update.CityLatitude != nil {
		city.CityLatitude = *update.CityLatitude
	}
	if update.CityLongitude != nil {
		city.CityLongitude = *update.CityLongitude
	}
	if update.CityImage != nil {
		city.CityImage = *update.CityImage
	}
	return city
}

// Create fails with ErrAlreadyExists when the name is taken; nothing is
// inserted in that case.
func (s *CityService) Create(input CreateCityInput) (*models.City, error) {
	if _, err := s.cities.FindByName(input.CityName); err == nil {
		return nil, fmt.Errorf("city %q: %w", input.CityName, ErrAlreadyExists)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	city := models.City{
		CityName:        input.CityName,
		CityDescription: input.CityDescription,
		CityLatitude:    input.CityLatitude,
		CityLongitude:   input.CityLongitude,
		CityImage:       input.CityImage,
	}
	if err := s.cities.Create(&city); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("city %q: %w", input.CityName, ErrAlreadyExists)
		}
		return nil, err
	}
	return &city, nil
}

func (s *CityService) List(limit, page int) ([]models.City, int64, error) {
	return s.cities.List(limit, (page-1)*limit)
}

func (s *CityService) Get(id uint) (*models.City, error) {
	city, err := s.cities.FindByIDWithDestinations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("city %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return city, nil
}

func (s *CityService) Update(id uint, update CityUpdate) (*models.City, error) {
	city, err := s.cities.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("city %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	merged := applyCityUpdate(*city, update)
	if err := s.cities.Save(&merged); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("city name: %w", ErrAlreadyExists)
		}
		return nil, err
	}
	return &merged, nil
}

func (s *CityService) Delete(id uint) error {
	city, err := s.cities.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("city %d: %w", id, ErrNotFound)
		}
		return err
	}
	return s.cities.Delete(city)
}
