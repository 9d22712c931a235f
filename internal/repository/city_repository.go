package repository

import (
	"gorm.io/gorm"

	"trek_seeker/internal/models"
)

type GormCityRepository struct {
	db *gorm.DB
}

func NewGormCityRepository(db *gorm.DB) *GormCityRepository {
	return &GormCityRepository{db: db}
}

func (r *GormCityRepository) Create(city *models.City) error {
	return r.db.Create(city).Error
}

func (r *GormCityRepository) FindByName(name string) (*models.City, error) {
	var city models.City
	if err := r.db.Where("city_name = ?", name).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *GormCityRepository) FindByID(id uint) (*models.City, error) {
	var city models.City
	if err := r.db.First(&city, id).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *GormCityRepository) FindByIDWithDestinations(id uint) (*models.City, error) {
	var city models.City
	if err := r.db.Preload("Destinations").First(&city, id).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *GormCityRepository) List(limit, offset int) ([]models.City, int64, error) {
	var cities []models.City
	var count int64
	if err := r.db.Model(&models.City{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Limit(limit).Offset(offset).Find(&cities).Error; err != nil {
		return nil, 0, err
	}
	return cities, count, nil
}

func (r *GormCityRepository) Save(city *models.City) error {
	return r.db.Omit("Destinations").Save(city).Error
}

func (r *GormCityRepository) Delete(city *models.City) error {
	return r.db.Delete(city).Error
}
