package repository

import (
	"gorm.io/gorm"

	"trek_seeker/internal/models"
)

type GormDestinationRepository struct {
	db *gorm.DB
}

func NewGormDestinationRepository(db *gorm.DB) *GormDestinationRepository {
	return &GormDestinationRepository{db: db}
}

func (r *GormDestinationRepository) Create(destination *models.Destination) error {
	return r.db.Create(destination).Error
}

func (r *GormDestinationRepository) FindByID(id uint) (*models.Destination, error) {
	var destination models.Destination
	if err := r.db.Preload("City").First(&destination, id).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *GormDestinationRepository) FindByName(name string) (*models.Destination, error) {
	var destination models.Destination
	if err := r.db.Where("destination_name = ?", name).First(&destination).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *GormDestinationRepository) List(limit, offset int) ([]models.Destination, int64, error) {
	var destinations []models.Destination
	var count int64
	if err := r.db.Model(&models.Destination{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Preload("City").Limit(limit).Offset(offset).Find(&destinations).Error; err != nil {
		return nil, 0, err
	}
	return destinations, count, nil
}

func (r *GormDestinationRepository) Save(destination *models.Destination) error {
	return r.db.Omit("City").Save(destination).Error
}

func (r *GormDestinationRepository) Delete(destination *models.Destination) error {
	return r.db.Delete(destination).Error
}
