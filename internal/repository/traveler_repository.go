package repository

import (
	"errors"

	"gorm.io/gorm"

	"trek_seeker/internal/models"
)

type GormTravelerRepository struct {
	db *gorm.DB
}

func NewGormTravelerRepository(db *gorm.DB) *GormTravelerRepository {
	return &GormTravelerRepository{db: db}
}

func (r *GormTravelerRepository) Register(user *models.User, detail *models.TravelerDetail) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		return err
	}
	detail.UserID = user.UserID
	if err := tx.Create(detail).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *GormTravelerRepository) FindByID(id uint) (*models.TravelerDetail, error) {
	var detail models.TravelerDetail
	if err := r.db.Preload("User").First(&detail, id).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *GormTravelerRepository) FindActiveByID(id uint) (*models.TravelerDetail, error) {
	var detail models.TravelerDetail
	if err := r.db.Where("traveler_id = ? AND status = ?", id, 1).
		Preload("User").
		First(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *GormTravelerRepository) List(limit, offset int) ([]models.TravelerDetail, int64, error) {
	var details []models.TravelerDetail
	var count int64
	base := r.db.Model(&models.TravelerDetail{}).Where("status = ?", 1)
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Where("status = ?", 1).
		Preload("User").
		Limit(limit).Offset(offset).
		Find(&details).Error; err != nil {
		return nil, 0, err
	}
	return details, count, nil
}

func (r *GormTravelerRepository) ListAll() ([]models.TravelerDetail, error) {
	var details []models.TravelerDetail
	if err := r.db.Where("status = ?", 1).
		Preload("User").
		Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *GormTravelerRepository) SaveWithUser(detail *models.TravelerDetail, user *models.User) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Omit("TravelerDetail").Save(user).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Omit("User").Save(detail).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *GormTravelerRepository) Deactivate(detail *models.TravelerDetail) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	detail.Status = 0
	if err := tx.Omit("User").Save(detail).Error; err != nil {
		tx.Rollback()
		return err
	}

	var user models.User
	if err := tx.First(&user, detail.UserID).Error; err != nil {
		// A missing owner row is tolerable; anything else aborts the unit.
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return err
		}
	} else {
		user.Status = 0
		if err := tx.Save(&user).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}
