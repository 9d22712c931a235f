package repository

import (
	"time"

	"gorm.io/gorm"

	"trek_seeker/internal/models"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).
		Preload("TravelerDetail").
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("TravelerDetail").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByResetToken(hashedToken string, now time.Time) (*models.User, error) {
	var user models.User
	if err := r.db.Where("reset_password_token = ? AND reset_password_expires > ?", hashedToken, now).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) List(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var count int64
	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

func (r *GormUserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *GormUserRepository) Deactivate(user *models.User) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	user.Status = 0
	if err := tx.Omit("TravelerDetail").Save(user).Error; err != nil {
		tx.Rollback()
		return err
	}
	if user.TravelerDetail != nil {
		user.TravelerDetail.Status = 0
		if err := tx.Omit("User").Save(user.TravelerDetail).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}
