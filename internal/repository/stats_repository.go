package repository

import (
	"gorm.io/gorm"

	"trek_seeker/internal/models"
)

type GormStatsRepository struct {
	db *gorm.DB
}

func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

func (r *GormStatsRepository) TravelerUserCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("permission = ?", "traveler").Count(&count).Error
	return count, err
}

func (r *GormStatsRepository) TravelerUserCountByStatus(status int) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("permission = ? AND status = ?", "traveler", status).
		Count(&count).Error
	return count, err
}

func (r *GormStatsRepository) SignUpsByMonth() ([]MonthCount, error) {
	var rows []MonthCount
	err := r.db.Model(&models.User{}).
		Where("permission = ?", "traveler").
		Select("to_char(created_at, 'YYYY-MM') AS month, COUNT(user_id) AS count").
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormStatsRepository) TravelersByGender() ([]GenderCount, error) {
	var rows []GenderCount
	err := r.db.Model(&models.TravelerDetail{}).
		Select("gender, COUNT(traveler_id) AS count").
		Group("gender").
		Scan(&rows).Error
	return rows, err
}

func (r *GormStatsRepository) TravelersByCountry() ([]CountryCount, error) {
	var rows []CountryCount
	err := r.db.Model(&models.TravelerDetail{}).
		Select("country, COUNT(traveler_id) AS count").
		Group("country").
		Scan(&rows).Error
	return rows, err
}

func (r *GormStatsRepository) TripCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.Trip{}).Count(&count).Error
	return count, err
}

func (r *GormStatsRepository) MostPopularCity() (*PopularCity, error) {
	var row PopularCity
	err := r.db.Model(&models.Trip{}).
		Select("trips.city_id, COUNT(trips.trip_id) AS trip_count, cities.city_name").
		Joins("JOIN cities ON cities.city_id = trips.city_id").
		Group("trips.city_id, cities.city_name").
		Order("trip_count DESC, trips.city_id ASC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.CityID == 0 {
		return nil, nil
	}
	return &row, nil
}
