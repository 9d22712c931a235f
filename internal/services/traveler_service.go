package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trek_seeker/internal/models"
	"trek_seeker/internal/repository"
)

type TravelerService struct {
	travelers repository.TravelerRepository
	users     repository.UserRepository
}

func NewTravelerService(travelers repository.TravelerRepository, users repository.UserRepository) *TravelerService {
	return &TravelerService{travelers: travelers, users: users}
}

type RegisterTravelerInput struct {
	FirstName string  `json:"FirstName" binding:"required"`
	LastName  string  `json:"LastName"`
	Email     string  `json:"Email" binding:"required"`
	Password  string  `json:"Password" binding:"required"`
	Country   string  `json:"Country"`
	Gender    *string `json:"Gender"`
}

type TravelerUpdate struct {
	FirstName *string `json:"FirstName"`
	LastName  *string `json:"LastName"`
	Email     *string `json:"Email"`
	Password  *string `json:"Password"`
	Country   *string `json:"Country"`
	Gender    *string `json:"Gender"`
}

func applyTravelerUpdate(detail models.TravelerDetail, update TravelerUpdate) models.TravelerDetail {
	if update.FirstName != nil {
		detail.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		detail.LastName = *update.LastName
	}
	if update.Country != nil {
		detail.Country = *update.Country
	}
	if update.Gender != nil {
		detail.Gender = update.Gender
	}
	return detail
}

// Register creates the login row and the traveler profile as one unit.
func (s *TravelerService) Register(input RegisterTravelerInput) (*models.User, error) {
	if !validEmail(input.Email) {
		return nil, fmt.Errorf("invalid email format: %w", ErrValidation)
	}

	if _, err := s.users.FindByEmail(input.Email); err == nil {
		return nil, fmt.Errorf("email %q: %w", input.Email, ErrAlreadyExists)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userName := input.FirstName
	if input.LastName != "" {
		userName = input.FirstName + " " + input.LastName
	}

	user := models.User{
		UserName:   userName,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Password:   string(hashed),
		Permission: "traveler",
		Status:     1,
	}
	detail := models.TravelerDetail{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Country:   input.Country,
		Gender:    input.Gender,
		Status:    1,
	}

	if err := s.travelers.Register(&user, &detail); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email %q: %w", input.Email, ErrAlreadyExists)
		}
		return nil, err
	}
	user.TravelerDetail = &detail
	return &user, nil
}

func (s *TravelerService) List(limit, page int) ([]models.TravelerDetail, int64, error) {
	return s.travelers.List(limit, (page-1)*limit)
}

func (s *TravelerService) ListAll() ([]models.TravelerDetail, error) {
	return s.travelers.ListAll()
}

func (s *TravelerService) Get(id uint) (*models.TravelerDetail, error) {
	detail, err := s.travelers.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("traveler %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return detail, nil
}

// Update merges the provided fields over the profile and its owning user row
// in one transaction.
func (s *TravelerService) Update(id uint, update TravelerUpdate) (*models.TravelerDetail, error) {
	detail, err := s.travelers.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("traveler %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	user, err := s.users.FindByID(detail.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", detail.UserID, ErrNotFound)
		}
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		if !validEmail(*update.Email) {
			return nil, fmt.Errorf("invalid email format: %w", ErrValidation)
		}
		if _, err := s.users.FindByEmail(*update.Email); err == nil {
			return nil, fmt.Errorf("email %q: %w", *update.Email, ErrAlreadyExists)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if update.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hashed)
		update.Password = &h
	}

	mergedUser := applyUserUpdate(*user, UserUpdate{
		FirstName: update.FirstName,
		LastName:  update.LastName,
		Email:     update.Email,
		Password:  update.Password,
	})
	mergedDetail := applyTravelerUpdate(*detail, update)
	mergedUser.TravelerDetail = nil
	mergedDetail.User = nil

	if err := s.travelers.SaveWithUser(&mergedDetail, &mergedUser); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email: %w", ErrAlreadyExists)
		}
		return nil, err
	}
	return &mergedDetail, nil
}

// Delete deactivates the profile and its owning user in one transaction.
func (s *TravelerService) Delete(id uint) error {
	detail, err := s.travelers.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("traveler %d: %w", id, ErrNotFound)
		}
		return err
	}
	if detail.Status == 0 {
		return fmt.Errorf("traveler %d already inactive: %w", id, ErrNotFound)
	}
	detail.User = nil
	return s.travelers.Deactivate(detail)
}
