package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trek_seeker/internal/models"
	"trek_seeker/internal/repository"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

type CreateUserInput struct {
	FirstName  string `json:"FirstName" binding:"required"`
	LastName   string `json:"LastName" binding:"required"`
	Email      string `json:"Email" binding:"required"`
	Password   string `json:"Password" binding:"required"`
	Permission string `json:"Permission" binding:"required,oneof=admin traveler"`
}

// UserUpdate carries only the fields the client sent; nil fields keep their
// prior values.
type UserUpdate struct {
	UserName   *string `json:"UserName"`
	FirstName  *string `json:"FirstName"`
	LastName   *string `json:"LastName"`
	Email      *string `json:"Email"`
	Password   *string `json:"Password"`
	Permission *string `json:"Permission"`
	Status     *int    `json:"Status"`
}

// applyUserUpdate merges an update over an existing row. Pure; the password
// must already be hashed by the caller.
func applyUserUpdate(user models.User, update UserUpdate) models.User {
	if update.UserName != nil {
		user.UserName = *update.UserName
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		user.Password = *update.Password
	}
	if update.Permission != nil {
		user.Permission = *update.Permission
	}
	if update.Status != nil {
		user.Status = *update.Status
	}
	return user
}

func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
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

	user := models.User{
		UserName:   input.FirstName + " " + input.LastName,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Password:   string(hashed),
		Permission: input.Permission,
		Status:     1,
	}
	if err := s.users.Create(&user); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email %q: %w", input.Email, ErrAlreadyExists)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List(limit, page int) ([]models.User, int64, error) {
	return s.users.List(limit, (page-1)*limit)
}

// Get returns the user or ErrNotFound; inactive rows are treated as absent.
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if user.Status != 1 {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return user, nil
}

func (s *UserService) Update(id uint, update UserUpdate) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
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

	merged := applyUserUpdate(*user, update)
	if err := s.users.Save(&merged); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email: %w", ErrAlreadyExists)
		}
		return nil, err
	}
	return &merged, nil
}

// Delete deactivates the user and cascades to a linked traveler profile.
// Deleting an already-inactive user fails with ErrNotFound.
func (s *UserService) Delete(id uint) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return err
	}
	if user.Status == 0 {
		return fmt.Errorf("user %d already inactive: %w", id, ErrNotFound)
	}
	return s.users.Deactivate(user)
}
