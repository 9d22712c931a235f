package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trek_seeker/internal/repository"
)

const resetTokenTTL = time.Hour

type AuthService struct {
	users       repository.UserRepository
	tokens      TokenIssuer
	mailer      Mailer
	frontendURL string
}

func NewAuthService(users repository.UserRepository, tokens TokenIssuer, mailer Mailer, frontendURL string) *AuthService {
	return &AuthService{users: users, tokens: tokens, mailer: mailer, frontendURL: frontendURL}
}

type LoginResult struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	UserName  string `json:"username"`
	FirstName string `json:"firstname"`
	Email     string `json:"email"`
	ID        uint   `json:"id"`
}

// Login verifies credentials and issues a signed token. The returned id is
// the traveler-profile id for travelers, the user id otherwise.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", email, ErrNotFound)
		}
		return nil, err
	}
	if user.Status != 1 {
		return nil, fmt.Errorf("user %q: %w", email, ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("password mismatch: %w", ErrInvalidCredential)
	}

	token, err := s.tokens.GenerateToken(user.UserID, user.Permission)
	if err != nil {
		return nil, err
	}

	id := user.UserID
	if user.Permission == "traveler" && user.TravelerDetail != nil {
		id = user.TravelerDetail.TravelerID
	}

	return &LoginResult{
		Token:     token,
		Role:      user.Permission,
		UserName:  user.UserName,
		FirstName: user.FirstName,
		Email:     user.Email,
		ID:        id,
	}, nil
}

// SendPasswordReset stores a hashed one-hour reset token on the user record
// and mails the raw token embedded in a frontend URL.
func (s *AuthService) SendPasswordReset(email string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %q: %w", email, ErrNotFound)
		}
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	resetToken := hex.EncodeToString(raw)
	hashed := hashResetToken(resetToken)
	expires := time.Now().Add(resetTokenTTL)

	user.ResetPasswordToken = &hashed
	user.ResetPasswordExpires = &expires
	if err := s.users.Save(user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, resetToken)
	return s.mailer.Send(user.Email, "Account Password Reset", resetEmailBody(user.Email, resetURL), nil)
}

// ResetPassword replaces the password of the user whose stored token hash
// matches and has not expired, then clears the reset fields.
func (s *AuthService) ResetPassword(resetToken, newPassword string) error {
	user, err := s.users.FindByResetToken(hashResetToken(resetToken), time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.ResetPasswordToken = nil
	user.ResetPasswordExpires = nil
	return s.users.Save(user)
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func resetEmailBody(email, resetURL string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px;">
      <h2 style="color: #333; text-align: center;">Password Reset Request</h2>
      <p>Hello %s,</p>
      <p>We received a request to reset your password. Click the button below to create a new password. If you did not request this, please ignore this email.</p>
      <p>This link will expire in 1 hour.</p>
      <div style="text-align: center; margin-top: 20px;">
          <a href="%s" style="display: inline-block; padding: 10px 18px; font-size: 16px; font-weight: bold; text-align: center; text-decoration: none; color: #fff; background-color: #007bff; border-radius: 5px;">Reset Password</a>
        </div>
      <p>If you have any questions, feel free to contact our support team.</p>
      <p>Best regards,<br/>The Trek Seeker Team</p>
    </div>
  `, email, resetURL)
}
