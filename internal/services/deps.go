package services

import (
	"context"
	"errors"
	"regexp"

	"github.com/lib/pq"

	"trek_seeker/internal/clients"
)

// Collaborator interfaces. The concrete implementations live in
// internal/clients and internal/middleware; tests substitute fakes.

type TokenIssuer interface {
	GenerateToken(userID uint, role string) (string, error)
}

type Mailer interface {
	Send(to, subject, html string, attachments []clients.Attachment) error
}

type PlacesAPI interface {
	NearbyHotels(ctx context.Context, latitude, longitude float64) ([]clients.NearbyHotel, error)
	PlaceDetails(ctx context.Context, placeID string) (*clients.PlaceDetails, error)
}

type RecommenderAPI interface {
	Recommend(ctx context.Context, input clients.RecommendationInput) ([]clients.RecommendedDay, error)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// isUniqueViolation backs up the pre-insert uniqueness checks against
// concurrent inserts hitting the database constraint.
func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
