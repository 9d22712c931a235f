package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"trek_seeker/internal/clients"
	"trek_seeker/internal/repository"
)

type GenerateTripService struct {
	cities       repository.CityRepository
	destinations repository.DestinationRepository
	recommender  RecommenderAPI
}

func NewGenerateTripService(cities repository.CityRepository, destinations repository.DestinationRepository, recommender RecommenderAPI) *GenerateTripService {
	return &GenerateTripService{cities: cities, destinations: destinations, recommender: recommender}
}

type GenerateTripInput struct {
	CityID           uint     `json:"cityID" binding:"required"`
	UserInterests    []string `json:"userInterests"`
	Budget           float64  `json:"budget"`
	StartDate        string   `json:"startDate" binding:"required"`
	EndDate          string   `json:"endDate" binding:"required"`
	TravelerCategory string   `json:"travelerCategory"`
	AgeCategory      string   `json:"ageCategory"`
	Gender           string   `json:"gender"`
	Nationality      string   `json:"nationality"`
}

type GeneratedStop struct {
	DestinationID   uint    `json:"DestinationID"`
	DestinationName string  `json:"DestinationName"`
	Description     string  `json:"Description"`
	Latitude        float64 `json:"Latitude"`
	Longitude       float64 `json:"Longitude"`
	Image           string  `json:"Image"`
	Rating          float64 `json:"Rating"`
	OrderNumber     int     `json:"OrderNumber"`
	TimeFrom        string  `json:"TimeFrom"`
	TimeTo          string  `json:"TimeTo"`
}

type GeneratedDay struct {
	DayNumber    int             `json:"DayNumber"`
	Destinations []GeneratedStop `json:"destinations"`
	Message      string          `json:"message,omitempty"`
}

type GeneratedCity struct {
	CityName        string `json:"CityName"`
	CityDescription string `json:"CityDescription"`
	CityImage       string `json:"CityImage"`
}

type GeneratedTrip struct {
	CityID      uint           `json:"CityID"`
	StartDate   string         `json:"StartDate"`
	EndDate     string         `json:"EndDate"`
	Duration    int            `json:"Duration"`
	City        GeneratedCity  `json:"City"`
	Itineraries []GeneratedDay `json:"Itineraries"`
}

// Generate resolves the city, delegates itinerary generation to the external
// recommender and maps every returned destination name back to a stored row.
// Days the recommender did not cover come back as empty placeholders.
func (s *GenerateTripService) Generate(ctx context.Context, input GenerateTripInput) (*GeneratedTrip, error) {
	city, err := s.cities.FindByID(input.CityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("city %d: %w", input.CityID, ErrNotFound)
		}
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", input.StartDate, ErrValidation)
	}
	endDate, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", input.EndDate, ErrValidation)
	}
	duration := TripDuration(startDate, endDate)

	days, err := s.recommender.Recommend(ctx, clients.RecommendationInput{
		AgeCategory:      input.AgeCategory,
		Nationality:      input.Nationality,
		Gender:           input.Gender,
		Interests:        input.UserInterests,
		City:             city.CityName,
		TravelerCategory: input.TravelerCategory,
		Duration:         duration,
	})
	if err != nil {
		return nil, fmt.Errorf("recommendation call failed: %v: %w", err, ErrExternal)
	}

	itineraries := make([]GeneratedDay, len(days))
	g, _ := errgroup.WithContext(ctx)
	for i, day := range days {
		g.Go(func() error {
			stops := make([]GeneratedStop, 0, len(day.Destinations))
			for _, stop := range day.Destinations {
				details, err := s.destinations.FindByName(stop.Destination)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("destination %q: %w", stop.Destination, ErrNotFound)
					}
					return err
				}
				stops = append(stops, GeneratedStop{
					DestinationID:   details.DestinationID,
					DestinationName: details.DestinationName,
					Description:     details.Description,
					Latitude:        details.Latitude,
					Longitude:       details.Longitude,
					Image:           details.Image,
					Rating:          details.Ratings,
					OrderNumber:     stop.DestinationOrder,
					TimeFrom:        stop.TimeFrom,
					TimeTo:          stop.TimeTo,
				})
			}
			itineraries[i] = GeneratedDay{DayNumber: day.DayNumber, Destinations: stops}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Placeholder days for any day in range the recommender skipped.
	covered := map[int]bool{}
	for _, day := range itineraries {
		covered[day.DayNumber] = true
	}
	for dayNumber := 1; dayNumber <= duration; dayNumber++ {
		if !covered[dayNumber] {
			itineraries = append(itineraries, GeneratedDay{
				DayNumber:    dayNumber,
				Destinations: []GeneratedStop{},
				Message:      fmt.Sprintf("No itinerary data available for Day %d", dayNumber),
			})
		}
	}

	return &GeneratedTrip{
		CityID:    city.CityID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Duration:  duration,
		City: GeneratedCity{
			CityName:        city.CityName,
			CityDescription: city.CityDescription,
			CityImage:       city.CityImage,
		},
		Itineraries: itineraries,
	}, nil
}
