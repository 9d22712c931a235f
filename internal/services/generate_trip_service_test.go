package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trek_seeker/internal/clients"
	"trek_seeker/internal/models"
)

func newGenerateFixture(t *testing.T) (*GenerateTripService, *memCityRepo, *memDestinationRepo, *fakeRecommender) {
	t.Helper()
	cities := newMemCityRepo()
	destinations := newMemDestinationRepo()
	recommender := &fakeRecommender{}
	return NewGenerateTripService(cities, destinations, recommender), cities, destinations, recommender
}

func TestGenerateUnknownCityFailsBeforeExternalCall(t *testing.T) {
	svc, _, _, recommender := newGenerateFixture(t)

	_, err := svc.Generate(context.Background(), GenerateTripInput{
		CityID:    9,
		StartDate: "2024-10-01",
		EndDate:   "2024-10-03",
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, recommender.calls)
}

func TestGenerateInvalidDate(t *testing.T) {
	svc, cities, _, recommender := newGenerateFixture(t)
	require.NoError(t, cities.Create(&models.City{CityName: "Colombo"}))

	_, err := svc.Generate(context.Background(), GenerateTripInput{
		CityID:    1,
		StartDate: "01-10-2024",
		EndDate:   "2024-10-03",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, recommender.calls)
}

func TestGenerateMapsDestinationsAndPadsMissingDays(t *testing.T) {
	svc, cities, destinations, recommender := newGenerateFixture(t)
	require.NoError(t, cities.Create(&models.City{
		CityName:        "Colombo",
		CityDescription: "Capital",
		CityImage:       "colombo.jpg",
	}))
	require.NoError(t, destinations.Create(&models.Destination{
		DestinationName: "Temple",
		Description:     "Old temple",
		Latitude:        6.93,
		Longitude:       79.85,
		Image:           "temple.jpg",
		Ratings:         4.4,
	}))

	recommender.days = []clients.RecommendedDay{
		{
			DayNumber: 1,
			Destinations: []clients.RecommendedStop{
				{Destination: "Temple", DestinationOrder: 1, TimeFrom: "09:00", TimeTo: "11:00"},
			},
		},
	}

	trip, err := svc.Generate(context.Background(), GenerateTripInput{
		CityID:           1,
		UserInterests:    []string{"history"},
		StartDate:        "2024-10-01",
		EndDate:          "2024-10-03",
		TravelerCategory: "solo",
		AgeCategory:      "adult",
		Gender:           "female",
		Nationality:      "kenyan",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, trip.Duration)
	assert.Equal(t, "Colombo", trip.City.CityName)
	assert.Equal(t, "Colombo", recommender.last.City)
	assert.Equal(t, 3, recommender.last.Duration)

	require.Len(t, trip.Itineraries, 3)

	day1 := trip.Itineraries[0]
	assert.Equal(t, 1, day1.DayNumber)
	require.Len(t, day1.Destinations, 1)
	assert.Equal(t, uint(1), day1.Destinations[0].DestinationID)
	assert.Equal(t, "Temple", day1.Destinations[0].DestinationName)
	assert.Equal(t, 4.4, day1.Destinations[0].Rating)
	assert.Equal(t, "09:00", day1.Destinations[0].TimeFrom)

	for _, day := range trip.Itineraries[1:] {
		assert.Empty(t, day.Destinations)
		assert.Contains(t, day.Message, "No itinerary data available for Day")
	}
}

func TestGenerateUnknownDestinationName(t *testing.T) {
	svc, cities, _, recommender := newGenerateFixture(t)
	require.NoError(t, cities.Create(&models.City{CityName: "Colombo"}))
	recommender.days = []clients.RecommendedDay{
		{
			DayNumber: 1,
			Destinations: []clients.RecommendedStop{
				{Destination: "Nowhere", DestinationOrder: 1},
			},
		},
	}

	_, err := svc.Generate(context.Background(), GenerateTripInput{
		CityID:    1,
		StartDate: "2024-10-01",
		EndDate:   "2024-10-01",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateRecommenderFailure(t *testing.T) {
	svc, cities, _, recommender := newGenerateFixture(t)
	require.NoError(t, cities.Create(&models.City{CityName: "Colombo"}))
	recommender.err = assert.AnError

	_, err := svc.Generate(context.Background(), GenerateTripInput{
		CityID:    1,
		StartDate: "2024-10-01",
		EndDate:   "2024-10-01",
	})
	assert.ErrorIs(t, err, ErrExternal)
}
