package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trek_seeker/internal/clients"
	"trek_seeker/internal/models"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestTripDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2024-10-01", "2024-10-01", 1},
		{"five days inclusive", "2024-10-01", "2024-10-05", 5},
		{"across month boundary", "2024-10-30", "2024-11-02", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TripDuration(date(t, tt.start), date(t, tt.end)))
		})
	}
}

func newTripFixture(t *testing.T) (*TripService, *memStore, *memTripRepo, *fakePlaces) {
	t.Helper()
	store := newMemStore()
	trips := newMemTripRepo()
	places := &fakePlaces{details: map[string]clients.PlaceDetails{}}
	svc := NewTripService(trips, &memTravelerRepo{store: store}, places)
	return svc, store, trips, places
}

func TestCreateTripComputesDuration(t *testing.T) {
	svc, _, trips, _ := newTripFixture(t)

	trip, err := svc.Create(CreateTripInput{
		CityID:     1,
		TripName:   "Coast run",
		StartDate:  date(t, "2024-10-01"),
		EndDate:    date(t, "2024-10-05"),
		TravelerID: 1,
		Itineraries: []ItineraryInput{
			{DayNumber: 1, DestinationID: 4, OrderNumber: 1},
		},
		Accommodations: []AccommodationInput{
			{DayNumber: 1, PlaceID: "place-a"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, trip.Duration)
	stored := trips.trips[trip.TripID]
	require.Len(t, stored.Itineraries, 1)
	assert.Equal(t, trip.TripID, stored.Itineraries[0].TripID)
	require.Len(t, stored.HotelAssignments, 1)
	assert.Equal(t, "place-a", stored.HotelAssignments[0].HotelID)
}

func TestListByTravelerUnknownTraveler(t *testing.T) {
	svc, _, _, _ := newTripFixture(t)

	_, err := svc.ListByTraveler(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTripGroupsItineraryByDay(t *testing.T) {
	svc, _, trips, places := newTripFixture(t)

	temple := &models.Destination{DestinationID: 1, DestinationName: "Temple", Ratings: 4.5, Latitude: 6.93, Longitude: 79.85}
	fort := &models.Destination{DestinationID: 2, DestinationName: "Fort", Latitude: 6.03, Longitude: 80.22}
	beach := &models.Destination{DestinationID: 3, DestinationName: "Beach", Latitude: 6.01, Longitude: 80.25}

	trips.trips[1] = models.Trip{
		TripID:     1,
		CityID:     1,
		TripName:   "Coast run",
		StartDate:  date(t, "2024-10-01"),
		EndDate:    date(t, "2024-10-02"),
		Duration:   2,
		TravelerID: 1,
		Itineraries: []models.Itinerary{
			{DayNumber: 2, DestinationID: 3, OrderNumber: 1, Destination: beach},
			{DayNumber: 1, DestinationID: 2, OrderNumber: 2, Destination: fort},
			{DayNumber: 1, DestinationID: 1, OrderNumber: 1, Destination: temple, TimeFrom: "09:00", TimeTo: "11:00"},
		},
		HotelAssignments: []models.HotelAssign{
			{DayNumber: 1, HotelID: "place-a"},
		},
	}
	places.details["place-a"] = clients.PlaceDetails{Name: "Grand Hotel", Rating: 4.2}

	details, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	// Days come back in first-seen order, destinations ordered within a day.
	require.Len(t, details.Itineraries, 2)
	assert.Equal(t, 2, details.Itineraries[0].DayNumber)
	assert.Equal(t, 1, details.Itineraries[1].DayNumber)

	day1 := details.Itineraries[1]
	require.Len(t, day1.Destinations, 2)
	assert.Equal(t, "Temple", day1.Destinations[0].DestinationName)
	assert.Equal(t, "09:00", day1.Destinations[0].TimeFrom)
	assert.Equal(t, 4.5, day1.Destinations[0].Rating)
	assert.Equal(t, "Fort", day1.Destinations[1].DestinationName)

	require.Len(t, details.Accommodations, 1)
	assert.Equal(t, "Grand Hotel", details.Accommodations[0].Name)
	assert.Equal(t, 1, details.Accommodations[0].Day)
	assert.Equal(t, "place-a", details.Accommodations[0].PlaceID)

	// A two-stop day carries a GeoJSON line through its stops in visit
	// order; a single-stop day carries none.
	require.NotNil(t, day1.Route)
	assert.Contains(t, string(day1.Route), `"LineString"`)
	assert.Contains(t, string(day1.Route), "79.85")
	assert.Nil(t, details.Itineraries[0].Route)
}

func TestDayRouteGeometrySkipsUnlocatedStops(t *testing.T) {
	stops := []DayDestination{
		{DestinationName: "Temple", Latitude: 6.93, Longitude: 79.85},
		{DestinationName: "Mystery"},
		{DestinationName: "Fort", Latitude: 6.03, Longitude: 80.22},
	}

	route := dayRouteGeometry(stops)
	require.NotNil(t, route)

	var line struct {
		Type        string       `json:"type"`
		Coordinates [][2]float64 `json:"coordinates"`
	}
	require.NoError(t, json.Unmarshal(route, &line))
	assert.Equal(t, "LineString", line.Type)
	require.Len(t, line.Coordinates, 2)
	assert.Equal(t, [2]float64{79.85, 6.93}, line.Coordinates[0])
	assert.Equal(t, [2]float64{80.22, 6.03}, line.Coordinates[1])

	assert.Nil(t, dayRouteGeometry(stops[:2]))
}

func TestGetTripExternalLookupFailure(t *testing.T) {
	svc, _, trips, places := newTripFixture(t)

	trips.trips[1] = models.Trip{
		TripID: 1,
		HotelAssignments: []models.HotelAssign{
			{DayNumber: 1, HotelID: "place-a"},
		},
	}
	places.detailsErr = assert.AnError

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExternal)
}

func TestGetTripNotFound(t *testing.T) {
	svc, _, _, _ := newTripFixture(t)

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTrip(t *testing.T) {
	svc, _, trips, _ := newTripFixture(t)
	trips.trips[1] = models.Trip{TripID: 1}

	require.NoError(t, svc.Delete(1))
	assert.Empty(t, trips.trips)

	assert.ErrorIs(t, svc.Delete(1), ErrNotFound)
}
