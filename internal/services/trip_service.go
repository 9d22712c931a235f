package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"trek_seeker/internal/clients"
	"trek_seeker/internal/models"
	"trek_seeker/internal/repository"
)

type TripService struct {
	trips     repository.TripRepository
	travelers repository.TravelerRepository
	places    PlacesAPI
}

func NewTripService(trips repository.TripRepository, travelers repository.TravelerRepository, places PlacesAPI) *TripService {
	return &TripService{trips: trips, travelers: travelers, places: places}
}

// TripDuration is the inclusive day count between two dates:
// 2024-10-01 .. 2024-10-05 is 5 days.
func TripDuration(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

type ItineraryInput struct {
	DayNumber     int    `json:"DayNumber" binding:"required"`
	DestinationID uint   `json:"DestinationID" binding:"required"`
	OrderNumber   int    `json:"OrderNumber" binding:"required"`
	TimeFrom      string `json:"TimeFrom"`
	TimeTo        string `json:"TimeTo"`
}

type AccommodationInput struct {
	DayNumber int    `json:"DayNumber" binding:"required"`
	PlaceID   string `json:"PlaceID" binding:"required"`
}

type CreateTripInput struct {
	CityID         uint
	TripName       string
	StartDate      time.Time
	EndDate        time.Time
	TravelerID     uint
	Itineraries    []ItineraryInput
	Accommodations []AccommodationInput
}

// Create inserts the trip with its itinerary and accommodation rows
// all-or-nothing; any failure aborts the whole operation.
func (s *TripService) Create(input CreateTripInput) (*models.Trip, error) {
	trip := models.Trip{
		CityID:     input.CityID,
		TripName:   input.TripName,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Duration:   TripDuration(input.StartDate, input.EndDate),
		TravelerID: input.TravelerID,
	}

	itineraries := make([]models.Itinerary, 0, len(input.Itineraries))
	for _, item := range input.Itineraries {
		itineraries = append(itineraries, models.Itinerary{
			DayNumber:     item.DayNumber,
			DestinationID: item.DestinationID,
			OrderNumber:   item.OrderNumber,
			TimeFrom:      item.TimeFrom,
			TimeTo:        item.TimeTo,
		})
	}
	hotels := make([]models.HotelAssign, 0, len(input.Accommodations))
	for _, item := range input.Accommodations {
		hotels = append(hotels, models.HotelAssign{
			DayNumber: item.DayNumber,
			HotelID:   item.PlaceID,
		})
	}

	if err := s.trips.CreateWithDetails(&trip, itineraries, hotels); err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListByTraveler returns all trips for an existing traveler with nested city,
// itinerary and accommodation rows.
func (s *TripService) ListByTraveler(travelerID uint) ([]models.Trip, error) {
	if _, err := s.travelers.FindByID(travelerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("traveler %d: %w", travelerID, ErrNotFound)
		}
		return nil, err
	}
	return s.trips.ListByTraveler(travelerID)
}

type DayDestination struct {
	DestinationID   uint    `json:"DestinationID"`
	OrderNumber     int     `json:"OrderNumber"`
	DestinationName string  `json:"DestinationName"`
	Description     string  `json:"Description"`
	Latitude        float64 `json:"Latitude"`
	Longitude       float64 `json:"Longitude"`
	Rating          float64 `json:"Rating"`
	Image           string  `json:"Image"`
	TimeFrom        string  `json:"TimeFrom"`
	TimeTo          string  `json:"TimeTo"`
}

type DayItinerary struct {
	DayNumber    int              `json:"DayNumber"`
	Destinations []DayDestination `json:"destinations"`
	// Route is a GeoJSON LineString through the day's destinations in visit
	// order, for map rendering. Absent when the day has fewer than two stops.
	Route json.RawMessage `json:"route,omitempty"`
}

type AccommodationDetails struct {
	Day     int    `json:"day"`
	PlaceID string `json:"placeId"`
	clients.PlaceDetails
}

type TripDetails struct {
	TripID         uint                   `json:"TripID"`
	CityID         uint                   `json:"CityID"`
	TripName       string                 `json:"TripName"`
	StartDate      time.Time              `json:"StartDate"`
	EndDate        time.Time              `json:"EndDate"`
	Duration       int                    `json:"Duration"`
	TravelerID     uint                   `json:"TravelerID"`
	City           *models.City           `json:"City"`
	Itineraries    []DayItinerary         `json:"Itineraries"`
	Accommodations []AccommodationDetails `json:"Accommodations"`
}

// Get loads one trip, regroups its itinerary rows by day (days in insertion
// order) and enriches each accommodation with live place details, one lookup
// per row, concurrently.
func (s *TripService) Get(ctx context.Context, id uint) (*TripDetails, error) {
	trip, err := s.trips.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("trip %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	accommodations := make([]AccommodationDetails, len(trip.HotelAssignments))
	g, gctx := errgroup.WithContext(ctx)
	for i, assignment := range trip.HotelAssignments {
		g.Go(func() error {
			details, err := s.places.PlaceDetails(gctx, assignment.HotelID)
			if err != nil {
				return fmt.Errorf("place %q: %v: %w", assignment.HotelID, err, ErrExternal)
			}
			accommodations[i] = AccommodationDetails{
				Day:          assignment.DayNumber,
				PlaceID:      assignment.HotelID,
				PlaceDetails: *details,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TripDetails{
		TripID:         trip.TripID,
		CityID:         trip.CityID,
		TripName:       trip.TripName,
		StartDate:      trip.StartDate,
		EndDate:        trip.EndDate,
		Duration:       trip.Duration,
		TravelerID:     trip.TravelerID,
		City:           trip.City,
		Itineraries:    groupItinerariesByDay(trip.Itineraries),
		Accommodations: accommodations,
	}, nil
}

// groupItinerariesByDay buckets itinerary rows by day number, days ordered by
// first appearance.
func groupItinerariesByDay(itineraries []models.Itinerary) []DayItinerary {
	grouped := []DayItinerary{}
	index := map[int]int{}
	for _, itinerary := range itineraries {
		pos, ok := index[itinerary.DayNumber]
		if !ok {
			pos = len(grouped)
			index[itinerary.DayNumber] = pos
			grouped = append(grouped, DayItinerary{DayNumber: itinerary.DayNumber, Destinations: []DayDestination{}})
		}

		destination := DayDestination{
			DestinationID: itinerary.DestinationID,
			OrderNumber:   itinerary.OrderNumber,
			TimeFrom:      itinerary.TimeFrom,
			TimeTo:        itinerary.TimeTo,
		}
		if itinerary.Destination != nil {
			destination.DestinationName = itinerary.Destination.DestinationName
			destination.Description = itinerary.Destination.Description
			destination.Latitude = itinerary.Destination.Latitude
			destination.Longitude = itinerary.Destination.Longitude
			destination.Rating = itinerary.Destination.Ratings
			destination.Image = itinerary.Destination.Image
		}
		grouped[pos].Destinations = append(grouped[pos].Destinations, destination)
	}
	for i, day := range grouped {
		sort.SliceStable(day.Destinations, func(i, j int) bool {
			return day.Destinations[i].OrderNumber < day.Destinations[j].OrderNumber
		})
		grouped[i].Route = dayRouteGeometry(day.Destinations)
	}
	return grouped
}

// dayRouteGeometry encodes the day's stops as a GeoJSON LineString in visit
// order. Days with fewer than two located stops carry no geometry.
func dayRouteGeometry(stops []DayDestination) json.RawMessage {
	coords := make([]geom.Coord, 0, len(stops))
	for _, stop := range stops {
		if stop.Latitude == 0 && stop.Longitude == 0 {
			continue
		}
		coords = append(coords, geom.Coord{stop.Longitude, stop.Latitude})
	}
	if len(coords) < 2 {
		return nil
	}

	line := geom.NewLineString(geom.XY)
	if _, err := line.SetCoords(coords); err != nil {
		return nil
	}
	encoded, err := gjson.Marshal(line)
	if err != nil {
		return nil
	}
	return encoded
}

// Delete soft-deletes the trip; itinerary and accommodation rows stay in
// place under the deleted parent.
func (s *TripService) Delete(id uint) error {
	trip, err := s.trips.FindBare(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("trip %d: %w", id, ErrNotFound)
		}
		return err
	}
	return s.trips.Delete(trip)
}
