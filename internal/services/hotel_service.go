package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"trek_seeker/internal/clients"
)

const topHotelsPerDestination = 3

type HotelService struct {
	places PlacesAPI
}

func NewHotelService(places PlacesAPI) *HotelService {
	return &HotelService{places: places}
}

type DayLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Day       int     `json:"day"`
}

type RecommendedHotel struct {
	PriceLevel int                 `json:"priceLevel"`
	Location   clients.Coordinates `json:"location"`
	PlaceID    string              `json:"placeId"`
	clients.PlaceDetails
}

type HotelRecommendation struct {
	Day    int                `json:"day"`
	Hotels []RecommendedHotel `json:"hotels"`
}

// Recommendations runs a nearby search per destination and details the top
// three hits, concurrently across destinations and hits. Results keep the
// input order; any branch's failure fails the whole call.
func (s *HotelService) Recommendations(ctx context.Context, destinations []DayLocation) ([]HotelRecommendation, error) {
	results := make([]HotelRecommendation, len(destinations))

	g, gctx := errgroup.WithContext(ctx)
	for i, destination := range destinations {
		g.Go(func() error {
			hotels, err := s.places.NearbyHotels(gctx, destination.Latitude, destination.Longitude)
			if err != nil {
				return fmt.Errorf("nearby search: %v: %w", err, ErrExternal)
			}
			if len(hotels) > topHotelsPerDestination {
				hotels = hotels[:topHotelsPerDestination]
			}

			detailed := make([]RecommendedHotel, len(hotels))
			inner, ictx := errgroup.WithContext(gctx)
			for j, hotel := range hotels {
				inner.Go(func() error {
					details, err := s.places.PlaceDetails(ictx, hotel.PlaceID)
					if err != nil {
						return fmt.Errorf("place %q: %v: %w", hotel.PlaceID, err, ErrExternal)
					}
					detailed[j] = RecommendedHotel{
						PriceLevel:   hotel.PriceLevel,
						Location:     hotel.Location,
						PlaceID:      hotel.PlaceID,
						PlaceDetails: *details,
					}
					return nil
				})
			}
			if err := inner.Wait(); err != nil {
				return err
			}

			results[i] = HotelRecommendation{Day: destination.Day, Hotels: detailed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
