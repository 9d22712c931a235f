package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	googleNearbyURL  = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	googleDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"
	googlePhotoURL   = "https://maps.googleapis.com/maps/api/place/photo"

	detailFields = "name,rating,url,user_ratings_total,formatted_address,international_phone_number,editorial_summary,website,photos"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type NearbyHotel struct {
	PriceLevel int         `json:"priceLevel"`
	Location   Coordinates `json:"location"`
	PlaceID    string      `json:"placeId"`
}

type PlaceDetails struct {
	Name             string  `json:"name"`
	Rating           float64 `json:"rating"`
	URL              string  `json:"url"`
	Address          string  `json:"address"`
	UserRatingsTotal int     `json:"userRatingsTotal"`
	PhoneNumber      string  `json:"phoneNumber"`
	Website          string  `json:"website"`
	Image            string  `json:"image"`
	Overview         string  `json:"overview"`
}

// GooglePlacesClient talks to the Google Places nearby-search and details
// endpoints.
type GooglePlacesClient struct {
	apiKey     string
	nearbyURL  string
	detailsURL string
	photoURL   string
	httpClient *http.Client
}

func NewGooglePlacesClient(apiKey string) *GooglePlacesClient {
	return &GooglePlacesClient{
		apiKey:     apiKey,
		nearbyURL:  googleNearbyURL,
		detailsURL: googleDetailsURL,
		photoURL:   googlePhotoURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NearbyHotels searches hotels around the given coordinates, ranked by
// distance.
func (c *GooglePlacesClient) NearbyHotels(ctx context.Context, latitude, longitude float64) ([]NearbyHotel, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", latitude, longitude))
	params.Set("key", c.apiKey)
	params.Set("rankby", "distance")
	params.Set("keyword", "luxury hotel|five-star hotel|hotel")

	var payload struct {
		Results []struct {
			PriceLevel int `json:"price_level"`
			Geometry   struct {
				Location Coordinates `json:"location"`
			} `json:"geometry"`
			PlaceID string `json:"place_id"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, c.nearbyURL, params, &payload); err != nil {
		return nil, fmt.Errorf("error fetching nearby hotels: %w", err)
	}

	hotels := make([]NearbyHotel, 0, len(payload.Results))
	for _, result := range payload.Results {
		hotels = append(hotels, NearbyHotel{
			PriceLevel: result.PriceLevel,
			Location:   result.Geometry.Location,
			PlaceID:    result.PlaceID,
		})
	}
	return hotels, nil
}

// PlaceDetails fetches live details for one place id.
func (c *GooglePlacesClient) PlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)
	params.Set("key", c.apiKey)

	var payload struct {
		Result struct {
			Name                     string  `json:"name"`
			Rating                   float64 `json:"rating"`
			URL                      string  `json:"url"`
			UserRatingsTotal         int     `json:"user_ratings_total"`
			FormattedAddress         string  `json:"formatted_address"`
			InternationalPhoneNumber string  `json:"international_phone_number"`
			Website                  string  `json:"website"`
			EditorialSummary         struct {
				Overview string `json:"overview"`
			} `json:"editorial_summary"`
			Photos []struct {
				PhotoReference string `json:"photo_reference"`
			} `json:"photos"`
		} `json:"result"`
	}
	if err := c.getJSON(ctx, c.detailsURL, params, &payload); err != nil {
		return nil, fmt.Errorf("error fetching place details: %w", err)
	}

	result := payload.Result
	details := &PlaceDetails{
		Name:             result.Name,
		Rating:           result.Rating,
		URL:              result.URL,
		Address:          result.FormattedAddress,
		UserRatingsTotal: result.UserRatingsTotal,
		PhoneNumber:      result.InternationalPhoneNumber,
		Website:          result.Website,
		Overview:         result.EditorialSummary.Overview,
	}
	if len(result.Photos) > 0 {
		details.Image = fmt.Sprintf("%s?maxwidth=400&photoreference=%s&key=%s",
			c.photoURL, result.Photos[0].PhotoReference, c.apiKey)
	}
	return details, nil
}

func (c *GooglePlacesClient) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
