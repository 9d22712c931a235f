package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyHotels(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{
					"price_level": 3,
					"place_id":    "place-1",
					"geometry": map[string]interface{}{
						"location": map[string]float64{"lat": 6.9, "lng": 79.8},
					},
				},
			},
		})
	}))
	defer server.Close()

	client := NewGooglePlacesClient("test-key")
	client.nearbyURL = server.URL

	hotels, err := client.NearbyHotels(context.Background(), 6.9, 79.8)
	require.NoError(t, err)

	require.Len(t, hotels, 1)
	assert.Equal(t, "place-1", hotels[0].PlaceID)
	assert.Equal(t, 3, hotels[0].PriceLevel)
	assert.Equal(t, 6.9, hotels[0].Location.Lat)

	assert.Equal(t, "test-key", gotQuery["key"][0])
	assert.Equal(t, "distance", gotQuery["rankby"][0])
	assert.Contains(t, gotQuery["keyword"][0], "luxury hotel")
}

func TestPlaceDetailsBuildsPhotoURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": map[string]interface{}{
				"name":                       "Grand Hotel",
				"rating":                     4.2,
				"url":                        "https://maps.example/grand",
				"user_ratings_total":         120,
				"formatted_address":          "1 Beach Rd",
				"international_phone_number": "+94 11 234 5678",
				"website":                    "https://grand.example",
				"editorial_summary":          map[string]string{"overview": "A fine hotel"},
				"photos": []map[string]string{
					{"photo_reference": "photo-ref-1"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewGooglePlacesClient("test-key")
	client.detailsURL = server.URL

	details, err := client.PlaceDetails(context.Background(), "place-1")
	require.NoError(t, err)

	assert.Equal(t, "Grand Hotel", details.Name)
	assert.Equal(t, 4.2, details.Rating)
	assert.Equal(t, "1 Beach Rd", details.Address)
	assert.Equal(t, 120, details.UserRatingsTotal)
	assert.Equal(t, "A fine hotel", details.Overview)
	assert.Contains(t, details.Image, "photoreference=photo-ref-1")
	assert.Contains(t, details.Image, "key=test-key")
}

func TestPlaceDetailsNoPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": map[string]interface{}{"name": "Grand Hotel"},
		})
	}))
	defer server.Close()

	client := NewGooglePlacesClient("test-key")
	client.detailsURL = server.URL

	details, err := client.PlaceDetails(context.Background(), "place-1")
	require.NoError(t, err)
	assert.Empty(t, details.Image)
}

func TestNearbyHotelsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewGooglePlacesClient("test-key")
	client.nearbyURL = server.URL

	_, err := client.NearbyHotels(context.Background(), 6.9, 79.8)
	assert.Error(t, err)
}
