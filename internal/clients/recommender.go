package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RecommendationInput is the normalized traveler profile forwarded to the ML
// recommendation endpoint.
type RecommendationInput struct {
	AgeCategory      string   `json:"age_category"`
	Nationality      string   `json:"nationality"`
	Gender           string   `json:"gender"`
	Interests        []string `json:"interests"`
	City             string   `json:"city"`
	TravelerCategory string   `json:"traveler_category"`
	Duration         int      `json:"duration"`
}

type RecommendedStop struct {
	Destination      string `json:"destination"`
	DestinationOrder int    `json:"destinationOrder"`
	TimeFrom         string `json:"timeFrom"`
	TimeTo           string `json:"timeTo"`
}

type RecommendedDay struct {
	DayNumber    int               `json:"DayNumber"`
	Destinations []RecommendedStop `json:"destinations"`
}

// RecommenderClient proxies the external trip-itinerary generator.
type RecommenderClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRecommenderClient(baseURL string) *RecommenderClient {
	return &RecommenderClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *RecommenderClient) Recommend(ctx context.Context, input RecommendationInput) ([]RecommendedDay, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommendations/", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var days []RecommendedDay
	if err := json.NewDecoder(resp.Body).Decode(&days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return days, nil
}
