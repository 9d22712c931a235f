package services

import (
	"strings"

	"trek_seeker/internal/repository"
)

type AdminService struct {
	stats repository.StatsRepository
}

func NewAdminService(stats repository.StatsRepository) *AdminService {
	return &AdminService{stats: stats}
}

type GenderBucket struct {
	Gender string `json:"Gender"`
	Count  int64  `json:"count"`
}

type DashboardStats struct {
	TotalUsers        int64                     `json:"totalUsers"`
	ActiveUserCount   int64                     `json:"activeUserCount"`
	InactiveUserCount int64                     `json:"inactiveUserCount"`
	SignUpsByMonth    []repository.MonthCount   `json:"signUpsByMonth"`
	UsersByGender     []GenderBucket            `json:"usersByGender"`
	UsersByCountry    []repository.CountryCount `json:"usersByCountry"`
	TotalTrips        int64                     `json:"totalTrips"`
	MostPopularCity   *repository.PopularCity   `json:"mostPopularCity"`
}

// Dashboard computes every figure freshly per request.
func (s *AdminService) Dashboard() (*DashboardStats, error) {
	totalUsers, err := s.stats.TravelerUserCount()
	if err != nil {
		return nil, err
	}
	activeCount, err := s.stats.TravelerUserCountByStatus(1)
	if err != nil {
		return nil, err
	}
	inactiveCount, err := s.stats.TravelerUserCountByStatus(0)
	if err != nil {
		return nil, err
	}
	signUps, err := s.stats.SignUpsByMonth()
	if err != nil {
		return nil, err
	}
	byGender, err := s.stats.TravelersByGender()
	if err != nil {
		return nil, err
	}
	byCountry, err := s.stats.TravelersByCountry()
	if err != nil {
		return nil, err
	}
	totalTrips, err := s.stats.TripCount()
	if err != nil {
		return nil, err
	}
	popular, err := s.stats.MostPopularCity()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:        totalUsers,
		ActiveUserCount:   activeCount,
		InactiveUserCount: inactiveCount,
		SignUpsByMonth:    signUps,
		UsersByGender:     normalizeGenderBuckets(byGender),
		UsersByCountry:    byCountry,
		TotalTrips:        totalTrips,
		MostPopularCity:   popular,
	}, nil
}

// normalizeGenderBuckets collapses null and unrecognized labels into
// "Unspecified" and capitalizes the rest, merging buckets that land on the
// same label. Label order follows first appearance.
func normalizeGenderBuckets(raw []repository.GenderCount) []GenderBucket {
	buckets := []GenderBucket{}
	index := map[string]int{}
	for _, row := range raw {
		label := normalizeGender(row.Gender)
		pos, ok := index[label]
		if !ok {
			pos = len(buckets)
			index[label] = pos
			buckets = append(buckets, GenderBucket{Gender: label})
		}
		buckets[pos].Count += row.Count
	}
	return buckets
}

func normalizeGender(gender *string) string {
	if gender == nil {
		return "Unspecified"
	}
	switch strings.ToLower(*gender) {
	case "male", "female", "other":
		lower := strings.ToLower(*gender)
		return strings.ToUpper(lower[:1]) + lower[1:]
	default:
		return "Unspecified"
	}
}
