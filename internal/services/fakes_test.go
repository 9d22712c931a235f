package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"trek_seeker/internal/clients"
	"trek_seeker/internal/models"
	"trek_seeker/internal/repository"
)

// memStore backs the in-memory repository fakes the service tests run
// against. Both user and traveler repos share it so cascading writes behave
// like the real transactional implementations.
type memStore struct {
	users          map[uint]models.User
	travelers      map[uint]models.TravelerDetail
	nextUserID     uint
	nextTravelerID uint
}

func newMemStore() *memStore {
	return &memStore{
		users:          map[uint]models.User{},
		travelers:      map[uint]models.TravelerDetail{},
		nextUserID:     1,
		nextTravelerID: 1,
	}
}

type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) Create(user *models.User) error {
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate email %q", user.Email)
		}
	}
	user.UserID = r.store.nextUserID
	r.store.nextUserID++
	user.CreatedAt = time.Now()
	r.store.users[user.UserID] = *user
	return nil
}

func (r *memUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			found := user
			for _, detail := range r.store.travelers {
				if detail.UserID == found.UserID {
					d := detail
					found.TravelerDetail = &d
					break
				}
			}
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := user
	return &found, nil
}

func (r *memUserRepo) FindByResetToken(hashedToken string, now time.Time) (*models.User, error) {
	for _, user := range r.store.users {
		if user.ResetPasswordToken != nil && *user.ResetPasswordToken == hashedToken &&
			user.ResetPasswordExpires != nil && user.ResetPasswordExpires.After(now) {
			found := user
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) List(limit, offset int) ([]models.User, int64, error) {
	ids := make([]uint, 0, len(r.store.users))
	for id := range r.store.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := []models.User{}
	for i, id := range ids {
		if i < offset || len(users) >= limit {
			continue
		}
		users = append(users, r.store.users[id])
	}
	return users, int64(len(ids)), nil
}

func (r *memUserRepo) Save(user *models.User) error {
	if _, ok := r.store.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, existing := range r.store.users {
		if existing.UserID != user.UserID && existing.Email == user.Email {
			return fmt.Errorf("duplicate email %q", user.Email)
		}
	}
	r.store.users[user.UserID] = *user
	return nil
}

func (r *memUserRepo) Deactivate(user *models.User) error {
	stored, ok := r.store.users[user.UserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = 0
	r.store.users[user.UserID] = stored
	for id, detail := range r.store.travelers {
		if detail.UserID == user.UserID {
			detail.Status = 0
			r.store.travelers[id] = detail
		}
	}
	return nil
}

type memTravelerRepo struct {
	store *memStore
}

func (r *memTravelerRepo) Register(user *models.User, detail *models.TravelerDetail) error {
	users := &memUserRepo{store: r.store}
	if err := users.Create(user); err != nil {
		return err
	}
	detail.TravelerID = r.store.nextTravelerID
	r.store.nextTravelerID++
	detail.UserID = user.UserID
	r.store.travelers[detail.TravelerID] = *detail
	return nil
}

func (r *memTravelerRepo) FindByID(id uint) (*models.TravelerDetail, error) {
	detail, ok := r.store.travelers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := detail
	return &found, nil
}

func (r *memTravelerRepo) FindActiveByID(id uint) (*models.TravelerDetail, error) {
	detail, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if detail.Status != 1 {
		return nil, gorm.ErrRecordNotFound
	}
	return detail, nil
}

func (r *memTravelerRepo) List(limit, offset int) ([]models.TravelerDetail, int64, error) {
	ids := make([]uint, 0, len(r.store.travelers))
	for id := range r.store.travelers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	travelers := []models.TravelerDetail{}
	for i, id := range ids {
		if i < offset || len(travelers) >= limit {
			continue
		}
		travelers = append(travelers, r.store.travelers[id])
	}
	return travelers, int64(len(ids)), nil
}

func (r *memTravelerRepo) ListAll() ([]models.TravelerDetail, error) {
	travelers, _, err := r.List(len(r.store.travelers)+1, 0)
	return travelers, err
}

func (r *memTravelerRepo) SaveWithUser(detail *models.TravelerDetail, user *models.User) error {
	if _, ok := r.store.travelers[detail.TravelerID]; !ok {
		return gorm.ErrRecordNotFound
	}
	users := &memUserRepo{store: r.store}
	if err := users.Save(user); err != nil {
		return err
	}
	r.store.travelers[detail.TravelerID] = *detail
	return nil
}

func (r *memTravelerRepo) Deactivate(detail *models.TravelerDetail) error {
	stored, ok := r.store.travelers[detail.TravelerID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = 0
	r.store.travelers[detail.TravelerID] = stored
	if user, ok := r.store.users[stored.UserID]; ok {
		user.Status = 0
		r.store.users[user.UserID] = user
	}
	return nil
}

type memCityRepo struct {
	cities map[uint]models.City
	nextID uint
}

func newMemCityRepo() *memCityRepo {
	return &memCityRepo{cities: map[uint]models.City{}, nextID: 1}
}

func (r *memCityRepo) Create(city *models.City) error {
	city.CityID = r.nextID
	r.nextID++
	r.cities[city.CityID] = *city
	return nil
}

func (r *memCityRepo) FindByName(name string) (*models.City, error) {
	for _, city := range r.cities {
		if city.CityName == name {
			found := city
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCityRepo) FindByID(id uint) (*models.City, error) {
	city, ok := r.cities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := city
	return &found, nil
}

func (r *memCityRepo) FindByIDWithDestinations(id uint) (*models.City, error) {
	return r.FindByID(id)
}

func (r *memCityRepo) List(limit, offset int) ([]models.City, int64, error) {
	ids := make([]uint, 0, len(r.cities))
	for id := range r.cities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	cities := []models.City{}
	for i, id := range ids {
		if i < offset || len(cities) >= limit {
			continue
		}
		cities = append(cities, r.cities[id])
	}
	return cities, int64(len(ids)), nil
}

func (r *memCityRepo) Save(city *models.City) error {
	if _, ok := r.cities[city.CityID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.cities[city.CityID] = *city
	return nil
}

func (r *memCityRepo) Delete(city *models.City) error {
	if _, ok := r.cities[city.CityID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.cities, city.CityID)
	return nil
}

type memDestinationRepo struct {
	destinations map[uint]models.Destination
	nextID       uint
}

func newMemDestinationRepo() *memDestinationRepo {
	return &memDestinationRepo{destinations: map[uint]models.Destination{}, nextID: 1}
}

func (r *memDestinationRepo) Create(destination *models.Destination) error {
	destination.DestinationID = r.nextID
	r.nextID++
	r.destinations[destination.DestinationID] = *destination
	return nil
}

func (r *memDestinationRepo) FindByID(id uint) (*models.Destination, error) {
	destination, ok := r.destinations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := destination
	return &found, nil
}

func (r *memDestinationRepo) FindByName(name string) (*models.Destination, error) {
	for _, destination := range r.destinations {
		if destination.DestinationName == name {
			found := destination
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memDestinationRepo) List(limit, offset int) ([]models.Destination, int64, error) {
	ids := make([]uint, 0, len(r.destinations))
	for id := range r.destinations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	destinations := []models.Destination{}
	for i, id := range ids {
		if i < offset || len(destinations) >= limit {
			continue
		}
		destinations = append(destinations, r.destinations[id])
	}
	return destinations, int64(len(ids)), nil
}

func (r *memDestinationRepo) Save(destination *models.Destination) error {
	if _, ok := r.destinations[destination.DestinationID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.destinations[destination.DestinationID] = *destination
	return nil
}

func (r *memDestinationRepo) Delete(destination *models.Destination) error {
	if _, ok := r.destinations[destination.DestinationID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.destinations, destination.DestinationID)
	return nil
}

type memTripRepo struct {
	trips  map[uint]models.Trip
	nextID uint
}

func newMemTripRepo() *memTripRepo {
	return &memTripRepo{trips: map[uint]models.Trip{}, nextID: 1}
}

func (r *memTripRepo) CreateWithDetails(trip *models.Trip, itineraries []models.Itinerary, hotels []models.HotelAssign) error {
	trip.TripID = r.nextID
	r.nextID++
	for i := range itineraries {
		itineraries[i].ItineraryID = uint(i + 1)
		itineraries[i].TripID = trip.TripID
	}
	for i := range hotels {
		hotels[i].AssignmentID = uint(i + 1)
		hotels[i].TripID = trip.TripID
	}
	trip.Itineraries = itineraries
	trip.HotelAssignments = hotels
	r.trips[trip.TripID] = *trip
	return nil
}

func (r *memTripRepo) ListByTraveler(travelerID uint) ([]models.Trip, error) {
	ids := make([]uint, 0, len(r.trips))
	for id := range r.trips {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	trips := []models.Trip{}
	for _, id := range ids {
		if r.trips[id].TravelerID == travelerID {
			trips = append(trips, r.trips[id])
		}
	}
	return trips, nil
}

func (r *memTripRepo) FindByID(id uint) (*models.Trip, error) {
	trip, ok := r.trips[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := trip
	return &found, nil
}

func (r *memTripRepo) FindBare(id uint) (*models.Trip, error) {
	trip, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	trip.Itineraries = nil
	trip.HotelAssignments = nil
	trip.City = nil
	return trip, nil
}

func (r *memTripRepo) Delete(trip *models.Trip) error {
	if _, ok := r.trips[trip.TripID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.trips, trip.TripID)
	return nil
}

type memStatsRepo struct {
	totalUsers  int64
	byStatus    map[int]int64
	signUps     []repository.MonthCount
	byGender    []repository.GenderCount
	byCountry   []repository.CountryCount
	totalTrips  int64
	mostPopular *repository.PopularCity
}

func (r *memStatsRepo) TravelerUserCount() (int64, error) { return r.totalUsers, nil }
func (r *memStatsRepo) TravelerUserCountByStatus(status int) (int64, error) {
	return r.byStatus[status], nil
}
func (r *memStatsRepo) SignUpsByMonth() ([]repository.MonthCount, error)      { return r.signUps, nil }
func (r *memStatsRepo) TravelersByGender() ([]repository.GenderCount, error)  { return r.byGender, nil }
func (r *memStatsRepo) TravelersByCountry() ([]repository.CountryCount, error) {
	return r.byCountry, nil
}
func (r *memStatsRepo) TripCount() (int64, error)                        { return r.totalTrips, nil }
func (r *memStatsRepo) MostPopularCity() (*repository.PopularCity, error) { return r.mostPopular, nil }

// External dependency fakes.

type fakeTokenIssuer struct {
	lastUserID uint
	lastRole   string
}

func (f *fakeTokenIssuer) GenerateToken(userID uint, role string) (string, error) {
	f.lastUserID = userID
	f.lastRole = role
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

type sentMail struct {
	to          string
	subject     string
	html        string
	attachments []clients.Attachment
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, html string, attachments []clients.Attachment) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html, attachments: attachments})
	return nil
}

type fakePlaces struct {
	nearby     []clients.NearbyHotel
	nearbyErr  error
	details    map[string]clients.PlaceDetails
	detailsErr error
	calls      int
}

func (f *fakePlaces) NearbyHotels(ctx context.Context, lat, lng float64) ([]clients.NearbyHotel, error) {
	if f.nearbyErr != nil {
		return nil, f.nearbyErr
	}
	return f.nearby, nil
}

func (f *fakePlaces) PlaceDetails(ctx context.Context, placeID string) (*clients.PlaceDetails, error) {
	f.calls++
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	details, ok := f.details[placeID]
	if !ok {
		return nil, fmt.Errorf("unknown place %q", placeID)
	}
	return &details, nil
}

type fakeRecommender struct {
	days  []clients.RecommendedDay
	err   error
	calls int
	last  clients.RecommendationInput
}

func (f *fakeRecommender) Recommend(ctx context.Context, input clients.RecommendationInput) ([]clients.RecommendedDay, error) {
	f.calls++
	f.last = input
	if f.err != nil {
		return nil, f.err
	}
	return f.days, nil
}
