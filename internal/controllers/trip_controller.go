package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trek_seeker/internal/services"
)

type TripController struct {
	trips *services.TripService
}

func NewTripController(trips *services.TripService) *TripController {
	return &TripController{trips: trips}
}

type createTripRequest struct {
	CityID         uint                          `json:"CityID" binding:"required"`
	TripName       string                        `json:"TripName"`
	StartDate      string                        `json:"StartDate" binding:"required"`
	EndDate        string                        `json:"EndDate" binding:"required"`
	TravelerID     uint                          `json:"TravelerID" binding:"required"`
	Itineraries    []services.ItineraryInput     `json:"Itineraries"`
	Accommodations []services.AccommodationInput `json:"Accommodations"`
}

func (ctl *TripController) Create(c *gin.Context) {
	var body createTripRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	startDate, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid start date"})
		return
	}
	endDate, err := time.Parse("2006-01-02", body.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid end date"})
		return
	}
	if endDate.Before(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "End date must not be before start date"})
		return
	}

	trip, err := ctl.trips.Create(services.CreateTripInput{
		CityID:         body.CityID,
		TripName:       body.TripName,
		StartDate:      startDate,
		EndDate:        endDate,
		TravelerID:     body.TravelerID,
		Itineraries:    body.Itineraries,
		Accommodations: body.Accommodations,
	})
	if err != nil {
		logrus.WithError(err).Error("trip create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusCreated, trip)
}

func (ctl *TripController) ListByTraveler(c *gin.Context) {
	travelerID, err := strconv.ParseUint(c.Param("travelerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid traveler ID"})
		return
	}

	trips, err := ctl.trips.ListByTraveler(uint(travelerID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Traveler not found"})
			return
		}
		logrus.WithError(err).Error("trip list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, trips)
}

func (ctl *TripController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid trip ID"})
		return
	}

	trip, err := ctl.trips.Get(c.Request.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
		case errors.Is(err, services.ErrExternal):
			logrus.WithError(err).Error("accommodation lookup failed")
			c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch accommodation details"})
		default:
			logrus.WithError(err).Error("trip fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, trip)
}

func (ctl *TripController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid trip ID"})
		return
	}

	if err := ctl.trips.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
			return
		}
		logrus.WithError(err).Error("trip delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}
