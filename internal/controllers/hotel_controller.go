package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trek_seeker/internal/services"
)

type HotelController struct {
	hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{hotels: hotels}
}

func (ctl *HotelController) Recommendations(c *gin.Context) {
	var body struct {
		Destinations []services.DayLocation `json:"destinations" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input data"})
		return
	}

	recommendations, err := ctl.hotels.Recommendations(c.Request.Context(), body.Destinations)
	if err != nil {
		if errors.Is(err, services.ErrExternal) {
			logrus.WithError(err).Error("hotel recommendation failed")
			c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch hotel recommendations"})
			return
		}
		logrus.WithError(err).Error("hotel recommendation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
