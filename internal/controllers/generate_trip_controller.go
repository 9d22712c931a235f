package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trek_seeker/internal/services"
)

type GenerateTripController struct {
	generator *services.GenerateTripService
}

func NewGenerateTripController(generator *services.GenerateTripService) *GenerateTripController {
	return &GenerateTripController{generator: generator}
}

func (ctl *GenerateTripController) Generate(c *gin.Context) {
	var input services.GenerateTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	trip, err := ctl.generator.Generate(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "City or destination not found"})
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format, expected YYYY-MM-DD"})
		case errors.Is(err, services.ErrExternal):
			logrus.WithError(err).Error("trip generation failed")
			c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to generate trip, please try again"})
		default:
			logrus.WithError(err).Error("trip generation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, trip)
}
