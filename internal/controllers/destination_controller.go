package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trek_seeker/internal/services"
)

type DestinationController struct {
	destinations *services.DestinationService
}

func NewDestinationController(destinations *services.DestinationService) *DestinationController {
	return &DestinationController{destinations: destinations}
}

func (ctl *DestinationController) Create(c *gin.Context) {
	var input services.CreateDestinationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	destination, err := ctl.destinations.Create(input)
	if err != nil {
		logrus.WithError(err).Error("destination create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusCreated, destination)
}

func (ctl *DestinationController) List(c *gin.Context) {
	limit, page := paginationParams(c)

	destinations, total, err := ctl.destinations.List(limit, page)
	if err != nil {
		logrus.WithError(err).Error("destination list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, pagedResponse(destinations, total, limit, page))
}

func (ctl *DestinationController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid destination ID"})
		return
	}

	destination, err := ctl.destinations.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Destination not found"})
			return
		}
		logrus.WithError(err).Error("destination fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, destination)
}

func (ctl *DestinationController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid destination ID"})
		return
	}

	var update services.DestinationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	destination, err := ctl.destinations.Update(uint(id), update)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Destination not found"})
			return
		}
		logrus.WithError(err).Error("destination update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, destination)
}

func (ctl *DestinationController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid destination ID"})
		return
	}

	if err := ctl.destinations.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Destination not found"})
			return
		}
		logrus.WithError(err).Error("destination delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted successfully"})
}
