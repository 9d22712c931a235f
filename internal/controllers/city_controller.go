package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trek_seeker/internal/services"
)

type CityController struct {
	cities *services.CityService
}

func NewCityController(cities *services.CityService) *CityController {
	return &CityController{cities: cities}
}

func (ctl *CityController) Create(c *gin.Context) {
	var input services.CreateCityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	city, err := ctl.cities.Create(input)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "City already exists"})
			return
		}
		logrus.WithError(err).Error("city create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusCreated, city)
}

func (ctl *CityController) List(c *gin.Context) {
	limit, page := paginationParams(c)

	cities, total, err := ctl.cities.List(limit, page)
	if err != nil {
		logrus.WithError(err).Error("city list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, pagedResponse(cities, total, limit, page))
}

func (ctl *CityController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid city ID"})
		return
	}

	city, err := ctl.cities.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "City not found"})
			return
		}
		logrus.WithError(err).Error("city fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, city)
}

func (ctl *CityController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid city ID"})
		return
	}

	var update services.CityUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	city, err := ctl.cities.Update(uint(id), update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "City not found"})
		case errors.Is(err, services.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "City already exists"})
		default:
			logrus.WithError(err).Error("city update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, city)
}

func (ctl *CityController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid city ID"})
		return
	}

	if err := ctl.cities.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "City not found"})
			return
		}
		logrus.WithError(err).Error("city delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "City deleted successfully"})
}
