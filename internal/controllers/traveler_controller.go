package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trek_seeker/internal/services"
)

type TravelerController struct {
	travelers *services.TravelerService
}

func NewTravelerController(travelers *services.TravelerService) *TravelerController {
	return &TravelerController{travelers: travelers}
}

func (ctl *TravelerController) Register(c *gin.Context) {
	var input services.RegisterTravelerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctl.travelers.Register(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		default:
			logrus.WithError(err).Error("traveler registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (ctl *TravelerController) List(c *gin.Context) {
	limit, page := paginationParams(c)

	travelers, total, err := ctl.travelers.List(limit, page)
	if err != nil {
		logrus.WithError(err).Error("traveler list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, pagedResponse(travelers, total, limit, page))
}

// ListAll returns every traveler profile without pagination, for dropdowns
// and exports.
func (ctl *TravelerController) ListAll(c *gin.Context) {
	travelers, err := ctl.travelers.ListAll()
	if err != nil {
		logrus.WithError(err).Error("traveler list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, travelers)
}

func (ctl *TravelerController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid traveler ID"})
		return
	}

	traveler, err := ctl.travelers.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Traveler not found"})
			return
		}
		logrus.WithError(err).Error("traveler fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, traveler)
}

func (ctl *TravelerController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid traveler ID"})
		return
	}

	var update services.TravelerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	traveler, err := ctl.travelers.Update(uint(id), update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Traveler not found"})
		case errors.Is(err, services.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		default:
			logrus.WithError(err).Error("traveler update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, traveler)
}

func (ctl *TravelerController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid traveler ID"})
		return
	}

	if err := ctl.travelers.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Traveler not found"})
			return
		}
		logrus.WithError(err).Error("traveler delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Traveler deleted successfully"})
}
