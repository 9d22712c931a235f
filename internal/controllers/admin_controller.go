package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trek_seeker/internal/services"
)

type AdminController struct {
	admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{admin: admin}
}

func (ctl *AdminController) Dashboard(c *gin.Context) {
	stats, err := ctl.admin.Dashboard()
	if err != nil {
		logrus.WithError(err).Error("dashboard stats failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
