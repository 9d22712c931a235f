package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trek_seeker/internal/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (ctl *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"Email" binding:"required"`
		Password string `json:"Password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := ctl.auth.Login(body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, services.ErrInvalidCredential):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		default:
			logrus.WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctl *AuthController) ForgotPassword(c *gin.Context) {
	var body struct {
		Email string `json:"Email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := ctl.auth.SendPasswordReset(body.Email); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		logrus.WithError(err).Error("password reset email failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

func (ctl *AuthController) ResetPassword(c *gin.Context) {
	var body struct {
		ResetToken  string `json:"resetToken" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := ctl.auth.ResetPassword(body.ResetToken, body.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidResetToken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired password reset token"})
			return
		}
		logrus.WithError(err).Error("password reset failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
}
