package routes

import (
	"github.com/gin-gonic/gin"
)

func AuthRoutes(api *gin.RouterGroup, deps Deps) {
	api.POST("/login", deps.AuthController.Login)
	api.POST("/forgot-password", deps.AuthController.ForgotPassword)
	api.POST("/reset-password", deps.AuthController.ResetPassword)
}
