package routes

import (
	"github.com/gin-gonic/gin"
)

func EmailRoutes(api *gin.RouterGroup, deps Deps) {
	api.POST("/send-email", deps.EmailController.SendItinerary)
}
