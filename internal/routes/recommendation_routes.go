package routes

import (
	"github.com/gin-gonic/gin"
)

func RecommendationRoutes(api *gin.RouterGroup, deps Deps) {
	api.POST("/generate-trip", deps.GenerateTripController.Generate)
	api.POST("/hotels/recommendations", deps.HotelController.Recommendations)
}
