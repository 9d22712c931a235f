package routes

import (
	"github.com/gin-gonic/gin"
)

func TripRoutes(api *gin.RouterGroup, deps Deps) {
	trips := api.Group("/trips")
	trips.Use(deps.Auth.RequireAuth())
	{
		trips.POST("", deps.TripController.Create)
		trips.GET("/:travelerId", deps.TripController.ListByTraveler)
		trips.GET("/details/:id", deps.TripController.Get)
		trips.DELETE("/:id", deps.TripController.Delete)
	}
}
