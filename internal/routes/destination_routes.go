package routes

import (
	"github.com/gin-gonic/gin"
)

func DestinationRoutes(api *gin.RouterGroup, deps Deps) {
	destinations := api.Group("/destinations")
	destinations.Use(deps.Auth.RequireAuth())
	{
		destinations.POST("", deps.DestinationController.Create)
		destinations.GET("", deps.DestinationController.List)
		destinations.GET("/:id", deps.DestinationController.Get)
		destinations.PUT("/:id", deps.DestinationController.Update)
		destinations.DELETE("/:id", deps.DestinationController.Delete)
	}
}
