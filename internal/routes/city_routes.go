package routes

import (
	"github.com/gin-gonic/gin"
)

// Item operations live under the singular /city path, the listing under
// /cities.
func CityRoutes(api *gin.RouterGroup, deps Deps) {
	authed := api.Group("")
	authed.Use(deps.Auth.RequireAuth())
	{
		authed.POST("/city", deps.CityController.Create)
		authed.GET("/cities", deps.CityController.List)
		authed.GET("/city/:id", deps.CityController.Get)
		authed.PUT("/city/:id", deps.CityController.Update)
		authed.DELETE("/city/:id", deps.CityController.Delete)
	}
}
