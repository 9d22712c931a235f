package routes

import (
	"github.com/gin-gonic/gin"
)

func TravelerRoutes(api *gin.RouterGroup, deps Deps) {
	// Registration and the full listing stay open for the signup page and
	// public dropdowns.
	api.POST("/traveler/register", deps.TravelerController.Register)
	api.GET("/travelers/all", deps.TravelerController.ListAll)

	authed := api.Group("")
	authed.Use(deps.Auth.RequireAuth())
	{
		authed.GET("/travelers", deps.TravelerController.List)
		authed.GET("/traveler/:id", deps.TravelerController.Get)
		authed.PUT("/traveler/:id", deps.TravelerController.Update)
		authed.DELETE("/traveler/:id", deps.TravelerController.Delete)
	}
}
