package routes

import (
	"github.com/gin-gonic/gin"
)

func UserRoutes(api *gin.RouterGroup, deps Deps) {
	users := api.Group("/users")
	users.Use(deps.Auth.RequireAuth())
	{
		users.POST("", deps.UserController.Create)
		users.GET("", deps.UserController.List)
		users.GET("/:id", deps.UserController.Get)
		users.PUT("/:id", deps.UserController.Update)
		users.DELETE("/:id", deps.UserController.Delete)
	}
}
