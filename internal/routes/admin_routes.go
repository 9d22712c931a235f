package routes

import (
	"github.com/gin-gonic/gin"
)

func AdminRoutes(api *gin.RouterGroup, deps Deps) {
	admin := api.Group("/admin")
	admin.Use(deps.Auth.RequireAuth(), deps.Auth.RequireRoles("admin"))
	{
		admin.GET("/dashboard", deps.AdminController.Dashboard)
	}
}
