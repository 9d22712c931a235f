package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"trek_seeker/internal/controllers"
	"trek_seeker/internal/middleware"
)

// Deps bundles everything the route tree needs.
type Deps struct {
	Auth *middleware.Auth

	AuthController         *controllers.AuthController
	UserController         *controllers.UserController
	TravelerController     *controllers.TravelerController
	CityController         *controllers.CityController
	DestinationController  *controllers.DestinationController
	TripController         *controllers.TripController
	GenerateTripController *controllers.GenerateTripController
	HotelController        *controllers.HotelController
	AdminController        *controllers.AdminController
	EmailController        *controllers.EmailController
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	api := r.Group("/api")

	AuthRoutes(api, deps)
	UserRoutes(api, deps)
	TravelerRoutes(api, deps)
	CityRoutes(api, deps)
	DestinationRoutes(api, deps)
	TripRoutes(api, deps)
	RecommendationRoutes(api, deps)
	AdminRoutes(api, deps)
	EmailRoutes(api, deps)

	return r
}
