package main

import (
	"log"
	"net/http"

	"trek_seeker/internal/clients"
	"trek_seeker/internal/config"
	"trek_seeker/internal/controllers"
	"trek_seeker/internal/logger"
	"trek_seeker/internal/middleware"
	"trek_seeker/internal/repository"
	"trek_seeker/internal/routes"
	"trek_seeker/internal/services"
)

func main() {
	// Structured logging to file
	logger.Setup()

	cfg := config.Load()
	db := config.InitDB(cfg)

	userRepo := repository.NewGormUserRepository(db)
	travelerRepo := repository.NewGormTravelerRepository(db)
	cityRepo := repository.NewGormCityRepository(db)
	destinationRepo := repository.NewGormDestinationRepository(db)
	tripRepo := repository.NewGormTripRepository(db)
	statsRepo := repository.NewGormStatsRepository(db)

	auth := middleware.NewAuth(cfg.JWTSecret)
	places := clients.NewGooglePlacesClient(cfg.PlacesAPIKey)
	recommender := clients.NewRecommenderClient(cfg.RecommenderURL)
	mailer := clients.NewGomailMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, cfg.MailFromName)

	authService := services.NewAuthService(userRepo, auth, mailer, cfg.FrontendURL)
	userService := services.NewUserService(userRepo)
	travelerService := services.NewTravelerService(travelerRepo, userRepo)
	cityService := services.NewCityService(cityRepo)
	destinationService := services.NewDestinationService(destinationRepo)
	tripService := services.NewTripService(tripRepo, travelerRepo, places)
	generateService := services.NewGenerateTripService(cityRepo, destinationRepo, recommender)
	hotelService := services.NewHotelService(places)
	adminService := services.NewAdminService(statsRepo)
	emailService := services.NewEmailService(mailer)

	r := routes.SetupRouter(routes.Deps{
		Auth:                   auth,
		AuthController:         controllers.NewAuthController(authService),
		UserController:         controllers.NewUserController(userService),
		TravelerController:     controllers.NewTravelerController(travelerService),
		CityController:         controllers.NewCityController(cityService),
		DestinationController:  controllers.NewDestinationController(destinationService),
		TripController:         controllers.NewTripController(tripService),
		GenerateTripController: controllers.NewGenerateTripController(generateService),
		HotelController:        controllers.NewHotelController(hotelService),
		AdminController:        controllers.NewAdminController(adminService),
		EmailController:        controllers.NewEmailController(emailService),
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :" + cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
