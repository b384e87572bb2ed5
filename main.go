// File: wayfare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfare/config"
	"wayfare/cron"
	"wayfare/database"
	bookingsRepo "wayfare/database/repository/bookings"
	"wayfare/handlers"
	"wayfare/middleware"
	"wayfare/routes"
	"wayfare/services/dialogue"
	"wayfare/services/providers"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	placesProvider, err := providers.NewGooglePlacesProvider(config.AppConfig.GoogleAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize places provider: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingsRepo.NewMongoBookingRepo()

	// services.
	ctxStore := dialogue.NewRedisContextStore(
		utils.GetDialogueCtxCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	catalog := providers.NewCatalogProvider()
	dialogueService := &dialogue.DefaultDialogueService{
		Contexts:    ctxStore,
		Weather:     providers.NewOpenWeatherProvider(config.AppConfig.OpenWeatherAPIKey),
		Hotels:      catalog,
		Flights:     catalog,
		Attractions: placesProvider,
		Bookings:    bookingRepo,
		Reminders:   cron.NewAsynqReminderScheduler(),
	}
	cron.InitReminderWorker()

	chatHandler := handlers.NewChatHandler(dialogueService)
	sttHandler := handlers.NewSTTHandler(dialogueService)
	bookingsHandler := handlers.NewBookingsHandler(bookingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BookingRepo: bookingRepo,

		// Chat endpoints.
		ProcessTurnHandler: chatHandler.ProcessTurn,
		STTHandler:         sttHandler.Transcribe,

		// Booking endpoints.
		ListBookingsHandler: bookingsHandler.ListBookings,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
