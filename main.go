// File: mawid/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mawid/config"
	"mawid/database"
	availabilityRepo "mawid/database/repository/availability"
	bookingRepo "mawid/database/repository/booking"
	"mawid/handlers"
	"mawid/middleware"
	"mawid/routes"
	"mawid/services/calendar"
	"mawid/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	if err := bookRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}

	// services.
	viewCache := calendar.NewRedisViewCache(utils.GetCacheClient(), time.Minute)
	calendarService := &calendar.DefaultCalendarService{
		AvailabilityRepo: availRepo,
		BookingRepo:      bookRepo,
		Cache:            viewCache,
	}

	calendarHandler := handlers.NewCalendarHandler(calendarService)
	monthHandler := handlers.NewMonthHandler(calendarService)

	routes.RegisterRoutes(router, calendarHandler, monthHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
