package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bookeasy/config"
	"bookeasy/database"
	blockedRepo "bookeasy/database/repository/blocked"
	bookingRepo "bookeasy/database/repository/booking"
	branchRepo "bookeasy/database/repository/branch"
	serviceRepo "bookeasy/database/repository/service"
	staffRepo "bookeasy/database/repository/staff"
	"bookeasy/handlers"
	"bookeasy/middleware"
	"bookeasy/routes"
	"bookeasy/services/availability"
	"bookeasy/services/booking"
	"bookeasy/services/catalog"
	"bookeasy/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	branches := branchRepo.NewMongoBranchRepo()
	services := serviceRepo.NewMongoServiceRepo()
	staff := staffRepo.NewMongoStaffRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	blocked := blockedRepo.NewMongoBlockedRepo()

	// services.
	engine := &availability.Engine{
		Granularity: config.AppConfig.SlotGranularityMin,
		Buffer:      config.AppConfig.SlotBufferMin,
		Logger:      logger,
	}
	bookingService := &booking.DefaultBookingService{
		StaffRepo:   staff,
		ServiceRepo: services,
		BookingRepo: bookings,
		BlockedRepo: blocked,
		Engine:      engine,
		Cache:       utils.GetCacheClient(),
		CacheTTL:    time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
	}
	catalogService := &catalog.DefaultCatalogService{
		BranchRepo:  branches,
		ServiceRepo: services,
		StaffRepo:   staff,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)

	routes.RegisterRoutes(router, bookingHandler, catalogHandler)

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
