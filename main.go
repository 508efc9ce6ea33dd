// File: ecotour/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecotour/config"
	"ecotour/database"
	travelerRepo "ecotour/database/repository/traveler"
	"ecotour/handlers"
	"ecotour/middleware"
	"ecotour/routes"
	"ecotour/services/intelligence"
	"ecotour/services/itinerary"
	"ecotour/services/matching"
	"ecotour/services/scoring"
	"ecotour/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitItineraryCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	travelerRepository := travelerRepo.NewMongoTravelerRepo()

	// services.
	travelerService := &matching.DefaultTravelerService{
		Repo: travelerRepository,
	}

	scorer := &scoring.DefaultScorer{}

	var enricher intelligence.Enricher = intelligence.DisabledEnricher{}
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		geminiEnricher, err := intelligence.NewGeminiEnricher(key)
		if err != nil {
			logger.Sugar().Warnf("main: Gemini enricher unavailable, itineraries use template titles: %v", err)
		} else {
			enricher = geminiEnricher
		}
	}

	llmTimeout := time.Duration(config.AppConfig.LLMTimeoutSeconds) * time.Second
	itineraryService := itinerary.NewDefaultItineraryService(scorer, enricher, llmTimeout)

	// handlers.
	itineraryHandler := handlers.NewItineraryHandler(itineraryService, scorer, utils.GetItineraryCacheClient(), logger)
	travelerHandler := handlers.NewTravelerHandler(travelerService)

	// Register routes.
	routes.RegisterRoutes(router, itineraryHandler, travelerHandler)

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
