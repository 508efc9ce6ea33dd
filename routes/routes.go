package routes

import (
	"net/http"
	"time"

	"ecotour/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterItineraryRoutes registers itinerary generation and scoring endpoints.
func RegisterItineraryRoutes(r *gin.Engine, ih *handlers.ItineraryHandler) {
	api := r.Group("/api/itineraries")
	{
		api.POST("/generate", ih.GenerateItinerariesHandler)
		api.POST("/compare", ih.CompareItinerariesHandler)
		api.GET("/:id", ih.GetItineraryHandler)
		api.GET("/:id/score", ih.GetItineraryScoreHandler)
	}
	r.POST("/api/score", ih.ScoreItineraryHandler)
	r.GET("/api/sustainability-tips", ih.SustainabilityTipsHandler)
}

// RegisterTravelerRoutes registers traveler profile and group matching endpoints.
func RegisterTravelerRoutes(r *gin.Engine, th *handlers.TravelerHandler) {
	api := r.Group("/api/travelers")
	{
		api.POST("", th.CreateTravelerProfileHandler)
		api.GET("", th.ListTravelersHandler)
		api.POST("/:id/find-group", th.FindGroupHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Ecotour"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ih *handlers.ItineraryHandler, th *handlers.TravelerHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterItineraryRoutes(r, ih)
	RegisterTravelerRoutes(r, th)
	RegisterHealthRoute(r)
}
