package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	travelerRepo "ecotour/database/repository/traveler"
	"ecotour/models"
	"ecotour/services/matching"
	"ecotour/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// TravelerHandler exposes traveler profile and group matching endpoints.
type TravelerHandler struct {
	Service matching.TravelerService
}

// NewTravelerHandler builds a TravelerHandler.
func NewTravelerHandler(service matching.TravelerService) *TravelerHandler {
	return &TravelerHandler{Service: service}
}

// CreateTravelerProfileHandler creates or overwrites a traveler profile and
// attaches its computed vector.
func (h *TravelerHandler) CreateTravelerProfileHandler(c *gin.Context) {
	var profile models.TravelerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	stored, err := h.Service.CreateProfile(c.Request.Context(), profile)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create traveler profile", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"travelerId": stored.ID,
		"message":    fmt.Sprintf("Profile created for %s", stored.Name),
		"profile":    stored,
	})
}

// ListTravelersHandler returns all registered traveler profiles.
func (h *TravelerHandler) ListTravelersHandler(c *gin.Context) {
	travelers, err := h.Service.ListProfiles(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list travelers", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"count":     len(travelers),
		"travelers": travelers,
	})
}

// FindGroupHandler ranks compatible travelers for the given reference
// traveler and returns group recommendations.
func (h *TravelerHandler) FindGroupHandler(c *gin.Context) {
	travelerID := c.Param("id")
	destination := c.Query("destination")

	minSimilarity := 0.7
	if raw := c.Query("min_similarity"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid min_similarity", "min_similarity must be a number between 0 and 1")
			return
		}
		minSimilarity = parsed
	}

	result, err := h.Service.FindGroup(c.Request.Context(), travelerID, destination, minSimilarity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, travelerRepo.ErrTravelerNotFound) {
			utils.JSONError(c, http.StatusNotFound, "traveler not found", fmt.Sprintf("no traveler with id %s", travelerID))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to find group matches", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               "success",
		"travelerId":           result.TravelerID,
		"matchesFound":         result.MatchesFound,
		"topMatches":           result.TopMatches,
		"groupRecommendations": result.GroupRecommendations,
	})
}
