package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"ecotour/data"
	"ecotour/models"
	"ecotour/services/itinerary"
	"ecotour/services/scoring"
	"ecotour/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cached itineraries live for a day; the store is a session cache, not a database.
const itineraryCacheTTL = 24 * time.Hour

// Options generated when the caller does not ask for a specific count.
const defaultOptionCount = 3

// ItineraryHandler exposes itinerary generation and scoring endpoints.
type ItineraryHandler struct {
	Service     itinerary.ItineraryService
	Scorer      scoring.Scorer
	CacheClient *redis.Client
	Logger      *zap.Logger
}

// NewItineraryHandler builds an ItineraryHandler.
func NewItineraryHandler(service itinerary.ItineraryService, scorer scoring.Scorer, cacheClient *redis.Client, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		Service:     service,
		Scorer:      scorer,
		CacheClient: cacheClient,
		Logger:      logger,
	}
}

func itineraryCacheKey(id string) string {
	return "itinerary:" + id
}

// GenerateItinerariesHandler generates 1-5 ranked itinerary options.
func (h *ItineraryHandler) GenerateItinerariesHandler(c *gin.Context) {
	var input models.TripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	options := defaultOptionCount
	if raw := c.Query("options"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < itinerary.MinOptions || parsed > itinerary.MaxOptions {
			utils.JSONError(c, http.StatusBadRequest, "invalid options count",
				fmt.Sprintf("options must be an integer between %d and %d", itinerary.MinOptions, itinerary.MaxOptions))
			return
		}
		options = parsed
	}

	itineraries, err := h.Service.GenerateMultiple(c.Request.Context(), input, options)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate itineraries", err.Error())
		return
	}

	h.cacheItineraries(c.Request.Context(), itineraries)

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"origin":      input.Origin,
		"destination": input.Destination,
		"days":        input.Days,
		"itineraries": itineraries,
		"message":     fmt.Sprintf("Generated %d sustainable itinerary options", len(itineraries)),
	})
}

// cacheItineraries stores generated options for later lookup. Cache write
// failures are logged and ignored; generation already succeeded.
func (h *ItineraryHandler) cacheItineraries(ctx context.Context, itineraries []models.Itinerary) {
	for _, it := range itineraries {
		payload, err := json.Marshal(it)
		if err != nil {
			h.Logger.Warn("failed to marshal itinerary for cache", zap.String("id", it.ID), zap.Error(err))
			continue
		}
		if err := h.CacheClient.Set(ctx, itineraryCacheKey(it.ID), payload, itineraryCacheTTL).Err(); err != nil {
			h.Logger.Warn("failed to cache itinerary", zap.String("id", it.ID), zap.Error(err))
		}
	}
}

func (h *ItineraryHandler) loadItinerary(ctx context.Context, id string) (*models.Itinerary, error) {
	payload, err := h.CacheClient.Get(ctx, itineraryCacheKey(id)).Result()
	if err != nil {
		return nil, err
	}
	var it models.Itinerary
	if err := json.Unmarshal([]byte(payload), &it); err != nil {
		return nil, fmt.Errorf("failed to parse cached itinerary: %w", err)
	}
	return &it, nil
}

// GetItineraryHandler returns a previously generated itinerary by ID.
func (h *ItineraryHandler) GetItineraryHandler(c *gin.Context) {
	id := c.Param("id")
	it, err := h.loadItinerary(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "itinerary not found", fmt.Sprintf("no itinerary with id %s", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "itinerary": it})
}

// GetItineraryScoreHandler returns the sustainability breakdown of a
// previously generated itinerary.
func (h *ItineraryHandler) GetItineraryScoreHandler(c *gin.Context) {
	id := c.Param("id")
	it, err := h.loadItinerary(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "itinerary not found", fmt.Sprintf("no itinerary with id %s", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"itineraryId":   it.ID,
		"title":         it.Title,
		"totalScore":    it.Sustainability.TotalScore,
		"totalCarbonKg": it.Sustainability.TotalCarbonKg,
		"breakdown":     it.Sustainability.Breakdown,
		"explanation":   it.Sustainability.Explanation,
	})
}

// CompareRequest names previously generated itineraries to compare.
type CompareRequest struct {
	ItineraryIDs []string `json:"itineraryIds" binding:"required,min=1"`
}

// comparisonEntry is one itinerary's position in a ranking.
type comparisonEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Score    float64 `json:"score,omitempty"`
	CarbonKg float64 `json:"carbonKg,omitempty"`
}

// buildComparison ranks itineraries by total score descending and by total
// carbon ascending. Ties keep input order.
func buildComparison(itineraries []models.Itinerary) (byScore, byCarbon []comparisonEntry) {
	for _, it := range itineraries {
		byScore = append(byScore, comparisonEntry{ID: it.ID, Title: it.Title, Score: it.Sustainability.TotalScore})
		byCarbon = append(byCarbon, comparisonEntry{ID: it.ID, Title: it.Title, CarbonKg: it.Sustainability.TotalCarbonKg})
	}
	sort.SliceStable(byScore, func(i, j int) bool { return byScore[i].Score > byScore[j].Score })
	sort.SliceStable(byCarbon, func(i, j int) bool { return byCarbon[i].CarbonKg < byCarbon[j].CarbonKg })
	return byScore, byCarbon
}

// CompareItinerariesHandler compares previously generated itineraries
// side-by-side. IDs missing from the cache are skipped; an empty resolution
// is a 404.
func (h *ItineraryHandler) CompareItinerariesHandler(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var itineraries []models.Itinerary
	for _, id := range req.ItineraryIDs {
		it, err := h.loadItinerary(c.Request.Context(), id)
		if err != nil {
			continue
		}
		itineraries = append(itineraries, *it)
	}
	if len(itineraries) == 0 {
		utils.JSONError(c, http.StatusNotFound, "no matching itineraries found", "none of the given IDs resolve to a cached itinerary")
		return
	}

	byScore, byCarbon := buildComparison(itineraries)
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"count":       len(itineraries),
		"itineraries": itineraries,
		"comparison": gin.H{
			"byScore":  byScore,
			"byCarbon": byCarbon,
		},
	})
}

// SustainabilityTipsHandler returns sustainable travel tips for a destination.
func (h *ItineraryHandler) SustainabilityTipsHandler(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "destination query parameter is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"destination": destination,
		"tips":        data.SustainabilityTips(destination),
		"message":     fmt.Sprintf("Sustainability tips for %s", destination),
	})
}

// ScoreRequest is a direct scoring request for a caller-supplied activity set.
type ScoreRequest struct {
	Destination         string              `json:"destination" binding:"required"`
	Days                int                 `json:"days" binding:"required,min=1"`
	TransportPreference models.TransportMode `json:"transportPreference" binding:"required"`
	Activities          []models.Activity   `json:"activities"`
	Accommodation       string              `json:"accommodation"`
	TotalDistanceKm     float64             `json:"totalDistanceKm"`
}

// ScoreItineraryHandler scores a caller-supplied activity set without
// generating an itinerary first.
func (h *ItineraryHandler) ScoreItineraryHandler(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.Accommodation == "" {
		req.Accommodation = "hotel"
	}

	result := h.Scorer.Score(scoring.Input{
		Destination:         req.Destination,
		Days:                req.Days,
		TransportPreference: req.TransportPreference,
		Activities:          req.Activities,
		Accommodation:       req.Accommodation,
		TotalDistanceKm:     req.TotalDistanceKm,
	})

	c.JSON(http.StatusOK, gin.H{"status": "success", "sustainability": result})
}
