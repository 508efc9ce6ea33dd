// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"ecotour/config"

	"github.com/go-redis/redis/v8"
)

// ItineraryCacheClient is the dedicated client for generated itineraries.
var ItineraryCacheClient *redis.Client

// InitItineraryCache initializes the Redis client holding generated itineraries.
func InitItineraryCache() {
	ItineraryCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisItineraryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ItineraryCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Itinerary Cache): %v", err)
	}
}

// GetItineraryCacheClient returns the Redis client for generated itineraries.
func GetItineraryCacheClient() *redis.Client {
	if ItineraryCacheClient == nil {
		InitItineraryCache()
	}
	return ItineraryCacheClient
}
