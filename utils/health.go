package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisOK := false
			if redisClient != nil {
				if _, err := redisClient.Ping(ctx).Result(); err == nil {
					redisOK = true
				}
			}

			mongoOK := false
			if mongoClient != nil {
				pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
				if err := mongoClient.Ping(pingCtx, nil); err == nil {
					mongoOK = true
				}
				cancel()
			}

			healthMu.Lock()
			currentHealth = HealthStatus{
				Mongo:     mongoOK,
				Redis:     redisOK,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
