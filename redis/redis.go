package redis

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection. Redis only backs the vendor-list cache, so a missing
	// server degrades to direct DB reads instead of aborting startup.
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis, vendor cache disabled: %v", err)
		Client = nil
		return
	}
	log.Println("Connected to Redis")
}
