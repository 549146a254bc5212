package db

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns nil when REDIS_ADDR is unset or the server is
// unreachable; callers treat a nil client as cache-off.
func InitRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("Redis not configured, catalog cache disabled")
		return nil
	}
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PWD"),
		DB:       redisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unreachable, catalog cache disabled: %v", err)
		return nil
	}
	return client
}
