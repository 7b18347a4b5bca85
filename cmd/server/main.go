package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_analyzer/internal/app/di"
	"stock_analyzer/internal/app/router"
	mdhandler "stock_analyzer/internal/feature/marketdata/transport/handler"
	"stock_analyzer/internal/platform/cache"
	infraredis "stock_analyzer/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found. Using system environment variables.")
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Usecase, wrapped with short-lived snapshot caching
	acquireUC := di.NewAcquireUsecase()
	cachedUC := cache.NewCachingSnapshotAcquirer(rdb, 5*time.Minute, acquireUC, "snapshots")

	// Handler
	analyzeH := mdhandler.NewAnalyzeHandler(cachedUC)
	keysH := mdhandler.NewKeysHandler(
		os.Getenv("ALPHA_VANTAGE_API_KEY") != "",
		os.Getenv("SERVERCHAN_KEY") != "",
	)

	r := router.NewRouter(analyzeH, keysH)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
