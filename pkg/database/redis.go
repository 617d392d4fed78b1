package database

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"edunet-planner/configs"
	"edunet-planner/internal/config"
	"edunet-planner/pkg/logger"
)

// ConnectRedis menghubungkan ke Redis untuk cache dashboard. Redis di
// sini opsional: jika REDIS_HOST kosong atau server tidak bisa
// dihubungi, cache dilewati dan aplikasi tetap jalan di atas file CSV.
func ConnectRedis(cfg configs.Config) *redis.Client {
	if cfg.RedisHost == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: "",
		DB:       0,
	})
	if err := client.Ping(config.Ctx).Err(); err != nil {
		logger.SystemLogger.Warn("Redis not reachable, dashboard cache disabled", zap.Error(err))
		return nil
	}
	return client
}
