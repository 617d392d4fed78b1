package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"edunet-planner/configs"
	v1 "edunet-planner/internal/api/v1"
	"edunet-planner/internal/config"
	"edunet-planner/internal/middleware"
	"edunet-planner/pkg/database"
	"edunet-planner/pkg/logger"
	"edunet-planner/pkg/mailer"
)

func main() {
	// Inisialisasi logger
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	// Load config
	cfg := configs.LoadConfig()
	config.DataDir = cfg.DataDir
	config.SecretKey = []byte(cfg.JWTSecret)
	config.Mailer = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)

	// Inisialisasi Redis untuk cache dashboard (opsional)
	config.RedisClient = database.ConnectRedis(cfg)
	if config.RedisClient != nil {
		defer config.RedisClient.Close()
		logger.SystemLogger.Info("Redis connected, dashboard cache enabled")
	}

	app := fiber.New()

	// Middleware
	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Daftarkan route API v1
	v1.RegisterRoutes(app)

	logger.SystemLogger.Info("Application ready", zap.Int("port", cfg.Port))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
