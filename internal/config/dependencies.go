package config

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"

	"edunet-planner/pkg/mailer"
)

var (
	// Global dependency yang akan digunakan di seluruh aplikasi
	SecretKey   = []byte("secret")
	Validate    = validator.New()
	Ctx         = context.Background()
	RedisClient *redis.Client
	Mailer      *mailer.Mailer

	// DataDir adalah folder tempat users.csv dan file tasks per user disimpan
	DataDir = "data"
)
