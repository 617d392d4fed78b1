package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DataDir        string
	JWTSecret      string
	SenderEmail    string
	SenderPassword string
	SMTPHost       string
	SMTPPort       int
	RedisHost      string
	RedisPort      int
}

func LoadConfig() Config {
	// Muat file .env
	if err := godotenv.Load(); err != nil {
		// Hanya log jika tidak dalam mode test
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using default values")
		}
	}

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 3004
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	redisPort, err := strconv.Atoi(os.Getenv("REDIS_PORT"))
	if err != nil {
		redisPort = 6379
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "secret"
	}

	return Config{
		Port:           port,
		DataDir:        dataDir,
		JWTSecret:      jwtSecret,
		SenderEmail:    os.Getenv("EDUNET_EMAIL"),
		SenderPassword: os.Getenv("EDUNET_EMAIL_PASSWORD"),
		SMTPHost:       smtpHost,
		SMTPPort:       smtpPort,
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      redisPort,
	}
}
