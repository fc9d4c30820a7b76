package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all environment variables for the FreshEats backend.
type Config struct {
	Port      string
	Env       string
	MongoURI  string
	MongoDB   string
	RedisURL  string
	JWTSecret string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	KafkaBrokers []string
	KafkaTopic   string

	AuthRatePerMinute int
	AuthRateBurst     int
}

// LoadConfig loads environment variables into a Config struct and validates
// them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:      os.Getenv("PORT"),
		Env:       os.Getenv("APP_ENV"),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   os.Getenv("MONGO_DB"),
		RedisURL:  os.Getenv("REDIS_URL"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     os.Getenv("POSTGRES_PORT"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),

		KafkaTopic: os.Getenv("KAFKA_TOPIC"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "fresheats"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379"
	}
	if cfg.PostgresHost == "" {
		cfg.PostgresHost = "localhost"
	}
	if cfg.PostgresPort == "" {
		cfg.PostgresPort = "5432"
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "order-events"
	}
	cfg.AuthRatePerMinute = intEnv("AUTH_RATE_PER_MINUTE", 100)
	cfg.AuthRateBurst = intEnv("AUTH_RATE_BURST", 50)

	// Validate required fields
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func intEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
