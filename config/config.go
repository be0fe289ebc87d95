package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all process configuration. Values are read from the
// environment (a .env file, if present, is loaded by main before this).
type Config struct {
	Env            string
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	JWTExpiryHours int
	RedisAddr      string
	RedisPassword  string
	CacheTTL       time.Duration
	CORSOrigins    []string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DB", "investoxpert")
	v.SetDefault("JWT_EXPIRY_HOURS", 168)
	v.SetDefault("CACHE_TTL_SECONDS", 60)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	cfg := &Config{
		Env:            v.GetString("ENV"),
		Port:           v.GetString("PORT"),
		MongoURI:       v.GetString("MONGODB_URI"),
		MongoDB:        v.GetString("MONGODB_DB"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		CacheTTL:       time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		CORSOrigins:    strings.Split(v.GetString("CORS_ORIGINS"), ","),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}

	return cfg, nil
}

func (c *Config) Development() bool {
	return c.Env != "production"
}
