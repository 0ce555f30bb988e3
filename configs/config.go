package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Auth modes. Remote resolves identity against the stakeholders service;
// local verifies the bearer token in-process with JWT_SECRET.
const (
	AuthModeRemote = "remote"
	AuthModeLocal  = "local"
)

type Config struct {
	Port   string
	Mongo  MongoConfig
	Auth   AuthConfig
	Follow FollowConfig

	// ClientTimeout bounds every collaborator HTTP call.
	ClientTimeout time.Duration
}

type MongoConfig struct {
	URI    string
	DBName string
}

type AuthConfig struct {
	Mode            string
	StakeholdersURL string
	JWTSecret       string
}

type FollowConfig struct {
	FollowerURL string

	// AuthorExempt lets a blog's author comment on and like their own
	// content without a follow check.
	AuthorExempt bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Port: getenv("PORT", "3000"),
		Mongo: MongoConfig{
			URI:    os.Getenv("MONGO_URI"),
			DBName: getenv("DB_NAME", "blog"),
		},
		Auth: AuthConfig{
			Mode:            getenv("AUTH_MODE", AuthModeRemote),
			StakeholdersURL: getenv("STAKEHOLDERS_SERVICE_URL", "http://stakeholders-service:8080"),
			JWTSecret:       os.Getenv("JWT_SECRET"),
		},
		Follow: FollowConfig{
			FollowerURL:  getenv("FOLLOWER_SERVICE_URL", "http://follower-service:8080"),
			AuthorExempt: getenvBool("AUTHOR_EXEMPT", true),
		},
		ClientTimeout: 5 * time.Second,
	}

	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	switch cfg.Auth.Mode {
	case AuthModeRemote:
	case AuthModeLocal:
		if cfg.Auth.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET is required when AUTH_MODE=local")
		}
	default:
		return nil, fmt.Errorf("unknown AUTH_MODE %q", cfg.Auth.Mode)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
