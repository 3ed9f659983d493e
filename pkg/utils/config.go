package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

// LoadEnv loads a .env file if one is present. Missing files are fine;
// real deployments set env vars directly.
func LoadEnv() {
	_ = godotenv.Load()
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("RSDHUB_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("RSDHUB_JWT_ISSUER")
	if issuer == "" {
		issuer = "rsdhub"
	}

	dur := 24 * time.Hour
	if ttl := os.Getenv("RSDHUB_JWT_TTL_HOURS"); ttl != "" {
		if h, err := strconv.Atoi(ttl); err == nil && h > 0 {
			dur = time.Duration(h) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: dur,
	}
}
