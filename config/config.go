package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBPath      string
	JWTSecret   string
	TokenTTLMin int
	NcPolicy    string // department|assigned_user
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	ttl, err := strconv.Atoi(get("TOKEN_TTL_MIN", "60"))
	if err != nil || ttl <= 0 {
		ttl = 60
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		DBPath:      get("DB_PATH", "audir.db"),
		JWTSecret:   get("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLMin: ttl,
		NcPolicy:    get("NC_POLICY", "department"),
	}
	log.Printf("[cfg] port=%s db=%s token_ttl_min=%d nc_policy=%s", cfg.Port, cfg.DBPath, cfg.TokenTTLMin, cfg.NcPolicy)
	return cfg
}
