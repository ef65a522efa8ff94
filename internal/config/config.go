package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr string
	// Auth / Security
	JWTSecret  string
	JWTIssuer  string
	TokenTTL   time.Duration
	BcryptCost int

	// Infrastructure
	DBAddr  string
	DBDebug bool

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	// First-run admin account; registration itself is admin-gated, so the
	// very first admin has to come from the environment.
	SeedAdminEmail    string
	SeedAdminPassword string
}

func Load() (*Config, error) {
	// .env is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// required values
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET")
	}

	cfg.DBAddr = os.Getenv("DB_ADDR")
	if cfg.DBAddr == "" {
		return nil, fmt.Errorf("missing required env var: DB_ADDR")
	}

	cfg.JWTIssuer = getEnv("JWT_ISSUER", "employee-service")
	cfg.DBDebug = os.Getenv("DB_DEBUG") == "true"

	// optional with defaults
	ttl, err := getDuration("TOKEN_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	cost, err := getInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}
	cfg.BcryptCost = cost

	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	cfg.SeedAdminEmail = os.Getenv("SEED_ADMIN_EMAIL")
	cfg.SeedAdminPassword = os.Getenv("SEED_ADMIN_PASSWORD")

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, v, err)
	}
	return n, nil
}
