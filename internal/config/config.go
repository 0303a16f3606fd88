// Package config reads service settings from the environment, after loading
// an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	OutputDir   string
	LogoPath    string
	DatabaseURL string
	TokenKey    string
	RateLimit   float64
	RateBurst   int
	Debug       bool
	TLSCert     string
	TLSKey      string
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Addr:        env("SPT_ADDR", ":8080"),
		OutputDir:   env("SPT_OUTPUT_DIR", "./static/pdfs"),
		LogoPath:    env("SPT_LOGO_PATH", "./static/img/logo.png"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TokenKey:    os.Getenv("TOKEN_KEY"),
		TLSCert:     os.Getenv("SPT_TLS_CERT"),
		TLSKey:      os.Getenv("SPT_TLS_KEY"),
	}

	var err error
	if cfg.RateLimit, err = strconv.ParseFloat(env("SPT_RATE_LIMIT", "2"), 64); err != nil {
		return Config{}, fmt.Errorf("SPT_RATE_LIMIT: %w", err)
	}
	if cfg.RateBurst, err = strconv.Atoi(env("SPT_RATE_BURST", "5")); err != nil {
		return Config{}, fmt.Errorf("SPT_RATE_BURST: %w", err)
	}
	if cfg.Debug, err = strconv.ParseBool(env("SPT_DEBUG", "false")); err != nil {
		return Config{}, fmt.Errorf("SPT_DEBUG: %w", err)
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, fmt.Errorf("SPT_TLS_CERT and SPT_TLS_KEY must be set together")
	}
	return cfg, nil
}

// TLS reports whether the server should listen with TLS.
func (c Config) TLS() bool {
	return c.TLSCert != ""
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
