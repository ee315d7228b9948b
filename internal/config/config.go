package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store strategies.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

// Config holds all runtime configuration, read once at process start.
type Config struct {
	Addr    string `env:"ADDR" envDefault:":8080"`
	LogPath string `env:"LOG_PATH"`

	Store    string `env:"STORE" envDefault:"sqlite"`
	DBPath   string `env:"DB_PATH" envDefault:"rocketcall.sqlite3"`
	DataFile string `env:"DATA_FILE" envDefault:"data/inquiries.json"`

	AdminPassword string `env:"ADMIN_PASSWORD"`
	SessionSecret string `env:"SESSION_SECRET"`
	SecureCookies bool   `env:"SECURE_COOKIES"`

	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

// defaultAdminPassword is used when ADMIN_PASSWORD is unset or blank.
const defaultAdminPassword = "admin1234"

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if strings.TrimSpace(cfg.AdminPassword) == "" {
		cfg.AdminPassword = defaultAdminPassword
	}

	switch cfg.Store {
	case StoreSQLite, StoreFile:
	default:
		return nil, fmt.Errorf("unknown STORE value %q (expected %q or %q)", cfg.Store, StoreSQLite, StoreFile)
	}

	return cfg, nil
}
