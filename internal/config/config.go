package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const DefaultEnvFile = ".env"

// Configuration holds everything the binary needs before any flag is applied.
type Configuration struct {
	ClientSecretFile string        `env:"CLIENT_SECRET_FILE" envDefault:"./infrastructure/auth/client_secret.json"`
	TokenFile        string        `env:"TOKEN_FILE" envDefault:"./infrastructure/token_manager/token.json"`
	CallbackURL      string        `env:"CALLBACK_URL" envDefault:"http://localhost:8080"`
	CallbackAddr     string        `env:"CALLBACK_ADDR" envDefault:":8080"`
	CallbackPath     string        `env:"CALLBACK_PATH" envDefault:"/"`
	LogDir           string        `env:"LOG_DIR" envDefault:"logs"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogMaxSizeMB     int           `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups    int           `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	CacheSize        int           `env:"CACHE_SIZE" envDefault:"256"`
	CacheTTL         time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

// Load reads the given env files (DefaultEnvFile when none) and then the
// process environment. Missing files are skipped; variables already set in
// the environment are never overridden.
func Load(files ...string) (*Configuration, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error while loading env file %s: %w", file, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error while parsing config: %w", err)
	}

	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("CACHE_SIZE must not be negative, got %d", cfg.CacheSize)
	}

	return &cfg, nil
}
