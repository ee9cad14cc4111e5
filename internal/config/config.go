package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"secret":                                     {},
	"changeme":                                   {},
}

var defaultCORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// Config holds the runtime configuration. Values come from the environment,
// optionally seeded from a .env file in the working directory.
type Config struct {
	Port        string
	DBPath      string
	DatabaseURL string
	SecretKey   string
	CORSOrigins []string
	Location    *time.Location
	LogLevel    string
	LogFormat   string
	AppEnv      string
}

func (cfg *Config) IsProduction() bool {
	return strings.EqualFold(cfg.AppEnv, "production")
}

// Load reads configuration and validates the values the server cannot run
// without.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := newViper()
	cfg := &Config{
		DBPath:      v.GetString("DB_PATH"),
		DatabaseURL: strings.TrimSpace(v.GetString("DATABASE_URL")),
		CORSOrigins: parseOrigins(v.GetString("CORS_ORIGIN")),
		Location:    loadLocation(v.GetString("TZ")),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		AppEnv:      v.GetString("APP_ENV"),
	}

	port, err := ResolvePort(v.GetString("PORT"))
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	secretKey, err := ResolveSecretKey(v.GetString("SECRET_KEY"))
	if err != nil {
		return nil, err
	}
	cfg.SecretKey = secretKey

	return cfg, nil
}

// LoadStorage reads only the storage settings. Operator commands use it so
// they do not need the server secret.
func LoadStorage() (dbPath string, databaseURL string) {
	_ = godotenv.Load()
	v := newViper()
	return v.GetString("DB_PATH"), strings.TrimSpace(v.GetString("DATABASE_URL"))
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PATH", filepath.Join("data", "mcycle.db"))
	v.SetDefault("TZ", "UTC")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_ENV", "development")
	return v
}

func ResolveSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func ResolvePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q: %w", port, err)
	}
	if value < 1 || value > 65535 {
		return "", fmt.Errorf("invalid PORT %q: must be between 1 and 65535", port)
	}
	return port, nil
}

func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return append([]string(nil), defaultCORSOrigins...)
	}
	return origins
}

func loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		return time.UTC
	}
	return location
}
