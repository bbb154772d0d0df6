package config

import (
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"finpace/internal/logger"
)

// Config holds application configuration
type Config struct {
	// Server
	Port               string
	Env                string
	CORSAllowedOrigins []string

	// Database
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	SQLitePath     string
	MigrationsPath string

	// JWT
	JWTSecret          string
	JWTAccessDuration  time.Duration
	JWTRefreshDuration time.Duration

	// Market prices
	PriceProvider string
	PriceTimeout  time.Duration
}

const (
	defaultAccessDuration  = 30 * time.Minute
	defaultRefreshDuration = 7 * 24 * time.Hour
	defaultPriceTimeout    = 10 * time.Second
)

var (
	appConfig *Config
	mu        sync.RWMutex
)

// Load reads configuration from the environment (and a .env file if present),
// applying defaults for anything unset.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using process environment")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:               v.GetString("PORT"),
		Env:                v.GetString("ENV"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),

		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTAccessDuration:  parseDuration(v, "JWT_ACCESS_EXPIRES_IN", defaultAccessDuration),
		JWTRefreshDuration: parseDuration(v, "JWT_REFRESH_EXPIRES_IN", defaultRefreshDuration),

		PriceProvider: strings.ToLower(v.GetString("PRICE_PROVIDER")),
		PriceTimeout:  parseDuration(v, "PRICE_TIMEOUT", defaultPriceTimeout),
	}

	Set(cfg)
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "finpace")
	v.SetDefault("DB_PASSWORD", "finpace")
	v.SetDefault("DB_NAME", "finpace")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "finpace.db")
	v.SetDefault("MIGRATIONS_PATH", "")

	v.SetDefault("JWT_SECRET", "fallback-secret-key-for-dev-only")
	v.SetDefault("JWT_ACCESS_EXPIRES_IN", defaultAccessDuration.String())
	v.SetDefault("JWT_REFRESH_EXPIRES_IN", defaultRefreshDuration.String())

	v.SetDefault("PRICE_PROVIDER", "static")
	v.SetDefault("PRICE_TIMEOUT", defaultPriceTimeout.String())
}

// parseDuration reads key as a Go duration, warning and falling back to def
// when the value does not parse.
func parseDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.Get().Warnw("invalid duration, using default",
			"key", key,
			"value", raw,
			"default", def.String(),
		)
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Set replaces the global configuration. Tests use it to inject a config
// without touching the environment.
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	appConfig = cfg
}

// Get returns the application configuration, loading it on first use.
func Get() *Config {
	mu.RLock()
	cfg := appConfig
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	cfg, err := Load()
	if err != nil {
		logger.Get().Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}
