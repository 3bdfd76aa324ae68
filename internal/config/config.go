package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	DefaultSchema  string   `mapstructure:"DEFAULT_SCHEMA"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	AuthSigningKey string   `mapstructure:"AUTH_SIGNING_KEY"`
	AuthIssuer     string   `mapstructure:"AUTH_ISSUER"`
	AuthAudience   string   `mapstructure:"AUTH_AUDIENCE"`
	RateLookupMax  int      `mapstructure:"RATE_LOOKUP_MAX_CONCURRENCY"`
	DevUserID      string   `mapstructure:"DEV_USER_ID"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DEFAULT_SCHEMA", "public")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LOOKUP_MAX_CONCURRENCY", 8)
	v.SetDefault("DEV_USER_ID", "00000000-0000-0000-0000-000000000001")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("DEFAULT_SCHEMA")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("AUTH_SIGNING_KEY")
	v.BindEnv("AUTH_ISSUER")
	v.BindEnv("AUTH_AUDIENCE")
	v.BindEnv("RATE_LOOKUP_MAX_CONCURRENCY")
	v.BindEnv("DEV_USER_ID")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.IsDev() {
		log.Println("WARNING: server is running in DEVELOPMENT mode (ENV=development).")
		log.Println("WARNING: DevAuthMiddleware is active — requests without a token get doctor access.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is safe to run. Outside development
// a signing key must be set so that real JWT authentication is enforced.
func (c *Config) Validate() error {
	if !c.IsDev() && c.AuthSigningKey == "" {
		return fmt.Errorf("AUTH_SIGNING_KEY must be set when ENV=%q; refusing to start without authentication configuration", c.Env)
	}
	if c.RateLookupMax <= 0 {
		return fmt.Errorf("RATE_LOOKUP_MAX_CONCURRENCY must be positive, got %d", c.RateLookupMax)
	}
	return nil
}
