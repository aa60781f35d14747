package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Store modes: rest talks to the hosted backend, postgres goes straight to
// the database, local is the file-backed demo mode.
const (
	ModeREST     = "rest"
	ModePostgres = "postgres"
	ModeLocal    = "local"
)

type Config struct {
	Env         string `mapstructure:"ENV"`
	StoreMode   string `mapstructure:"STORE_MODE"`
	StoreURL    string `mapstructure:"STORE_URL"`
	StoreAPIKey string `mapstructure:"STORE_API_KEY"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32  `mapstructure:"DB_MIN_CONNS"`
	DataDir     string `mapstructure:"DATA_DIR"`
	AuthSecret  string `mapstructure:"AUTH_SECRET"`
	Token       string `mapstructure:"TOKEN"`
	SandboxPort string `mapstructure:"SANDBOX_PORT"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("STORE_MODE", ModeLocal)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DATA_DIR", ".medassist")
	v.SetDefault("SANDBOX_PORT", "8090")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("STORE_MODE")
	v.BindEnv("STORE_URL")
	v.BindEnv("STORE_API_KEY")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("DATA_DIR")
	v.BindEnv("AUTH_SECRET")
	v.BindEnv("TOKEN")
	v.BindEnv("SANDBOX_PORT")

	// Try reading .env, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the selected store mode has what it needs.
func (c *Config) Validate() error {
	switch c.StoreMode {
	case ModeREST:
		if c.StoreURL == "" {
			return fmt.Errorf("STORE_URL is required when STORE_MODE is %q", ModeREST)
		}
	case ModePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_MODE is %q", ModePostgres)
		}
	case ModeLocal:
		// DataDir may be empty for a purely in-memory store.
	default:
		return fmt.Errorf("STORE_MODE must be %q, %q, or %q, got %q",
			ModeREST, ModePostgres, ModeLocal, c.StoreMode)
	}
	return nil
}
