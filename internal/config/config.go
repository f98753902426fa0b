// Package config loads server settings from defaults, an optional JSON file,
// environment variables and command-line flags, in that order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime settings for the daily-log server.
type Config struct {
	Addr            string
	StoreDriver     string
	DatabasePath    string
	DatabaseDSN     string
	JWTSecret       string
	TokenTTL        time.Duration
	BcryptCost      int
	LogLevel        string
	LogFormat       string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// fileConfig is the JSON shape of the optional config file. Durations are
// Go duration strings such as "24h".
type fileConfig struct {
	Addr            *string  `json:"addr"`
	StoreDriver     *string  `json:"store_driver"`
	DatabasePath    *string  `json:"database_path"`
	DatabaseDSN     *string  `json:"database_dsn"`
	JWTSecret       *string  `json:"jwt_secret"`
	TokenTTL        *string  `json:"token_ttl"`
	BcryptCost      *int     `json:"bcrypt_cost"`
	LogLevel        *string  `json:"log_level"`
	LogFormat       *string  `json:"log_format"`
	CORSOrigins     []string `json:"cors_origins"`
	ShutdownTimeout *string  `json:"shutdown_timeout"`
}

// LoadDefaults populates Config with development defaults. JWTSecret has no
// default and must be supplied.
func (c *Config) LoadDefaults() {
	c.Addr = ":5001"
	c.StoreDriver = DriverSQLite
	c.DatabasePath = "daily-log.db"
	c.TokenTTL = 24 * time.Hour
	c.BcryptCost = 12
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.CORSOrigins = []string{"*"}
	c.ShutdownTimeout = 5 * time.Second
}

// Load builds a Config from defaults, the JSON file named by -c/-config or
// CONFIG, the environment, and finally args.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fs := flag.NewFlagSet("daily-log", flag.ContinueOnError)
	configPath := fs.String("c", os.Getenv("CONFIG"), "path to JSON config file")
	fs.StringVar(configPath, "config", *configPath, "path to JSON config file")
	addr := fs.String("a", "", "listen address (host:port)")
	driver := fs.String("driver", "", "store driver: sqlite or postgres")
	dbPath := fs.String("db", "", "SQLite database path")
	dsn := fs.String("d", "", "Postgres DSN")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.Addr = *addr
		case "driver":
			cfg.StoreDriver = *driver
		case "db":
			cfg.DatabasePath = *dbPath
		case "d":
			cfg.DatabaseDSN = *dsn
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&c.Addr, fc.Addr)
	setString(&c.StoreDriver, fc.StoreDriver)
	setString(&c.DatabasePath, fc.DatabasePath)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)
	setString(&c.JWTSecret, fc.JWTSecret)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.LogFormat, fc.LogFormat)
	if fc.BcryptCost != nil {
		c.BcryptCost = *fc.BcryptCost
	}
	if fc.CORSOrigins != nil {
		c.CORSOrigins = fc.CORSOrigins
	}
	if fc.TokenTTL != nil {
		if c.TokenTTL, err = time.ParseDuration(*fc.TokenTTL); err != nil {
			return fmt.Errorf("parse token_ttl: %w", err)
		}
	}
	if fc.ShutdownTimeout != nil {
		if c.ShutdownTimeout, err = time.ParseDuration(*fc.ShutdownTimeout); err != nil {
			return fmt.Errorf("parse shutdown_timeout: %w", err)
		}
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Addr = ":" + v
	}
	envString(&c.StoreDriver, "STORE_DRIVER")
	envString(&c.DatabasePath, "DATABASE_PATH")
	envString(&c.DatabaseDSN, "DATABASE_DSN")
	envString(&c.JWTSecret, "JWT_SECRET")
	envString(&c.LogLevel, "LOG_LEVEL")
	envString(&c.LogFormat, "LOG_FORMAT")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		c.TokenTTL = d
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		c.BcryptCost = n
	}
	return nil
}

// Validate reports the first setting that would make the server unsafe or
// unable to start.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	switch c.StoreDriver {
	case DriverSQLite:
		if c.DatabasePath == "" {
			return errors.New("DATABASE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseDSN == "" {
			return errors.New("DATABASE_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
