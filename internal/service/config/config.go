// Package config assembles the runtime settings of the API from defaults
// and environment variables. The resulting Config is passed explicitly to
// every component that needs it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"lane_wars/internal/service/dsn"
)

type Config struct {
	ServerAddr     string
	DatabaseDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	FrontendURL    string
	RequireAuth    bool
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ResultTTL      time.Duration
	RequestTimeout time.Duration
	AccessLogPath  string
	DBLogPath      string
}

// LoadDefaults fills development defaults. JWTSecret has no default and must
// come from JWT_SECRET.
func (c *Config) LoadDefaults() {
	c.ServerAddr = ":3000"
	c.TokenTTL = 7 * 24 * time.Hour
	c.FrontendURL = "*"
	c.RequireAuth = false
	c.RedisDB = 0
	c.ResultTTL = 24 * time.Hour
	c.RequestTimeout = 10 * time.Second
	c.AccessLogPath = "access.log"
	c.DBLogPath = "db.log"
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := cfg.parseEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parseEnv() error {
	setString(&c.ServerAddr, "BACKEND_URL")
	setString(&c.JWTSecret, "JWT_SECRET")
	setString(&c.FrontendURL, "FRONTEND_URL")
	setString(&c.RedisAddr, "REDIS_ENDPOINT")
	setString(&c.RedisPassword, "REDIS_PASSWORD")
	setString(&c.AccessLogPath, "ACCESS_LOG")
	setString(&c.DBLogPath, "DB_LOG")

	if d := dsn.FromEnv(); d != "" {
		c.DatabaseDSN = d
	}

	if v := os.Getenv("REQUIRE_AUTH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid REQUIRE_AUTH value: %w", err)
		}
		c.RequireAuth = b
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %w", err)
		}
		c.RedisDB = n
	}

	for key, target := range map[string]*time.Duration{
		"TOKEN_TTL":       &c.TokenTTL,
		"RESULT_TTL":      &c.ResultTTL,
		"REQUEST_TIMEOUT": &c.RequestTimeout,
	} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", key, err)
		}
		*target = d
	}

	return nil
}

func setString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
