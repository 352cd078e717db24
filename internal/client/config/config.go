package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// Token store kinds.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreMemory = "memory"
)

// Config holds runtime settings shared by the CLI and web clients.
type Config struct {
	ServerBaseURL        string        `env:"GOPHAUTH_SERVER_URL"`
	StoreKind            string        `env:"GOPHAUTH_STORE"`
	StorePath            string        `env:"GOPHAUTH_STORE_PATH"`
	LogLevel             string        `env:"GOPHAUTH_LOG_LEVEL"`
	LogFormat            string        `env:"GOPHAUTH_LOG_FORMAT"`
	WebListenAddr        string        `env:"GOPHAUTH_WEB_ADDR"`
	WebReadHeaderTimeout time.Duration `env:"GOPHAUTH_WEB_READ_HEADER_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.StoreKind = StoreSQLite
	c.StorePath = ""
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.WebListenAddr = "127.0.0.1:3000"
	c.WebReadHeaderTimeout = 5 * time.Second
}

// Validate reports settings no client can start with.
func (c *Config) Validate() error {
	switch c.StoreKind {
	case StoreSQLite, StoreFile, StoreMemory:
	default:
		return fmt.Errorf("unknown store kind %q", c.StoreKind)
	}
	if c.ServerBaseURL == "" {
		return fmt.Errorf("server base url is empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := logging.CheckFormat(c.LogFormat); err != nil {
		return err
	}
	if c.WebReadHeaderTimeout < 0 {
		return fmt.Errorf("negative web read header timeout")
	}
	return nil
}

// fillStorePath picks a path matching the store kind when none was given.
func (c *Config) fillStorePath() {
	if c.StorePath != "" {
		return
	}
	switch c.StoreKind {
	case StoreSQLite:
		c.StorePath = "gophauth.db"
	case StoreFile:
		c.StorePath = "gophauth/token.json"
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, environment and command-line flags. Later sources take precedence.
// It panics on unreadable or invalid settings.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	cfg.fillStorePath()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}
