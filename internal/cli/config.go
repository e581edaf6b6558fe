package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration file, read from
// ~/.config/m2scope/config.toml (or $XDG_CONFIG_HOME/m2scope/config.toml).
// Flags override config values; config values override built-in defaults.
type Config struct {
	// Repository is the repository root to analyze.
	Repository string `toml:"repository"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects the response cache backend for the serve command.
type CacheConfig struct {
	// Backend is one of "file" (default), "redis", or "none".
	Backend string `toml:"backend"`
	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`
	// RedisAddr is the host:port of the Redis server.
	RedisAddr string `toml:"redis_addr"`
	// RedisPassword authenticates against Redis (optional).
	RedisPassword string `toml:"redis_password"`
	// RedisDB selects the Redis database number.
	RedisDB int `toml:"redis_db"`
	// TTLMinutes bounds cached response lifetime (default: 5).
	TTLMinutes int `toml:"ttl_minutes"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	// Addr is the listen address (default: ":8080").
	Addr string `toml:"addr"`
	// MongoURI enables report archiving when set.
	MongoURI string `toml:"mongo_uri"`
	// MongoDatabase is the archive database name (default: "m2scope").
	MongoDatabase string `toml:"mongo_database"`
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// addr returns the configured listen address or the default.
func (c ServerConfig) addr() string {
	if c.Addr == "" {
		return ":8080"
	}
	return c.Addr
}

// database returns the configured archive database or the default.
func (c ServerConfig) database() string {
	if c.MongoDatabase == "" {
		return appName
	}
	return c.MongoDatabase
}
