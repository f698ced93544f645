package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jkoneberg/colormesh/pkg/cache"
	"github.com/jkoneberg/colormesh/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "colormesh"

// config holds user configuration loaded from config.toml.
type config struct {
	Cache cacheConfig `toml:"cache"`
}

// cacheConfig selects and configures the cache backend.
type cacheConfig struct {
	// Backend is "file" (default), "redis", or "none".
	Backend string `toml:"backend"`

	// Dir overrides the cache directory for the file backend.
	Dir string `toml:"dir"`

	// TTL is the cache lifetime for renumbered meshes (e.g., "24h").
	TTL duration `toml:"ttl"`

	Redis redisConfig `toml:"redis"`
}

// redisConfig configures the redis backend.
type redisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// duration wraps time.Duration so TOML strings like "24h" decode directly.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// loadConfig reads the user config file. A missing file yields the zero
// config, so every command works without any configuration.
func loadConfig() (config, error) {
	var cfg config

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// configPath returns the config file path using XDG standard
// (~/.config/colormesh/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/colormesh/).
// A dir set in the config takes precedence.
func cacheDir(cfg config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// newCache builds the cache backend selected by the config.
func newCache(ctx context.Context, cfg config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Backend == "none" {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.Backend == "redis" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheTTL returns the configured TTL, falling back to the pipeline default.
func cacheTTL(cfg config) time.Duration {
	if cfg.Cache.TTL == 0 {
		return pipeline.DefaultTTL
	}
	return time.Duration(cfg.Cache.TTL)
}
