package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jkoneberg/colormesh/pkg/pipeline"
)

func TestCacheDir(t *testing.T) {
	t.Run("from config", func(t *testing.T) {
		cfg := config{Cache: cacheConfig{Dir: "/tmp/custom"}}
		dir, err := cacheDir(cfg)
		if err != nil {
			t.Fatalf("cacheDir: %v", err)
		}
		if dir != "/tmp/custom" {
			t.Errorf("dir = %q, want %q", dir, "/tmp/custom")
		}
	})

	t.Run("xdg cache home", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
		dir, err := cacheDir(config{})
		if err != nil {
			t.Fatalf("cacheDir: %v", err)
		}
		if dir != filepath.Join("/tmp/xdg", appName) {
			t.Errorf("dir = %q, want %q", dir, filepath.Join("/tmp/xdg", appName))
		}
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	t.Run("missing file", func(t *testing.T) {
		cfg, err := loadConfig()
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Cache.Backend != "" {
			t.Errorf("backend = %q, want empty", cfg.Cache.Backend)
		}
	})

	confDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatal(err)
	}

	t.Run("valid file", func(t *testing.T) {
		content := "[cache]\nbackend = \"file\"\nttl = \"1h\"\ndir = \"/tmp/mc\"\n"
		if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := loadConfig()
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Cache.Backend != "file" {
			t.Errorf("backend = %q, want %q", cfg.Cache.Backend, "file")
		}
		if cfg.Cache.Dir != "/tmp/mc" {
			t.Errorf("dir = %q, want %q", cfg.Cache.Dir, "/tmp/mc")
		}
		if time.Duration(cfg.Cache.TTL) != time.Hour {
			t.Errorf("ttl = %v, want %v", time.Duration(cfg.Cache.TTL), time.Hour)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte("not toml ["), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadConfig(); err == nil {
			t.Error("expected error for malformed config")
		}
	})
}

func TestCacheTTL(t *testing.T) {
	if got := cacheTTL(config{}); got != pipeline.DefaultTTL {
		t.Errorf("default ttl = %v, want %v", got, pipeline.DefaultTTL)
	}
	cfg := config{Cache: cacheConfig{TTL: duration(time.Minute)}}
	if got := cacheTTL(cfg); got != time.Minute {
		t.Errorf("ttl = %v, want %v", got, time.Minute)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	ctx := context.Background()

	t.Run("no cache flag", func(t *testing.T) {
		c, err := newCache(ctx, config{}, true)
		if err != nil {
			t.Fatalf("newCache: %v", err)
		}
		defer c.Close()

		if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "k"); hit {
			t.Error("null cache should never hit")
		}
	})

	t.Run("file backend", func(t *testing.T) {
		c, err := newCache(ctx, config{Cache: cacheConfig{Backend: "file", Dir: t.TempDir()}}, false)
		if err != nil {
			t.Fatalf("newCache: %v", err)
		}
		defer c.Close()

		if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "k"); !hit {
			t.Error("file cache should hit after Set")
		}
	})
}
