package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openmesh-network/meshviz/pkg/cache"
	errs "github.com/openmesh-network/meshviz/pkg/errors"
	"github.com/openmesh-network/meshviz/pkg/topology"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvCacheBackend, EnvCacheDir, EnvRedisURL, EnvMongoURI, EnvAddr} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingDefaultFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Defaults != topology.DefaultParams() {
		t.Errorf("Defaults = %+v, want %+v", cfg.Defaults, topology.DefaultParams())
	}
	if cfg.Layout != topology.DefaultLayout() {
		t.Errorf("Layout = %+v, want default", cfg.Layout)
	}
	if cfg.Cache.Backend != cache.BackendFile {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadTOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", `
[defaults]
node_count = 40
allocation_percent = 25

[layout]
base_radius = 250

[cache]
backend = "none"
ttl = "90m"
prefix = "meshviz:staging:"

[server]
addr = "127.0.0.1:9000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Defaults != (topology.Params{NodeCount: 40, AllocationPercent: 25}) {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
	if cfg.Layout.BaseRadius != 250 {
		t.Errorf("BaseRadius = %v, want 250", cfg.Layout.BaseRadius)
	}
	if cfg.Layout.CanvasWidth != 1200 {
		t.Errorf("unset layout fields should keep defaults, CanvasWidth = %v", cfg.Layout.CanvasWidth)
	}
	if cfg.Cache.Backend != cache.BackendNone {
		t.Errorf("Cache.Backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("Cache.TTL = %v, want 90m", cfg.Cache.TTL)
	}
	if cfg.Cache.Prefix != "meshviz:staging:" {
		t.Errorf("Cache.Prefix = %q", cfg.Cache.Prefix)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
defaults:
  node_count: 100
  allocation_percent: 100
cache:
  backend: mongo
  mongo_uri: mongodb://localhost:27017
  ttl: 2h
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Defaults.NodeCount != 100 || cfg.Defaults.AllocationPercent != 100 {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
	if cfg.Cache.Backend != cache.BackendMongo || cfg.Cache.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.MongoDatabase != AppName {
		t.Errorf("MongoDatabase = %q, want default %q", cfg.Cache.MongoDatabase, AppName)
	}
	if cfg.Cache.TTL.Duration != 2*time.Hour {
		t.Errorf("Cache.TTL = %v, want 2h", cfg.Cache.TTL)
	}
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name, file, content string
	}{
		{"bad toml", "c.toml", "[defaults\nnode_count = 1"},
		{"bad yaml", "c.yaml", "defaults: [1, 2"},
		{"out of range", "c.toml", "[defaults]\nnode_count = 5\nallocation_percent = 10"},
		{"bad backend", "c.toml", "[cache]\nbackend = \"memcached\""},
		{"bad ttl", "c.toml", "[cache]\nttl = \"soon\""},
		{"bad extension", "c.json", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRedisURL, "redis://cache:6379/1")
	t.Setenv(EnvAddr, ":9999")
	path := writeFile(t, "c.toml", "[cache]\nbackend = \"file\"")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Cache.Backend != cache.BackendRedis {
		t.Errorf("Backend = %q, want redis when only the URL is set", cfg.Cache.Backend)
	}
	if cfg.Cache.RedisURL != "redis://cache:6379/1" {
		t.Errorf("RedisURL = %q", cfg.Cache.RedisURL)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
}

func TestEnvExplicitBackendWins(t *testing.T) {
	cfg := Default()
	env := map[string]string{
		EnvCacheBackend: "none",
		EnvRedisURL:     "redis://x",
		EnvMongoURI:     "mongodb://y",
	}
	cfg.applyEnv(func(k string) string { return env[k] })
	if cfg.Cache.Backend != cache.BackendNone {
		t.Errorf("Backend = %q, want none", cfg.Cache.Backend)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", AppName, "config.toml"); p != want {
		t.Errorf("DefaultPath() = %q, want %q", p, want)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := CacheDir()
	if err != nil {
		t.Fatalf("CacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", AppName); dir != want {
		t.Errorf("CacheDir() = %q, want %q", dir, want)
	}

	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	dir, _ = CacheDir()
	if want := filepath.Join("/tmp/custom-cache", AppName); dir != want {
		t.Errorf("CacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}

func TestCacheConfigOptions(t *testing.T) {
	c := CacheConfig{Backend: "redis", RedisURL: "redis://x", Dir: "/d"}
	o := c.Options()
	if o.Backend != "redis" || o.RedisURL != "redis://x" || o.Dir != "/d" {
		t.Errorf("Options() = %+v", o)
	}
}
