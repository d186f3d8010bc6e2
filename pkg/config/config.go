// Package config loads meshviz settings from a TOML or YAML file and the
// environment.
//
// Precedence, lowest first: built-in defaults, the config file, then
// MESHVIZ_* environment variables. A missing file is not an error; the
// defaults apply. Callers that want .env support load it before calling
// [Load] (cmd/meshviz does this with godotenv).
//
// Example config.toml:
//
//	[defaults]
//	node_count = 40
//	allocation_percent = 25
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/openmesh-network/meshviz/pkg/cache"
	errs "github.com/openmesh-network/meshviz/pkg/errors"
	"github.com/openmesh-network/meshviz/pkg/topology"
)

// AppName names the config and cache directories.
const AppName = "meshviz"

// Environment variables that override file settings.
const (
	EnvCacheBackend = "MESHVIZ_CACHE_BACKEND"
	EnvCacheDir     = "MESHVIZ_CACHE_DIR"
	EnvRedisURL     = "MESHVIZ_REDIS_URL"
	EnvMongoURI     = "MESHVIZ_MONGO_URI"
	EnvAddr         = "MESHVIZ_ADDR"
)

// Config is the full settings tree.
type Config struct {
	Defaults topology.Params `toml:"defaults" yaml:"defaults"`
	Layout   topology.Layout `toml:"layout" yaml:"layout"`
	Cache    CacheConfig     `toml:"cache" yaml:"cache"`
	Server   ServerConfig    `toml:"server" yaml:"server"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend       string   `toml:"backend" yaml:"backend"`
	Dir           string   `toml:"dir" yaml:"dir"`
	RedisURL      string   `toml:"redis_url" yaml:"redis_url"`
	MongoURI      string   `toml:"mongo_uri" yaml:"mongo_uri"`
	MongoDatabase string   `toml:"mongo_database" yaml:"mongo_database"`
	TTL           Duration `toml:"ttl" yaml:"ttl"`

	// Prefix namespaces cache keys when several deployments share one
	// Redis or Mongo instance.
	Prefix string `toml:"prefix" yaml:"prefix"`
}

// Options converts the section into cache.Open options.
func (c CacheConfig) Options() cache.Options {
	return cache.Options{
		Backend:       c.Backend,
		Dir:           c.Dir,
		RedisURL:      c.RedisURL,
		MongoURI:      c.MongoURI,
		MongoDatabase: c.MongoDatabase,
	}
}

// ServerConfig configures `meshviz serve`.
type ServerConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
}

// Duration is a time.Duration written as a string ("24h", "90m") in files.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler, used by toml.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns the built-in configuration. The file cache lives under the
// user cache directory.
func Default() Config {
	dir, _ := CacheDir()
	return Config{
		Defaults: topology.DefaultParams(),
		Layout:   topology.DefaultLayout(),
		Cache: CacheConfig{
			Backend:       cache.BackendFile,
			Dir:           dir,
			MongoDatabase: AppName,
			TTL:           Duration{cache.TTLArtifact},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads path (or the default location when path is empty), applies
// environment overrides and validates the result. An explicit path that does
// not exist is an error; a missing default file is not.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "locate config directory")
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Decode(path, data, &cfg); err != nil {
			return Config{}, err
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg.applyEnv(os.Getenv)
	cfg.Layout = cfg.Layout.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode parses data into cfg, choosing the format from the file extension.
// Fields absent from data keep their current values.
func Decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "unsupported config format %q", filepath.Ext(path))
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvCacheBackend); v != "" {
		c.Cache.Backend = v
	}
	if v := getenv(EnvCacheDir); v != "" {
		c.Cache.Dir = v
	}
	if v := getenv(EnvRedisURL); v != "" {
		c.Cache.RedisURL = v
		if getenv(EnvCacheBackend) == "" {
			c.Cache.Backend = cache.BackendRedis
		}
	}
	if v := getenv(EnvMongoURI); v != "" {
		c.Cache.MongoURI = v
		if getenv(EnvCacheBackend) == "" && getenv(EnvRedisURL) == "" {
			c.Cache.Backend = cache.BackendMongo
		}
	}
	if v := getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks the defaults against the control bounds and the cache
// backend name.
func (c Config) Validate() error {
	if err := c.Defaults.Validate(); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "defaults")
	}
	switch c.Cache.Backend {
	case "", cache.BackendNone, cache.BackendFile, cache.BackendRedis, cache.BackendMongo:
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/meshviz/config.toml, falling back to
// ~/.config/meshviz/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns $XDG_CACHE_HOME/meshviz, falling back to ~/.cache/meshviz.
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
