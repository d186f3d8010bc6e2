package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// DefaultRedisPrefix namespaces meshviz keys in a shared Redis database.
const DefaultRedisPrefix = "meshviz:"

// Options selects and configures a backend.
type Options struct {
	Backend       string
	Dir           string
	RedisURL      string
	MongoURI      string
	MongoDatabase string
}

// Open constructs the backend named by opts.Backend. An empty backend name
// means "none".
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file cache: directory not set")
		}
		return NewFileCache(opts.Dir)
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis cache: url not set")
		}
		return NewRedisCache(ctx, opts.RedisURL, DefaultRedisPrefix)
	case BackendMongo:
		if opts.MongoURI == "" {
			return nil, fmt.Errorf("mongo cache: uri not set")
		}
		db := opts.MongoDatabase
		if db == "" {
			db = "meshviz"
		}
		return NewMongoCache(ctx, opts.MongoURI, db)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
