// Package cache stores rendered scenes and artifacts between runs.
//
// All backends implement [Cache], a byte-oriented key/value store with
// per-entry TTLs. Keys are produced by a [Keyer] so that the CLI, the HTTP
// server and tests agree on how a scene or artifact is addressed.
//
// # Backends
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per entry, for local CLI use
//   - [RedisCache]: shared cache for the HTTP server
//   - [MongoCache]: document store with a TTL index
//
// Use [Open] to construct a backend by name.
package cache

import (
	"context"
	"time"

	"github.com/openmesh-network/meshviz/pkg/topology"
)

// TTLArtifact is the default lifetime of a rendered artifact. Artifacts are
// pure functions of their key, so the TTL only bounds storage growth.
const TTLArtifact = 24 * time.Hour

// Cache is a byte-oriented key/value store.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero or less stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Clear removes every entry from c if the backend supports it.
func Clear(ctx context.Context, c Cache) error {
	if cl, ok := c.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return nil
}

// Pinger is implemented by networked backends.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks that c can reach its server. Local backends always succeed.
func Ping(ctx context.Context, c Cache) error {
	if p, ok := c.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// ArtifactKeyOpts holds the render settings that change artifact bytes.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	VizType string `json:"viz_type"`
	Theme   string `json:"theme,omitempty"`
	Title   string `json:"title,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// SceneKey addresses the computed scene for a parameter set and layout.
	SceneKey(p topology.Params, l topology.Layout) string

	// ArtifactKey addresses one rendered output of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes every key component into a fixed-length key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SceneKey returns "scene:<sha256>".
func (DefaultKeyer) SceneKey(p topology.Params, l topology.Layout) string {
	return hashKey("scene", p, l)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
