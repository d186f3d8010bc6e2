package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/openmesh-network/meshviz/pkg/cache"
	"github.com/openmesh-network/meshviz/pkg/observability"
)

const artifactKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cached artifacts.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Execute runs the scene → render pipeline. Cached artifacts are reused
// per format unless opts.Refresh is set; freshly rendered ones are stored.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	hooks := observability.Pipeline()
	params := opts.Params()

	// Stage 1: Scene
	sceneStart := time.Now()
	hooks.OnSceneStart(ctx, params)
	scene := BuildScene(opts)
	result := &Result{
		Scene:    scene,
		SceneKey: r.Keyer.SceneKey(params, opts.Layout),
		Stats: Stats{
			NodeCount:       len(scene.Outer),
			VMCount:         len(scene.Inner),
			ConnectionCount: len(scene.Connections),
			SceneTime:       time.Since(sceneStart),
		},
	}
	hooks.OnSceneComplete(ctx, params, observability.SceneCounts{
		XNodes:      result.Stats.NodeCount,
		VMs:         result.Stats.VMCount,
		Connections: result.Stats.ConnectionCount,
	}, result.Stats.SceneTime)

	logger.Debug("built scene",
		"nodes", result.Stats.NodeCount,
		"vms", result.Stats.VMCount,
		"connections", result.Stats.ConnectionCount,
		"duration", result.Stats.SceneTime)

	// Stage 2: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.VizType, opts.Formats)
	artifacts, hits, err := r.render(ctx, result, opts, logger)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo = CacheInfo{Hits: hits, RenderHit: len(hits) == len(opts.Formats)}

	logger.Info("rendered outputs",
		"viz", opts.VizType,
		"formats", opts.Formats,
		"cached", len(hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) render(ctx context.Context, res *Result, opts Options, logger *log.Logger) (map[string][]byte, []string, error) {
	cacheHooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))
	var hits, missing []string

	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(res.SceneKey, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				cacheHooks.OnCacheHit(ctx, artifactKeyType)
				artifacts[format] = data
				hits = append(hits, format)
				continue
			} else if err != nil {
				logger.Warn("cache read failed", "format", format, "err", err)
			}
			cacheHooks.OnCacheMiss(ctx, artifactKeyType)
		}
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, hits, nil
	}

	rendered, err := Render(ctx, res.Scene, missing, opts)
	if err != nil {
		return nil, nil, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(res.SceneKey, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, artifactKeyType, len(data))
	}
	return artifacts, hits, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
