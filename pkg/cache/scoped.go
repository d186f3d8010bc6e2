package cache

import "github.com/openmesh-network/meshviz/pkg/topology"

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis or Mongo instance.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "meshviz:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SceneKey generates a prefixed scene key.
func (k *ScopedKeyer) SceneKey(p topology.Params, l topology.Layout) string {
	return k.prefix + k.inner.SceneKey(p, l)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}
