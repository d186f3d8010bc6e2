// Package pkg provides the core libraries for meshviz, the Openmesh cloud
// stack visualization.
//
// # Overview
//
// meshviz draws a cloud stack as two concentric rings seen at an angle: an
// outer ring of XNodes, an inner ring of the virtual machines they host, the
// links between them and a gauge ring showing how much of the fleet's CPU,
// memory and storage is allocated. Two numbers drive everything: the XNode
// count and the allocation percentage.
//
// # Architecture
//
// The typical data flow:
//
//	Params (node count, allocation %)
//	         ↓
//	    [topology] package (rings, connections, resources, labels)
//	         ↓
//	    [render/draw] package (flat list of shapes)
//	         ↓
//	    [render/sink] package (SVG, PNG, PDF; JSON straight from the scene)
//
// [render/nodelink] is an alternative view that feeds the same scene to
// Graphviz.
//
// # Quick Start
//
//	import (
//	    "github.com/openmesh-network/meshviz/pkg/render/draw"
//	    "github.com/openmesh-network/meshviz/pkg/render/sink"
//	    "github.com/openmesh-network/meshviz/pkg/topology"
//	)
//
//	scene := topology.Build(topology.DefaultParams(), topology.DefaultLayout())
//	svg := sink.RenderSVG(draw.Build(scene), sink.WithTheme(sink.ThemeDark))
//
// # Main Packages
//
// [topology] - Pure geometry and arithmetic: ring node placement with depth
// shading, the connection pattern, resource totals and the gauge thickness.
//
// [render] - Drawing, output sinks and SVG to PDF/PNG conversion.
//
// [pipeline] - Validation, defaults and cached rendering shared by the CLI,
// the TUI and the HTTP server.
//
// [cache] - Artifact cache backends: null, file, Redis and MongoDB.
//
// [config] - TOML/YAML settings with MESHVIZ_* environment overrides.
//
// [observability] - Hook interfaces with a Prometheus implementation.
//
// [errors] - Error codes shared by all packages.
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/topology/...   # Specific package
//	go test -run Example         # Examples only
//
// [topology]: https://pkg.go.dev/github.com/openmesh-network/meshviz/pkg/topology
// [render]: https://pkg.go.dev/github.com/openmesh-network/meshviz/pkg/render
// [render/draw]: https://pkg.go.dev/github.com/openmesh-network/meshviz/pkg/render/draw
// [render/sink]: https://pkg.go.dev/github.com/openmesh-network/meshviz/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/openmesh-network/meshviz/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/openmesh-network/meshviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/openmesh-network/meshviz/pkg/cache
// [config]: https://pkg.go.dev/github.com/openmesh-network/meshviz/pkg/config
// [observability]: https://pkg.go.dev/github.com/openmesh-network/meshviz/pkg/observability
// [errors]: https://pkg.go.dev/github.com/openmesh-network/meshviz/pkg/errors
package pkg
