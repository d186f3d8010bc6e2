// Package topology computes the parametric layout of the Openmesh cloud stack
// visualization.
//
// # Overview
//
// The visualization shows two concentric rings viewed from slightly above: an
// outer ring of XNodes (physical infrastructure) and an inner ring of virtual
// machines, joined by sparse connection lines, plus a resource gauge ring whose
// thickness tracks the allocated share of the cluster. Two parameters drive
// everything:
//
//   - Node count: number of XNodes, bounded to [10, 100]
//   - Allocation percent: share of each node's resources that is allocated, bounded to [1, 100]
//
// # Core Functions
//
// All functions in this package are pure. They read only their arguments and
// return fresh values, so they are safe to call from any goroutine and their
// results may be cached by input:
//
//   - [GenerateRingNodes]: nodes of one ring projected onto the screen
//   - [ComputeResources] and [ComputeRingThickness]: derived totals
//   - [SelectConnections]: which outer/inner pairs are linked and how visibly
//
// [Build] combines them into a [Scene] using the fixed constants of a [Layout].
//
// # Projection
//
// A ring is an ellipse in screen space. Node i sits at angle θ = 2πi/count;
// x uses the plain cosine, y uses the sine compressed by the depth scale, and
// z keeps the uncompressed sine as a depth proxy for shading. This is a
// simplified perspective, not a true 3D rotation.
//
// # Quantization
//
// Coordinates, opacities and the ring thickness are rounded to 4 decimal
// places with [Round]. Resource totals keep 1, 1 and 0 decimals for CPU,
// memory and storage.
//
// # Usage
//
//	scene := topology.Build(topology.Params{NodeCount: 58, AllocationPercent: 10}, topology.DefaultLayout())
//	fmt.Println(scene.Resources.FormatCPU()) // "46.4"
package topology
