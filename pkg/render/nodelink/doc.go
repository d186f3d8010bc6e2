// Package nodelink renders the topology as a Graphviz node-link diagram.
//
// Where the ring view is drawn directly, this view hands the same scene to
// Graphviz: every XNode and VM becomes a square node pinned at its projected
// ring position, and every selected connection becomes an undirected edge.
// The result can be post-processed by any Graphviz tool or rendered here.
//
// # Usage
//
//	dot := nodelink.ToDOT(scene)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// Graphviz has no notion of negative opacity, so edge alpha is clamped to
// [0, 1] in this view only.
package nodelink
