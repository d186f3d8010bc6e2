// Package render provides output rendering for the meshviz topology.
//
// # Overview
//
// Rendering happens in three steps:
//
//   - [draw]: a scene becomes a flat list of drawing instructions
//   - [sink]: the list is written as SVG, or the scene as JSON
//   - this package: SVG is converted to PDF or PNG
//
// The [nodelink] subpackage is a second view of the same scene: a Graphviz
// graph with every node pinned at its ring position.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(drawing)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [draw]: github.com/openmesh-network/meshviz/pkg/render/draw
// [sink]: github.com/openmesh-network/meshviz/pkg/render/sink
// [nodelink]: github.com/openmesh-network/meshviz/pkg/render/nodelink
package render
