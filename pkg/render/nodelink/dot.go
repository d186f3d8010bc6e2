package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/openmesh-network/meshviz/pkg/render"
	"github.com/openmesh-network/meshviz/pkg/render/draw"
	"github.com/openmesh-network/meshviz/pkg/topology"
)

// pointsPerInch converts canvas units (treated as points) to Graphviz inches.
const pointsPerInch = 72.0

const (
	xnodeColor = "#2563eb"
	vmColor    = "#60a5fa"
	edgeColor  = "#3b82f6"
)

// ToDOT converts a scene to Graphviz DOT format.
//
// Node positions are pinned ("x,y!") so the neato engine keeps the ring
// geometry. Y is negated because Graphviz's y axis points up.
func ToDOT(s topology.Scene) string {
	size := s.Layout.NodeSize / pointsPerInch

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	fmt.Fprintf(&buf, "  node [shape=square, style=filled, fixedsize=true, width=%s, label=\"\", penwidth=0];\n", num(size))
	buf.WriteString("  edge [penwidth=0.5];\n")
	buf.WriteString("\n")

	writeNodes(&buf, s.Inner, s.InnerOpacity, draw.ClassVM, vmColor)
	writeNodes(&buf, s.Outer, s.OuterOpacity, draw.ClassXNode, xnodeColor)

	buf.WriteString("\n")
	for _, c := range s.Connections {
		fmt.Fprintf(&buf, "  %q -- %q [color=%q];\n",
			draw.NodeID(draw.ClassXNode, c.OuterIndex),
			draw.NodeID(draw.ClassVM, c.InnerIndex),
			withAlpha(edgeColor, c.Opacity))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNodes(buf *bytes.Buffer, nodes []topology.Node, opacity []float64, class, color string) {
	for i, n := range nodes {
		alpha := 1.0
		if i < len(opacity) {
			alpha = opacity[i]
		}
		fmt.Fprintf(buf, "  %q [pos=\"%s,%s!\", fillcolor=%q, tooltip=%q];\n",
			draw.NodeID(class, n.ID),
			num(n.X/pointsPerInch), num(-n.Y/pointsPerInch),
			withAlpha(color, alpha),
			fmt.Sprintf("%s %d", class, n.ID))
	}
}

// withAlpha appends a two-digit alpha channel to a #rrggbb colour.
func withAlpha(hex string, opacity float64) string {
	opacity = min(max(opacity, 0), 1)
	return fmt.Sprintf("%s%02x", hex, int(opacity*255+0.5))
}

func num(v float64) string {
	return strconv.FormatFloat(topology.Round(v, topology.CoordinatePlaces), 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's root element with one whose width and
// height match the viewBox, so the SVG scales like the ring view.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
