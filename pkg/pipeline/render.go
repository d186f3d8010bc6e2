package pipeline

import (
	"context"
	"fmt"

	"github.com/openmesh-network/meshviz/pkg/render/draw"
	"github.com/openmesh-network/meshviz/pkg/render/nodelink"
	"github.com/openmesh-network/meshviz/pkg/render/sink"
	"github.com/openmesh-network/meshviz/pkg/topology"
)

// BuildScene computes the scene for validated options.
func BuildScene(opts Options) topology.Scene {
	return topology.Build(opts.Params(), opts.Layout)
}

// Render generates the requested formats for a scene. JSON and DOT are the
// same for both views; SVG, PNG and PDF follow opts.VizType.
func Render(ctx context.Context, s topology.Scene, formats []string, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))

	var (
		drawing    draw.Drawing
		drawingSet bool
		dot        string
	)
	getDrawing := func() draw.Drawing {
		if !drawingSet {
			drawing = draw.Build(s)
			if opts.Title != "" {
				drawing.Title = opts.Title
			}
			drawingSet = true
		}
		return drawing
	}
	getDOT := func() string {
		if dot == "" {
			dot = nodelink.ToDOT(s)
		}
		return dot
	}

	for _, format := range formats {
		var (
			data []byte
			err  error
		)
		switch {
		case format == FormatJSON:
			data, err = sink.RenderJSON(s)
		case format == FormatDOT:
			data = []byte(getDOT())
		case opts.IsNodelink():
			data, err = renderNodelink(ctx, getDOT(), format, opts)
		default:
			data, err = renderRings(getDrawing(), format, opts)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderRings(d draw.Drawing, format string, opts Options) ([]byte, error) {
	svgOpts := svgOptions(opts)
	switch format {
	case FormatSVG:
		return sink.RenderSVG(d, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(d, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(d, sink.WithPDFSVGOptions(svgOpts...))
	default:
		return nil, fmt.Errorf("unsupported rings format: %s", format)
	}
}

func renderNodelink(ctx context.Context, dot, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported nodelink format: %s", format)
	}
}

func svgOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithTheme(opts.Theme())}
	if opts.ShowTitle {
		svgOpts = append(svgOpts, sink.WithTitle())
	}
	if opts.Responsive {
		svgOpts = append(svgOpts, sink.WithResponsive())
	}
	if opts.Hover {
		svgOpts = append(svgOpts, sink.WithHover())
	}
	if opts.Dark {
		svgOpts = append(svgOpts, sink.WithBackground())
	}
	return svgOpts
}
