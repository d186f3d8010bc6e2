package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/openmesh-network/meshviz/pkg/render/draw"
)

// Theme names accepted by [WithTheme].
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidThemes is the set of supported themes.
var ValidThemes = map[string]bool{ThemeLight: true, ThemeDark: true}

type palette struct {
	background, title, labelTitle, labelSubtitle, leader, vm, xnode string
}

var palettes = map[string]palette{
	ThemeLight: {
		background: "#ffffff", title: "#0f172a",
		labelTitle: "#4b5563", labelSubtitle: "#6b7280", leader: "#666666",
		vm: "#60a5fa", xnode: "#2563eb",
	},
	ThemeDark: {
		background: "#0f172a", title: "#f8fafc",
		labelTitle: "#d1d5db", labelSubtitle: "#9ca3af", leader: "#94a3b8",
		vm: "#60a5fa", xnode: "#3b82f6",
	},
}

const hoverCSS = `
    .connection { transition: opacity 0.2s ease; }
    .connection.dim { opacity: 0.02; }
    .connection.highlight { opacity: 1; stroke-width: 1.5; }
    .vm, .xnode { cursor: pointer; }`

const hoverJS = `
    function highlight(id) {
      document.querySelectorAll('.connection').forEach(l => {
        const hit = l.dataset.from === id || l.dataset.to === id;
        l.classList.toggle('highlight', hit);
        l.classList.toggle('dim', !hit);
      });
    }
    function clearHighlight() {
      document.querySelectorAll('.connection').forEach(l => l.classList.remove('highlight', 'dim'));
    }
    document.querySelectorAll('.vm, .xnode').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.id));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme      string
	title      bool
	responsive bool
	background bool
	hover      bool
}

// WithTheme selects the colour theme ("light" or "dark"). Unknown names fall
// back to light.
func WithTheme(name string) SVGOption { return func(r *svgRenderer) { r.theme = name } }

// WithTitle draws the drawing's title centred at the top of the canvas.
func WithTitle() SVGOption { return func(r *svgRenderer) { r.title = true } }

// WithResponsive makes the SVG fill its container while keeping its aspect ratio.
func WithResponsive() SVGOption { return func(r *svgRenderer) { r.responsive = true } }

// WithBackground paints the theme background behind the drawing.
func WithBackground() SVGOption { return func(r *svgRenderer) { r.background = true } }

// WithHover embeds a script that highlights a node's connections on hover.
func WithHover() SVGOption { return func(r *svgRenderer) { r.hover = true } }

// RenderSVG writes d as a standalone SVG document.
func RenderSVG(d draw.Drawing, opts ...SVGOption) []byte {
	r := svgRenderer{theme: ThemeLight}
	for _, opt := range opts {
		opt(&r)
	}
	pal, ok := palettes[r.theme]
	if !ok {
		pal = palettes[ThemeLight]
	}

	var buf bytes.Buffer
	if r.responsive {
		fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="100%%" height="100%%" preserveAspectRatio="xMidYMid meet">`+"\n",
			num(d.Width), num(d.Height))
	} else {
		fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f">`+"\n",
			num(d.Width), num(d.Height), d.Width, d.Height)
	}

	renderStyle(&buf, pal, r.hover)
	renderDefs(&buf, d.Gradients)

	if r.background {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n", num(d.Width), num(d.Height), pal.background)
	}
	if r.title && d.Title != "" {
		fmt.Fprintf(&buf, `  <text x="%s" y="48" text-anchor="middle" class="title">`, num(d.Width/2))
		escape(&buf, d.Title)
		buf.WriteString("</text>\n")
	}

	for _, s := range d.Shapes {
		renderShape(&buf, s, "  ")
	}

	if r.hover {
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", hoverJS)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderStyle(buf *bytes.Buffer, pal palette, hover bool) {
	buf.WriteString("  <style>\n")
	fmt.Fprintf(buf, "    .title { font: 600 30px sans-serif; fill: %s; }\n", pal.title)
	fmt.Fprintf(buf, "    .%s { font: 14px sans-serif; fill: %s; }\n", draw.ClassTitle, pal.labelTitle)
	fmt.Fprintf(buf, "    .%s { font: 12px sans-serif; fill: %s; }\n", draw.ClassSubtitle, pal.labelSubtitle)
	fmt.Fprintf(buf, "    .%s { stroke: %s; }\n", draw.ClassLeader, pal.leader)
	fmt.Fprintf(buf, "    .%s { fill: %s; }\n", draw.ClassVM, pal.vm)
	fmt.Fprintf(buf, "    .%s { fill: %s; }", draw.ClassXNode, pal.xnode)
	if hover {
		buf.WriteString(hoverCSS)
	}
	buf.WriteString("\n  </style>\n")
}

func renderDefs(buf *bytes.Buffer, gradients []draw.Gradient) {
	if len(gradients) == 0 {
		return
	}
	buf.WriteString("  <defs>\n")
	for _, g := range gradients {
		fmt.Fprintf(buf, `    <linearGradient id="%s" x1="0" y1="0" x2="1" y2="0">`+"\n", g.ID)
		for _, s := range g.Stops {
			fmt.Fprintf(buf, `      <stop offset="%s%%" stop-color="%s"/>`+"\n", num(s.Offset), s.Color)
		}
		buf.WriteString("    </linearGradient>\n")
	}
	buf.WriteString("  </defs>\n")
}

func renderShape(buf *bytes.Buffer, s draw.Shape, indent string) {
	switch s := s.(type) {
	case draw.Line:
		fmt.Fprintf(buf, `%s<line x1="%s" y1="%s" x2="%s" y2="%s"`, indent, num(s.X1), num(s.Y1), num(s.X2), num(s.Y2))
		if s.Class != "" {
			fmt.Fprintf(buf, ` class="%s"`, s.Class)
		}
		if s.Stroke != "" {
			fmt.Fprintf(buf, ` stroke="%s"`, s.Stroke)
		}
		fmt.Fprintf(buf, ` stroke-width="%s"`, num(s.Width))
		if s.Opacity != 1 {
			fmt.Fprintf(buf, ` opacity="%s"`, num(s.Opacity))
		}
		if s.FromID != "" {
			fmt.Fprintf(buf, ` data-from="%s" data-to="%s"`, s.FromID, s.ToID)
		}
		buf.WriteString("/>\n")

	case draw.Rect:
		fmt.Fprintf(buf, `%s<rect id="%s" class="%s" x="%s" y="%s" width="%s" height="%s" opacity="%s"/>`+"\n",
			indent, s.ID, s.Class, num(s.X), num(s.Y), num(s.W), num(s.H), num(s.Opacity))

	case draw.Ring:
		fmt.Fprintf(buf, `%s<g transform="translate(%s %s) scale(1 %s)">`+"\n", indent, num(s.CX), num(s.CY), num(s.ScaleY))
		fmt.Fprintf(buf, `%s  <circle cx="0" cy="0" r="%s" fill="none" stroke="url(#%s)" stroke-width="%s" opacity="%s"/>`+"\n",
			indent, num(s.R), s.GradientID, num(s.StrokeWidth), num(s.Opacity))
		fmt.Fprintf(buf, "%s</g>\n", indent)

	case draw.Text:
		if len(s.Spans) == 0 {
			return
		}
		head := s.Spans[0]
		fmt.Fprintf(buf, `%s<text x="%s" y="%s" text-anchor="%s" class="%s">`, indent, num(head.X), num(head.Y), s.Anchor, head.Class)
		escape(buf, head.Content)
		for _, sp := range s.Spans[1:] {
			fmt.Fprintf(buf, `<tspan x="%s" y="%s" class="%s">`, num(sp.X), num(sp.Y), sp.Class)
			escape(buf, sp.Content)
			buf.WriteString("</tspan>")
		}
		buf.WriteString("</text>\n")

	case draw.Group:
		fmt.Fprintf(buf, "%s<g class=\"%s\">\n", indent, s.Class)
		for _, child := range s.Shapes {
			renderShape(buf, child, indent+"  ")
		}
		fmt.Fprintf(buf, "%s</g>\n", indent)
	}
}

// num prints the shortest decimal that round-trips v.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(buf *bytes.Buffer, s string) {
	_ = xml.EscapeText(buf, []byte(s))
}
