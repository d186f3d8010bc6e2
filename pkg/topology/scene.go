package topology

import "fmt"

// Scene is everything needed to draw one frame.
// It is rebuilt from scratch by [Build] whenever the params change.
type Scene struct {
	Params Params `json:"params"`
	Layout Layout `json:"layout"`

	Outer       []Node       `json:"outer"`
	Inner       []Node       `json:"inner"`
	Connections []Connection `json:"connections"`

	// OuterOpacity and InnerOpacity are per-node depth shading, indexed by node ID.
	OuterOpacity []float64 `json:"outer_opacity"`
	InnerOpacity []float64 `json:"inner_opacity"`

	Resources     ResourceTotals `json:"resources"`
	RingThickness float64        `json:"ring_thickness"`
	Gauge         Gauge          `json:"gauge"`
	Labels        []Label        `json:"labels"`
}

// Gauge is the resource ring drawn between the two node rings.
type Gauge struct {
	Center    Point   `json:"center"`
	Radius    float64 `json:"radius"`
	Thickness float64 `json:"thickness"`
	// ScaleY is the vertical squash applied to the circle.
	ScaleY float64 `json:"scale_y"`
}

// Label is a callout: a leader line from Anchor to Elbow, a title at Text and
// a subtitle one line below.
type Label struct {
	Anchor   Point  `json:"anchor"`
	Elbow    Point  `json:"elbow"`
	Text     Point  `json:"text"`
	Subtext  Point  `json:"subtext"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	// AlignEnd right-aligns the text at Text.X.
	AlignEnd bool `json:"align_end,omitempty"`
}

// Build computes a scene for p using the constants of l.
// Params are used as given; callers clamp or validate beforehand.
func Build(p Params, l Layout) Scene {
	l = l.WithDefaults()
	c := l.Center()
	innerRadius := l.InnerRadius()

	outer := GenerateRingNodes(c, p.NodeCount, l.BaseRadius, l.OuterOffset, l.DepthScale)
	inner := GenerateRingNodes(c, p.InnerCount(), innerRadius, l.InnerOffset, l.DepthScale)
	resources := ComputeResources(p.NodeCount, p.AllocationPercent)
	thickness := ComputeRingThickness(p.NodeCount, p.AllocationPercent)

	return Scene{
		Params:        p,
		Layout:        l,
		Outer:         outer,
		Inner:         inner,
		Connections:   SelectConnections(outer, inner, l.BaseRadius),
		OuterOpacity:  opacities(outer, l.BaseRadius),
		InnerOpacity:  opacities(inner, l.BaseRadius),
		Resources:     resources,
		RingThickness: thickness,
		Gauge: Gauge{
			Center:    Point{X: c.X, Y: c.Y + l.GaugeOffset},
			Radius:    round4(innerRadius),
			Thickness: thickness,
			ScaleY:    l.DepthScale,
		},
		Labels: buildLabels(p, l, resources),
	}
}

// Node shading uses the base radius for both rings, so VMs never reach full opacity.
func opacities(nodes []Node, radius float64) []float64 {
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = NodeOpacity(n, radius)
	}
	return out
}

func buildLabels(p Params, l Layout, r ResourceTotals) []Label {
	c := l.Center()
	R := l.BaseRadius
	pt := func(dx, dy float64) Point { return Point{X: round4(c.X + dx), Y: round4(c.Y + dy)} }
	xnodes := fmt.Sprintf("%d Nodes (%s vCPU, %s GB RAM)", p.NodeCount, r.FormatCPU(), r.FormatMemory())

	return []Label{
		{
			Anchor:   pt(R*0.85, -50),
			Elbow:    pt(R*1.2, -100),
			Text:     pt(R*1.2, -110),
			Subtext:  pt(R*1.2, -90),
			Title:    "Openmesh Cloud",
			Subtitle: fmt.Sprintf("%s%% Resources Allocated", formatPercent(p.AllocationPercent)),
		},
		{
			Anchor:   pt(-l.InnerRadius(), 0),
			Elbow:    pt(-R*1.1, -20),
			Text:     pt(-R*1.1, -30),
			Subtext:  pt(-R*1.1, -10),
			Title:    "Virtual Machine Layer",
			Subtitle: fmt.Sprintf("%d VMs", p.InnerCount()),
			AlignEnd: true,
		},
		{
			Anchor:   pt(R, 50),
			Elbow:    pt(R*1.2, 80),
			Text:     pt(R*1.2, 70),
			Subtext:  pt(R*1.2, 90),
			Title:    "XNode Infrastructure",
			Subtitle: xnodes,
		},
	}
}

// formatPercent prints whole percentages without a decimal point.
func formatPercent(v float64) string {
	return fmt.Sprint(Round(v, 2))
}
