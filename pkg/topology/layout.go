package topology

// Layout holds the fixed drawing constants of the visualization.
// Values are in canvas units; the canvas is scaled to fit the viewport.
type Layout struct {
	CanvasWidth  float64 `json:"canvas_width" toml:"canvas_width" yaml:"canvas_width"`
	CanvasHeight float64 `json:"canvas_height" toml:"canvas_height" yaml:"canvas_height"`
	NodeSize     float64 `json:"node_size" toml:"node_size" yaml:"node_size"`
	BaseRadius   float64 `json:"base_radius" toml:"base_radius" yaml:"base_radius"`
	DepthScale   float64 `json:"depth_scale" toml:"depth_scale" yaml:"depth_scale"`

	// OuterOffset and InnerOffset shift each ring vertically from the centre.
	OuterOffset float64 `json:"outer_offset" toml:"outer_offset" yaml:"outer_offset"`
	InnerOffset float64 `json:"inner_offset" toml:"inner_offset" yaml:"inner_offset"`

	// InnerRadiusFactor scales BaseRadius for the VM ring and the gauge ring.
	InnerRadiusFactor float64 `json:"inner_radius_factor" toml:"inner_radius_factor" yaml:"inner_radius_factor"`

	// GaugeOffset moves the resource ring down so it overlaps the VM ring.
	GaugeOffset float64 `json:"gauge_offset" toml:"gauge_offset" yaml:"gauge_offset"`
}

// DefaultLayout returns the stock 1200×800 layout.
func DefaultLayout() Layout {
	return Layout{
		CanvasWidth:       1200,
		CanvasHeight:      800,
		NodeSize:          12,
		BaseRadius:        300,
		DepthScale:        DefaultDepthScale,
		OuterOffset:       50,
		InnerOffset:       -50,
		InnerRadiusFactor: 0.75,
		GaugeOffset:       20,
	}
}

// WithDefaults fills zero fields from [DefaultLayout].
// A zero offset is a valid value, so offsets are only defaulted together with
// the canvas size, i.e. when the whole layout is empty.
func (l Layout) WithDefaults() Layout {
	d := DefaultLayout()
	if l == (Layout{}) {
		return d
	}
	if l.CanvasWidth == 0 {
		l.CanvasWidth = d.CanvasWidth
	}
	if l.CanvasHeight == 0 {
		l.CanvasHeight = d.CanvasHeight
	}
	if l.NodeSize == 0 {
		l.NodeSize = d.NodeSize
	}
	if l.BaseRadius == 0 {
		l.BaseRadius = d.BaseRadius
	}
	if l.DepthScale == 0 {
		l.DepthScale = d.DepthScale
	}
	if l.InnerRadiusFactor == 0 {
		l.InnerRadiusFactor = d.InnerRadiusFactor
	}
	return l
}

// Center is the middle of the canvas.
func (l Layout) Center() Point {
	return Point{X: l.CanvasWidth / 2, Y: l.CanvasHeight / 2}
}

// InnerRadius is the radius of the VM ring and of the gauge ring.
func (l Layout) InnerRadius() float64 {
	return l.BaseRadius * l.InnerRadiusFactor
}
