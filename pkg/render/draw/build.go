package draw

import (
	"fmt"

	"github.com/openmesh-network/meshviz/pkg/topology"
)

// Class names used by the stock drawing.
const (
	ClassConnection = "connection"
	ClassVM         = "vm"
	ClassXNode      = "xnode"
	ClassLabel      = "label-group"
	ClassLeader     = "leader"
	ClassTitle      = "label-title"
	ClassSubtitle   = "label-subtitle"
)

// GaugeGradientID names the traffic-light gradient of the resource ring.
const GaugeGradientID = "resourceGradient"

const (
	connectionColor = "#3b82f6"
	connectionWidth = 0.5
	gaugeOpacity    = 0.9
	leaderWidth     = 1
)

// DefaultTitle is the heading shown above the visualization.
const DefaultTitle = "The Openmesh Cloud Stack"

// gaugeGradient splits the ring into equal green, yellow and red thirds with
// hard edges.
var gaugeGradient = Gradient{
	ID: GaugeGradientID,
	Stops: []Stop{
		{0, "#22c55e"}, {33, "#22c55e"},
		{33, "#eab308"}, {66, "#eab308"},
		{66, "#ef4444"}, {100, "#ef4444"},
	},
}

// Build lays out s as drawing instructions in paint order.
func Build(s topology.Scene) Drawing {
	l := s.Layout
	shapes := make([]Shape, 0, len(s.Connections)+len(s.Outer)+len(s.Inner)+len(s.Labels)+1)

	for _, c := range s.Connections {
		from, to := s.Outer[c.OuterIndex], s.Inner[c.InnerIndex]
		shapes = append(shapes, Line{
			X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y,
			Stroke:  connectionColor,
			Width:   connectionWidth,
			Opacity: c.Opacity,
			Class:   ClassConnection,
			FromID:  NodeID(ClassXNode, c.OuterIndex),
			ToID:    NodeID(ClassVM, c.InnerIndex),
		})
	}

	shapes = append(shapes, Ring{
		CX:          s.Gauge.Center.X,
		CY:          s.Gauge.Center.Y,
		R:           s.Gauge.Radius,
		StrokeWidth: s.Gauge.Thickness,
		ScaleY:      s.Gauge.ScaleY,
		Opacity:     gaugeOpacity,
		GradientID:  GaugeGradientID,
	})

	shapes = appendNodes(shapes, s.Inner, s.InnerOpacity, l.NodeSize, ClassVM)
	shapes = appendNodes(shapes, s.Outer, s.OuterOpacity, l.NodeSize, ClassXNode)

	for _, lb := range s.Labels {
		shapes = append(shapes, labelGroup(lb))
	}

	return Drawing{
		Width:     l.CanvasWidth,
		Height:    l.CanvasHeight,
		Title:     DefaultTitle,
		Gradients: []Gradient{gaugeGradient},
		Shapes:    shapes,
	}
}

// NodeID is the element ID of a node rect, e.g. "xnode-3".
func NodeID(class string, id int) string {
	return fmt.Sprintf("%s-%d", class, id)
}

func appendNodes(shapes []Shape, nodes []topology.Node, opacity []float64, size float64, class string) []Shape {
	half := size / 2
	for i, n := range nodes {
		shapes = append(shapes, Rect{
			ID:      NodeID(class, n.ID),
			X:       topology.Round(n.X-half, topology.CoordinatePlaces),
			Y:       topology.Round(n.Y-half, topology.CoordinatePlaces),
			W:       size,
			H:       size,
			Opacity: opacity[i],
			Class:   class,
		})
	}
	return shapes
}

func labelGroup(lb topology.Label) Group {
	anchor := "start"
	if lb.AlignEnd {
		anchor = "end"
	}
	return Group{
		Class: ClassLabel,
		Shapes: []Shape{
			Line{
				X1: lb.Anchor.X, Y1: lb.Anchor.Y, X2: lb.Elbow.X, Y2: lb.Elbow.Y,
				Width:   leaderWidth,
				Opacity: 1,
				Class:   ClassLeader,
			},
			Text{
				Anchor: anchor,
				Spans: []Span{
					{X: lb.Text.X, Y: lb.Text.Y, Content: lb.Title, Class: ClassTitle},
					{X: lb.Subtext.X, Y: lb.Subtext.Y, Content: lb.Subtitle, Class: ClassSubtitle},
				},
			},
		},
	}
}
