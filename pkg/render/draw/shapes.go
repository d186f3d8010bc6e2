package draw

// Shape is one drawing instruction. The concrete types are [Line], [Rect],
// [Ring], [Text] and [Group].
type Shape interface {
	shape()
}

// Line is a straight stroke. FromID and ToID name the node rects it joins,
// if any.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string // colour; empty means "use Class"
	Width          float64
	Opacity        float64
	Class          string
	FromID, ToID   string
}

// Rect is an axis-aligned filled square or rectangle.
type Rect struct {
	ID         string
	X, Y, W, H float64
	Opacity    float64
	Class      string
}

// Ring is a stroked, unfilled circle squashed vertically by ScaleY around its
// own centre. Its stroke is painted with the gradient GradientID.
type Ring struct {
	CX, CY, R   float64
	StrokeWidth float64
	ScaleY      float64
	Opacity     float64
	GradientID  string
}

// Span is one positioned run of text.
type Span struct {
	X, Y    float64
	Content string
	Class   string
}

// Text is a title span followed by optional sub-spans (SVG tspans).
type Text struct {
	Anchor string // "start" or "end"
	Spans  []Span
}

// Group wraps shapes that belong together, e.g. a callout.
type Group struct {
	Class  string
	Shapes []Shape
}

func (Line) shape()  {}
func (Rect) shape()  {}
func (Ring) shape()  {}
func (Text) shape()  {}
func (Group) shape() {}

// Stop is a gradient colour stop; Offset is in percent.
type Stop struct {
	Offset float64
	Color  string
}

// Gradient is a horizontal linear gradient.
type Gradient struct {
	ID    string
	Stops []Stop
}

// Drawing is a complete frame.
type Drawing struct {
	Width, Height float64
	Title         string
	Gradients     []Gradient
	Shapes        []Shape
}

// Count returns the number of shapes of each kind, descending into groups.
// Keys are "line", "rect", "ring", "text" and "group".
func (d Drawing) Count() map[string]int {
	counts := make(map[string]int)
	var walk func([]Shape)
	walk = func(shapes []Shape) {
		for _, s := range shapes {
			switch s := s.(type) {
			case Line:
				counts["line"]++
			case Rect:
				counts["rect"]++
			case Ring:
				counts["ring"]++
			case Text:
				counts["text"]++
			case Group:
				counts["group"]++
				walk(s.Shapes)
			}
		}
	}
	walk(d.Shapes)
	return counts
}
