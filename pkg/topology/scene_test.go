package topology

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildDefaultScene(t *testing.T) {
	s := Build(DefaultParams(), DefaultLayout())

	if len(s.Outer) != 58 {
		t.Errorf("outer ring has %d nodes, want 58", len(s.Outer))
	}
	if len(s.Inner) != 34 {
		t.Errorf("inner ring has %d nodes, want 34", len(s.Inner))
	}
	if len(s.OuterOpacity) != len(s.Outer) || len(s.InnerOpacity) != len(s.Inner) {
		t.Error("opacity slices must match ring sizes")
	}
	if s.Resources != (ResourceTotals{CPU: 46.4, Memory: 92.8, Storage: 1856}) {
		t.Errorf("resources = %+v", s.Resources)
	}
	if s.RingThickness != 25.8 {
		t.Errorf("ring thickness = %v, want 25.8", s.RingThickness)
	}
	if s.Gauge.Center != (Point{X: 600, Y: 420}) {
		t.Errorf("gauge centre = %+v, want {600 420}", s.Gauge.Center)
	}
	if s.Gauge.Radius != 225 {
		t.Errorf("gauge radius = %v, want 225", s.Gauge.Radius)
	}
	if s.Gauge.Thickness != s.RingThickness || s.Gauge.ScaleY != DefaultDepthScale {
		t.Errorf("gauge = %+v", s.Gauge)
	}
}

func TestBuildRingPlacement(t *testing.T) {
	s := Build(DefaultParams(), DefaultLayout())

	outer0 := s.Outer[0]
	if outer0.X != 900 || outer0.Y != 450 {
		t.Errorf("outer[0] = %+v, want x=900 y=450", outer0)
	}
	inner0 := s.Inner[0]
	if inner0.X != 825 || inner0.Y != 350 {
		t.Errorf("inner[0] = %+v, want x=825 y=350", inner0)
	}
}

func TestBuildLabels(t *testing.T) {
	s := Build(DefaultParams(), DefaultLayout())
	if len(s.Labels) != 3 {
		t.Fatalf("got %d labels, want 3", len(s.Labels))
	}

	want := []struct {
		title, subtitle string
		alignEnd        bool
	}{
		{"Openmesh Cloud", "10% Resources Allocated", false},
		{"Virtual Machine Layer", "34 VMs", true},
		{"XNode Infrastructure", "58 Nodes (46.4 vCPU, 92.8 GB RAM)", false},
	}
	for i, w := range want {
		l := s.Labels[i]
		if l.Title != w.title || l.Subtitle != w.subtitle || l.AlignEnd != w.alignEnd {
			t.Errorf("label %d = %q/%q/%v, want %q/%q/%v", i, l.Title, l.Subtitle, l.AlignEnd, w.title, w.subtitle, w.alignEnd)
		}
	}

	cloud := s.Labels[0]
	if cloud.Anchor != (Point{X: 855, Y: 350}) || cloud.Elbow != (Point{X: 960, Y: 300}) {
		t.Errorf("cloud leader line = %+v -> %+v", cloud.Anchor, cloud.Elbow)
	}
	if !strings.Contains(s.Labels[2].Subtitle, "vCPU") {
		t.Error("xnode label should list vCPUs")
	}
}

func TestBuildSmallestScene(t *testing.T) {
	s := Build(Params{NodeCount: 10, AllocationPercent: 1}, DefaultLayout())
	if len(s.Inner) != 6 {
		t.Errorf("inner ring has %d nodes, want 6", len(s.Inner))
	}
	if s.Resources != (ResourceTotals{CPU: 0.8, Memory: 1.6, Storage: 32}) {
		t.Errorf("resources = %+v", s.Resources)
	}
}

func TestBuildEmptyInnerRing(t *testing.T) {
	s := Build(Params{NodeCount: 1, AllocationPercent: 10}, DefaultLayout())
	if len(s.Inner) != 0 {
		t.Errorf("inner ring should be empty, got %d", len(s.Inner))
	}
	if len(s.Connections) != 0 {
		t.Errorf("no connections expected, got %d", len(s.Connections))
	}
}

func TestBuildIdempotent(t *testing.T) {
	p := Params{NodeCount: 73, AllocationPercent: 42}
	a := Build(p, DefaultLayout())
	b := Build(p, DefaultLayout())
	if !reflect.DeepEqual(a, b) {
		t.Error("Build should be deterministic")
	}
}

func TestLayoutWithDefaults(t *testing.T) {
	if got := (Layout{}).WithDefaults(); got != DefaultLayout() {
		t.Errorf("empty layout should become the default, got %+v", got)
	}

	custom := Layout{CanvasWidth: 800, CanvasHeight: 600}.WithDefaults()
	if custom.CanvasWidth != 800 || custom.BaseRadius != 300 || custom.DepthScale != DefaultDepthScale {
		t.Errorf("partial layout = %+v", custom)
	}
	if custom.OuterOffset != 0 {
		t.Errorf("explicit zero offset must be kept, got %v", custom.OuterOffset)
	}
	if c := custom.Center(); c != (Point{X: 400, Y: 300}) {
		t.Errorf("center = %+v", c)
	}
}
