package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/openmesh-network/meshviz/pkg/topology"
)

func testScene(p topology.Params) topology.Scene {
	return topology.Build(p, topology.DefaultLayout())
}

func TestToDOT_Structure(t *testing.T) {
	s := testScene(topology.DefaultParams())
	dot := ToDOT(s)

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() output missing graph declaration")
	}
	if !strings.Contains(dot, "layout=neato;") {
		t.Error("ToDOT() should select the neato engine")
	}
	if got := strings.Count(dot, " -- "); got != len(s.Connections) {
		t.Errorf("edge count = %d, want %d", got, len(s.Connections))
	}
	if got := strings.Count(dot, "pos="); got != len(s.Outer)+len(s.Inner) {
		t.Errorf("node count = %d, want %d", got, len(s.Outer)+len(s.Inner))
	}
}

func TestToDOT_PinnedPositions(t *testing.T) {
	dot := ToDOT(testScene(topology.DefaultParams()))

	// xnode-0 sits at (900, 450) on the canvas.
	if !strings.Contains(dot, `"xnode-0" [pos="12.5,-6.25!"`) {
		t.Errorf("xnode-0 not pinned at its ring position:\n%.400s", dot)
	}
	if !strings.Contains(dot, `"xnode-0" -- "vm-0"`) {
		t.Error("ToDOT() output missing edge xnode-0 -- vm-0")
	}
}

func TestToDOT_EmptyInnerRing(t *testing.T) {
	dot := ToDOT(testScene(topology.Params{NodeCount: 1, AllocationPercent: 5}))
	if strings.Contains(dot, " -- ") {
		t.Error("no edges expected without VMs")
	}
	if strings.Contains(dot, `"vm-`) {
		t.Error("no VM nodes expected")
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		opacity float64
		want    string
	}{
		{1, "#3b82f6ff"},
		{0, "#3b82f600"},
		{0.5, "#3b82f680"},
		{-0.3375, "#3b82f600"},
		{1.7, "#3b82f6ff"},
	}
	for _, tt := range tests {
		if got := withAlpha("#3b82f6", tt.opacity); got != tt.want {
			t.Errorf("withAlpha(%v) = %q, want %q", tt.opacity, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox should be returned unchanged")
	}
}

func TestRenderSVG(t *testing.T) {
	s := testScene(topology.Params{NodeCount: 10, AllocationPercent: 50})
	svg, err := RenderSVG(context.Background(), ToDOT(s))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not SVG")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "graph {"); err == nil {
		t.Error("RenderSVG() should fail on malformed DOT")
	}
}
