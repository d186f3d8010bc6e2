package topology

import (
	"math"
	"testing"
)

var testCenter = Point{X: 600, Y: 400}

func almostEqual(a, b float64) bool { return math.Abs(a-b) <= 1e-4 }

func TestGenerateRingNodesCountAndIDs(t *testing.T) {
	for _, count := range []int{1, 2, 3, 6, 10, 34, 58, 100} {
		nodes := GenerateRingNodes(testCenter, count, 300, 50, DefaultDepthScale)
		if len(nodes) != count {
			t.Fatalf("count %d: got %d nodes", count, len(nodes))
		}
		for i, n := range nodes {
			if n.ID != i {
				t.Errorf("count %d: nodes[%d].ID = %d", count, i, n.ID)
			}
		}
	}
}

func TestGenerateRingNodesEmpty(t *testing.T) {
	for _, count := range []int{0, -1} {
		nodes := GenerateRingNodes(testCenter, count, 300, 50, DefaultDepthScale)
		if nodes == nil {
			t.Errorf("count %d: want empty slice, got nil", count)
		}
		if len(nodes) != 0 {
			t.Errorf("count %d: want 0 nodes, got %d", count, len(nodes))
		}
	}
}

func TestGenerateRingNodesFirstNodeAtAngleZero(t *testing.T) {
	tests := []struct {
		count          int
		radius, offset float64
	}{
		{58, 300, 50},
		{34, 225, -50},
		{1, 100, 0},
	}
	for _, tt := range tests {
		n := GenerateRingNodes(testCenter, tt.count, tt.radius, tt.offset, DefaultDepthScale)[0]
		if !almostEqual(n.X, testCenter.X+tt.radius) {
			t.Errorf("count %d: x = %v, want %v", tt.count, n.X, testCenter.X+tt.radius)
		}
		if !almostEqual(n.Y, testCenter.Y+tt.offset) {
			t.Errorf("count %d: y = %v, want %v", tt.count, n.Y, testCenter.Y+tt.offset)
		}
		if n.Z != 0 {
			t.Errorf("count %d: z = %v, want 0", tt.count, n.Z)
		}
	}
}

func TestGenerateRingNodesQuadrants(t *testing.T) {
	nodes := GenerateRingNodes(testCenter, 4, 300, 50, 0.3)
	want := []Node{
		{X: 900, Y: 450, Z: 0, ID: 0},
		{X: 600, Y: 540, Z: 300, ID: 1},
		{X: 300, Y: 450, Z: 0, ID: 2},
		{X: 600, Y: 360, Z: -300, ID: 3},
	}
	for i, w := range want {
		if nodes[i] != w {
			t.Errorf("nodes[%d] = %+v, want %+v", i, nodes[i], w)
		}
	}
}

func TestGenerateRingNodesDiametricSymmetry(t *testing.T) {
	for _, count := range []int{2, 10, 34, 58, 100} {
		nodes := GenerateRingNodes(testCenter, count, 300, 50, DefaultDepthScale)
		first, opposite := nodes[0], nodes[count/2]
		if !almostEqual(opposite.X, 2*testCenter.X-first.X) {
			t.Errorf("count %d: opposite x = %v, want %v", count, opposite.X, 2*testCenter.X-first.X)
		}
		if !almostEqual(opposite.Y, first.Y) {
			t.Errorf("count %d: opposite y = %v, want %v", count, opposite.Y, first.Y)
		}
	}
}

func TestGenerateRingNodesDepthScale(t *testing.T) {
	flat := GenerateRingNodes(testCenter, 4, 300, 0, 0)
	if flat[1].Y != testCenter.Y {
		t.Errorf("depth scale 0 should flatten the ring, y = %v", flat[1].Y)
	}
	if flat[1].Z != 300 {
		t.Errorf("z must ignore the depth scale, got %v", flat[1].Z)
	}
	full := GenerateRingNodes(testCenter, 4, 300, 0, 1)
	if full[1].Y != testCenter.Y+300 {
		t.Errorf("depth scale 1 should give a circle, y = %v", full[1].Y)
	}
}

func TestGenerateRingNodesQuantized(t *testing.T) {
	for _, n := range GenerateRingNodes(testCenter, 58, 300, 50, DefaultDepthScale) {
		for _, v := range []float64{n.X, n.Y, n.Z} {
			if Round(v, 4) != v {
				t.Fatalf("node %d has unquantized coordinate %v", n.ID, v)
			}
		}
	}
}

func TestGenerateRingNodesIdempotent(t *testing.T) {
	a := GenerateRingNodes(testCenter, 58, 300, 50, DefaultDepthScale)
	b := GenerateRingNodes(testCenter, 58, 300, 50, DefaultDepthScale)
	for i := range a {
		if math.Float64bits(a[i].X) != math.Float64bits(b[i].X) ||
			math.Float64bits(a[i].Y) != math.Float64bits(b[i].Y) ||
			math.Float64bits(a[i].Z) != math.Float64bits(b[i].Z) {
			t.Fatalf("node %d differs between calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestNodeOpacity(t *testing.T) {
	tests := []struct {
		z    float64
		want float64
	}{
		{-300, 0},
		{0, 0.5},
		{300, 1},
		{150, 0.75},
	}
	for _, tt := range tests {
		if got := NodeOpacity(Node{Z: tt.z}, 300); got != tt.want {
			t.Errorf("NodeOpacity(z=%v) = %v, want %v", tt.z, got, tt.want)
		}
	}
	if got := NodeOpacity(Node{Z: 5}, 0); got != 1 {
		t.Errorf("zero radius should be opaque, got %v", got)
	}
}
