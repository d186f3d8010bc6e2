package topology

import "math"

// DefaultDepthScale is the vertical compression applied to ring ellipses.
const DefaultDepthScale = 0.3

// Point is a position in screen coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one projected ring member.
//
// X and Y are screen coordinates. Z is the uncompressed sine term and is only
// a depth proxy used for shading and connection opacity. ID is the zero-based
// position within its ring; outer and inner rings both start at 0.
type Node struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
	ID int     `json:"id"`
}

// GenerateRingNodes places count nodes uniformly on an ellipse centred on
// center, shifted vertically by verticalOffset.
//
// Node i sits at angle (i/count)·2π, so node 0 is at angle 0 and IDs ascend
// with the angle. A count of zero or less yields an empty slice; the inner
// ring can legitimately reach zero nodes.
func GenerateRingNodes(center Point, count int, radius, verticalOffset, depthScale float64) []Node {
	if count <= 0 {
		return []Node{}
	}
	nodes := make([]Node, count)
	for i := range nodes {
		angle := (float64(i) / float64(count)) * 2 * math.Pi
		nodes[i] = Node{
			X:  round4(center.X + radius*math.Cos(angle)),
			Y:  round4(center.Y + verticalOffset + radius*math.Sin(angle)*depthScale),
			Z:  round4(radius * math.Sin(angle)),
			ID: i,
		}
	}
	return nodes
}

// NodeOpacity maps a node's depth onto [0, 1]: nodes at the back of the ring
// (z = -radius) fade out, nodes at the front (z = radius) are fully opaque.
func NodeOpacity(n Node, radius float64) float64 {
	if radius == 0 {
		return 1
	}
	return round4((n.Z + radius) / (radius * 2))
}
