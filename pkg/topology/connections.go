package topology

// Connection links outer node OuterIndex to inner node InnerIndex.
//
// Opacity is derived from the combined depth of both ends and is not clamped:
// pairs at the back of both rings get slightly negative values, which SVG
// renderers treat as fully transparent.
type Connection struct {
	OuterIndex int     `json:"outer"`
	InnerIndex int     `json:"inner"`
	Opacity    float64 `json:"opacity"`
}

// SelectConnections returns the connected pairs of the outer × inner cross
// product in row-major order. A pair (i, j) is kept iff (i+j) mod 3 == 0,
// which keeps roughly a third of all pairs in a fixed pattern.
//
// Opacity is (outer.z + inner.z) / (4·baseRadius) + 0.1, rounded to 4 places.
func SelectConnections(outer, inner []Node, baseRadius float64) []Connection {
	conns := make([]Connection, 0, (len(outer)*len(inner))/3+1)
	for i, o := range outer {
		for j, in := range inner {
			if (i+j)%3 != 0 {
				continue
			}
			conns = append(conns, Connection{
				OuterIndex: i,
				InnerIndex: j,
				Opacity:    round4((o.Z+in.Z)/(baseRadius*4) + 0.1),
			})
		}
	}
	return conns
}
