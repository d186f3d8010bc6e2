package sink

import (
	"encoding/json"

	"github.com/openmesh-network/meshviz/pkg/topology"
)

type jsonOutput struct {
	Params        topology.Params         `json:"params"`
	Layout        topology.Layout         `json:"layout"`
	Resources     topology.ResourceTotals `json:"resources"`
	Display       jsonDisplay             `json:"display"`
	RingThickness float64                 `json:"ring_thickness"`
	Counts        jsonCounts              `json:"counts"`
	Gauge         topology.Gauge          `json:"gauge"`
	Outer         []jsonNode              `json:"outer"`
	Inner         []jsonNode              `json:"inner"`
	Connections   []topology.Connection   `json:"connections"`
	Labels        []topology.Label        `json:"labels"`
}

// jsonDisplay carries resource totals formatted at their display precision.
type jsonDisplay struct {
	CPU     string `json:"cpu"`
	Memory  string `json:"memory"`
	Storage string `json:"storage"`
}

type jsonCounts struct {
	XNodes      int `json:"xnodes"`
	VMs         int `json:"vms"`
	Connections int `json:"connections"`
}

type jsonNode struct {
	topology.Node
	Opacity float64 `json:"opacity"`
}

// RenderJSON exports the scene as a pretty-printed JSON document.
//
// Connection opacities are written exactly as computed, including negative
// values. RenderJSON does not modify the scene and is safe to call concurrently.
func RenderJSON(s topology.Scene) ([]byte, error) {
	out := jsonOutput{
		Params:    s.Params,
		Layout:    s.Layout,
		Resources: s.Resources,
		Display: jsonDisplay{
			CPU:     s.Resources.FormatCPU(),
			Memory:  s.Resources.FormatMemory(),
			Storage: s.Resources.FormatStorage(),
		},
		RingThickness: s.RingThickness,
		Counts: jsonCounts{
			XNodes:      len(s.Outer),
			VMs:         len(s.Inner),
			Connections: len(s.Connections),
		},
		Gauge:       s.Gauge,
		Outer:       withOpacity(s.Outer, s.OuterOpacity),
		Inner:       withOpacity(s.Inner, s.InnerOpacity),
		Connections: s.Connections,
		Labels:      s.Labels,
	}
	return json.MarshalIndent(out, "", "  ")
}

func withOpacity(nodes []topology.Node, opacity []float64) []jsonNode {
	out := make([]jsonNode, len(nodes))
	for i, n := range nodes {
		out[i] = jsonNode{Node: n}
		if i < len(opacity) {
			out[i].Opacity = opacity[i]
		}
	}
	return out
}
