package sink

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/openmesh-network/meshviz/pkg/topology"
)

func TestRenderJSON(t *testing.T) {
	s := topology.Build(topology.DefaultParams(), topology.DefaultLayout())
	data, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var doc struct {
		Params    topology.Params `json:"params"`
		Resources struct {
			CPU     float64 `json:"cpu"`
			Memory  float64 `json:"memory"`
			Storage float64 `json:"storage"`
		} `json:"resources"`
		Display struct {
			CPU     string `json:"cpu"`
			Storage string `json:"storage"`
		} `json:"display"`
		RingThickness float64 `json:"ring_thickness"`
		Counts        struct {
			XNodes      int `json:"xnodes"`
			VMs         int `json:"vms"`
			Connections int `json:"connections"`
		} `json:"counts"`
		Outer []struct {
			X, Y, Z float64
			ID      int
			Opacity float64
		} `json:"outer"`
		Connections []topology.Connection `json:"connections"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if doc.Params != topology.DefaultParams() {
		t.Errorf("params = %+v", doc.Params)
	}
	if doc.Resources.CPU != 46.4 || doc.Resources.Memory != 92.8 || doc.Resources.Storage != 1856 {
		t.Errorf("resources = %+v", doc.Resources)
	}
	if doc.Display.CPU != "46.4" || doc.Display.Storage != "1856" {
		t.Errorf("display = %+v", doc.Display)
	}
	if doc.RingThickness != 25.8 {
		t.Errorf("ring thickness = %v", doc.RingThickness)
	}
	if doc.Counts.XNodes != 58 || doc.Counts.VMs != 34 || doc.Counts.Connections != len(s.Connections) {
		t.Errorf("counts = %+v", doc.Counts)
	}
	if len(doc.Outer) != 58 || doc.Outer[0].X != 900 || doc.Outer[0].Opacity != 0.5 {
		t.Errorf("outer[0] = %+v", doc.Outer[0])
	}
	if len(doc.Connections) != len(s.Connections) {
		t.Errorf("connections = %d, want %d", len(doc.Connections), len(s.Connections))
	}
}

func TestRenderJSONKeepsNegativeOpacity(t *testing.T) {
	s := topology.Build(topology.Params{NodeCount: 100, AllocationPercent: 50}, topology.DefaultLayout())
	var negative bool
	for _, c := range s.Connections {
		if c.Opacity < 0 {
			negative = true
			break
		}
	}
	if !negative {
		t.Fatal("expected at least one negative opacity in a 100 node scene")
	}
	data, err := RenderJSON(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"opacity": -`)) {
		t.Error("negative opacity should survive JSON export")
	}
}

func TestRenderJSONEmptyInnerRing(t *testing.T) {
	s := topology.Build(topology.Params{NodeCount: 1, AllocationPercent: 1}, topology.DefaultLayout())
	data, err := RenderJSON(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"inner": []`)) || !bytes.Contains(data, []byte(`"connections": []`)) {
		t.Errorf("empty rings should serialize as []:\n%s", data)
	}
}
