package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/openmesh-network/meshviz/pkg/topology"
)

func TestNewResourceReport(t *testing.T) {
	r := newResourceReport(topology.DefaultParams(), topology.DefaultLayout())

	if r.VMs != 34 {
		t.Errorf("VMs = %d, want 34", r.VMs)
	}
	if r.Connections != 658 {
		t.Errorf("Connections = %d, want 658", r.Connections)
	}
	want := topology.ResourceTotals{CPU: 46.4, Memory: 92.8, Storage: 1856}
	if r.Resources != want {
		t.Errorf("Resources = %+v, want %+v", r.Resources, want)
	}
	if r.RingThickness != 25.8 {
		t.Errorf("RingThickness = %v, want 25.8", r.RingThickness)
	}
}

func TestResourcesCommandJSON(t *testing.T) {
	cfgPath := testConfig(t)

	out, err := runRoot(t, "--config", cfgPath, "resources", "-n", "100", "-a", "100", "--json")
	if err != nil {
		t.Fatalf("resources: %v", err)
	}

	var got resourceReport
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Resources.CPU != 800 || got.Resources.Memory != 1600 || got.Resources.Storage != 32000 {
		t.Errorf("Resources = %+v, want 800/1600/32000", got.Resources)
	}
	if got.VMs != 60 || got.RingThickness != 120 {
		t.Errorf("VMs = %d, RingThickness = %v; want 60, 120", got.VMs, got.RingThickness)
	}
}

func TestResourcesCommandTable(t *testing.T) {
	cfgPath := testConfig(t)

	out, err := runRoot(t, "--config", cfgPath, "resources")
	if err != nil {
		t.Fatalf("resources: %v", err)
	}
	for _, want := range []string{"CPU", "Memory", "Storage", "46.4", "92.8", "1856", "58 xnodes"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestResourcesCommandRange(t *testing.T) {
	cfgPath := testConfig(t)

	if _, err := runRoot(t, "--config", cfgPath, "resources", "-n", "9"); err == nil {
		t.Error("expected error for 9 XNodes")
	}
	out, err := runRoot(t, "--config", cfgPath, "resources", "-n", "9", "--clamp", "--json")
	if err != nil {
		t.Fatalf("resources --clamp: %v", err)
	}
	var got resourceReport
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Params.NodeCount != topology.MinNodeCount {
		t.Errorf("NodeCount = %d, want %d", got.Params.NodeCount, topology.MinNodeCount)
	}
}
