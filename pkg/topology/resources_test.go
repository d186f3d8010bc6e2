package topology

import "testing"

func TestComputeResources(t *testing.T) {
	tests := []struct {
		nodes      int
		allocation float64
		want       ResourceTotals
	}{
		{58, 10, ResourceTotals{CPU: 46.4, Memory: 92.8, Storage: 1856}},
		{10, 1, ResourceTotals{CPU: 0.8, Memory: 1.6, Storage: 32}},
		{100, 100, ResourceTotals{CPU: 800, Memory: 1600, Storage: 32000}},
		{10, 100, ResourceTotals{CPU: 80, Memory: 160, Storage: 3200}},
		{0, 50, ResourceTotals{}},
	}
	for _, tt := range tests {
		got := ComputeResources(tt.nodes, tt.allocation)
		if got != tt.want {
			t.Errorf("ComputeResources(%d, %v) = %+v, want %+v", tt.nodes, tt.allocation, got, tt.want)
		}
	}
}

func TestResourceTotalsFormatting(t *testing.T) {
	tests := []struct {
		nodes      int
		allocation float64
		cpu, mem   string
		storage    string
	}{
		{58, 10, "46.4", "92.8", "1856"},
		{10, 1, "0.8", "1.6", "32"},
		{100, 100, "800.0", "1600.0", "32000"},
		{13, 7, "7.3", "14.6", "291"},
	}
	for _, tt := range tests {
		r := ComputeResources(tt.nodes, tt.allocation)
		if got := r.FormatCPU(); got != tt.cpu {
			t.Errorf("(%d,%v) FormatCPU = %q, want %q", tt.nodes, tt.allocation, got, tt.cpu)
		}
		if got := r.FormatMemory(); got != tt.mem {
			t.Errorf("(%d,%v) FormatMemory = %q, want %q", tt.nodes, tt.allocation, got, tt.mem)
		}
		if got := r.FormatStorage(); got != tt.storage {
			t.Errorf("(%d,%v) FormatStorage = %q, want %q", tt.nodes, tt.allocation, got, tt.storage)
		}
	}
}

func TestComputeRingThickness(t *testing.T) {
	tests := []struct {
		nodes      int
		allocation float64
		want       float64
	}{
		{58, 10, 25.8},
		{10, 1, 20.1},
		{100, 100, 120},
		{0, 100, 20},
	}
	for _, tt := range tests {
		if got := ComputeRingThickness(tt.nodes, tt.allocation); got != tt.want {
			t.Errorf("ComputeRingThickness(%d, %v) = %v, want %v", tt.nodes, tt.allocation, got, tt.want)
		}
	}
}
