package topology

import "strconv"

// ResourceTotals holds compute, memory and storage amounts.
//
// CPU is in vCPUs, Memory and Storage in GB. Totals returned by
// [ComputeResources] are already quantized to the display precision.
type ResourceTotals struct {
	CPU     float64 `json:"cpu"`
	Memory  float64 `json:"memory"`
	Storage float64 `json:"storage"`
}

// PerNode is the fixed resource budget of a single XNode.
var PerNode = ResourceTotals{CPU: 8, Memory: 16, Storage: 320}

// Display precision of each resource field.
const (
	cpuPlaces     = 1
	memoryPlaces  = 1
	storagePlaces = 0
)

// ComputeResources returns the resources allocated across nodeCount nodes
// when allocationPercent of each node's budget is in use.
//
// CPU and memory keep one decimal, storage is a whole number. Inputs are not
// validated; negative values produce meaningless totals.
func ComputeResources(nodeCount int, allocationPercent float64) ResourceTotals {
	share := allocationPercent / 100
	n := float64(nodeCount)
	return ResourceTotals{
		CPU:     Round(n*PerNode.CPU*share, cpuPlaces),
		Memory:  Round(n*PerNode.Memory*share, memoryPlaces),
		Storage: Round(n*PerNode.Storage*share, storagePlaces),
	}
}

// ComputeRingThickness returns the stroke width of the resource gauge ring:
// a 20 unit base plus one unit per fully allocated node.
func ComputeRingThickness(nodeCount int, allocationPercent float64) float64 {
	return round4(20 + (float64(nodeCount) * allocationPercent / 100))
}

// FormatCPU renders CPU with one decimal, e.g. "46.4".
func (r ResourceTotals) FormatCPU() string {
	return strconv.FormatFloat(r.CPU, 'f', cpuPlaces, 64)
}

// FormatMemory renders memory with one decimal, e.g. "92.8".
func (r ResourceTotals) FormatMemory() string {
	return strconv.FormatFloat(r.Memory, 'f', memoryPlaces, 64)
}

// FormatStorage renders storage as a whole number, e.g. "1856".
func (r ResourceTotals) FormatStorage() string {
	return strconv.FormatFloat(r.Storage, 'f', storagePlaces, 64)
}
