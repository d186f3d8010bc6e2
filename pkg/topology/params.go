package topology

import (
	"math"

	errs "github.com/openmesh-network/meshviz/pkg/errors"
)

// Input bounds enforced by the controls.
const (
	MinNodeCount  = 10
	MaxNodeCount  = 100
	MinAllocation = 1
	MaxAllocation = 100

	// DefaultNodeCount and DefaultAllocation are the initial control positions.
	DefaultNodeCount  = 58
	DefaultAllocation = 10

	// innerRatio is the share of XNodes mirrored as VMs on the inner ring.
	innerRatio = 0.6
)

// Params is the complete input of the visualization.
// It is passed by value; the owner decides when to rebuild the scene.
type Params struct {
	NodeCount         int     `json:"node_count" toml:"node_count" yaml:"node_count"`
	AllocationPercent float64 `json:"allocation_percent" toml:"allocation_percent" yaml:"allocation_percent"`
}

// DefaultParams returns the initial control positions.
func DefaultParams() Params {
	return Params{NodeCount: DefaultNodeCount, AllocationPercent: DefaultAllocation}
}

// InnerCount is the number of VMs on the inner ring: floor(0.6 × NodeCount).
func (p Params) InnerCount() int {
	return InnerCount(p.NodeCount)
}

// InnerCount returns floor(0.6 × nodeCount), never below zero.
func InnerCount(nodeCount int) int {
	if nodeCount <= 0 {
		return 0
	}
	return int(math.Floor(float64(nodeCount) * innerRatio))
}

// Validate reports whether p lies within the control bounds.
func (p Params) Validate() error {
	if err := errs.ValidateRange("node count", float64(p.NodeCount), MinNodeCount, MaxNodeCount); err != nil {
		return err
	}
	return errs.ValidateRange("allocation", p.AllocationPercent, MinAllocation, MaxAllocation)
}

// Clamp returns a copy of p forced into the control bounds, the way a slider
// would snap an out-of-range value. Allocation is rounded to a whole percent.
func (p Params) Clamp() Params {
	p.NodeCount = min(max(p.NodeCount, MinNodeCount), MaxNodeCount)
	alloc := math.Round(p.AllocationPercent)
	if math.IsNaN(alloc) {
		alloc = DefaultAllocation
	}
	p.AllocationPercent = min(max(alloc, MinAllocation), MaxAllocation)
	return p
}
