package topology_test

import (
	"fmt"

	"github.com/openmesh-network/meshviz/pkg/topology"
)

func ExampleGenerateRingNodes() {
	nodes := topology.GenerateRingNodes(topology.Point{X: 600, Y: 400}, 4, 300, 50, topology.DefaultDepthScale)
	for _, n := range nodes {
		fmt.Printf("%d: x=%v y=%v z=%v\n", n.ID, n.X, n.Y, n.Z)
	}
	// Output:
	// 0: x=900 y=450 z=0
	// 1: x=600 y=540 z=300
	// 2: x=300 y=450 z=0
	// 3: x=600 y=360 z=-300
}

func ExampleComputeResources() {
	r := topology.ComputeResources(58, 10)
	fmt.Printf("%s vCPU, %s GB RAM, %s GB storage\n", r.FormatCPU(), r.FormatMemory(), r.FormatStorage())
	fmt.Println(topology.ComputeRingThickness(58, 10))
	// Output:
	// 46.4 vCPU, 92.8 GB RAM, 1856 GB storage
	// 25.8
}

func ExampleSelectConnections() {
	outer := topology.GenerateRingNodes(topology.Point{}, 3, 300, 0, topology.DefaultDepthScale)
	inner := topology.GenerateRingNodes(topology.Point{}, 3, 225, 0, topology.DefaultDepthScale)
	for _, c := range topology.SelectConnections(outer, inner, 300) {
		fmt.Println(c.OuterIndex, c.InnerIndex)
	}
	// Output:
	// 0 0
	// 1 2
	// 2 1
}

func ExampleBuild() {
	scene := topology.Build(topology.DefaultParams(), topology.DefaultLayout())
	fmt.Println(len(scene.Outer), len(scene.Inner))
	for _, l := range scene.Labels {
		fmt.Println(l.Subtitle)
	}
	// Output:
	// 58 34
	// 10% Resources Allocated
	// 34 VMs
	// 58 Nodes (46.4 vCPU, 92.8 GB RAM)
}
