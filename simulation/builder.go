package simulation

import (
	"github.com/Ramundoness/DynaRoute/routing"
	"github.com/Ramundoness/DynaRoute/sim"
	"github.com/Ramundoness/DynaRoute/topology"
)

// Builder can be used to build a simulator.
type Builder struct {
	numNodes      int
	topo          topology.Topology
	forwarders    routing.Builder
	parallelDrain bool
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		numNodes:   2,
		forwarders: routing.MakeBuilder(),
	}
}

// WithNumNodes sets the number of nodes in the network.
func (b Builder) WithNumNodes(n int) Builder {
	b.numNodes = n
	return b
}

// WithTopology sets the topology the simulator owns.
func (b Builder) WithTopology(t topology.Topology) Builder {
	b.topo = t
	return b
}

// WithForwarderBuilder sets the builder used to create each node's
// forwarding algorithm.
func (b Builder) WithForwarderBuilder(fb routing.Builder) Builder {
	b.forwarders = fb
	return b
}

// WithParallelDrain makes the inbox-drain phase run across nodes in
// parallel. The outcome is unchanged; only wall-clock time is affected.
func (b Builder) WithParallelDrain() Builder {
	b.parallelDrain = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.topo == nil {
		panic("simulator needs a topology")
	}

	if b.numNodes != b.topo.Matrix().NumNodes() {
		panic("node count does not match the topology size")
	}
}

// Build builds the simulator, creating the node for every ID in [0, N).
func (b Builder) Build() *Simulator {
	b.parametersMustBeValid()

	s := &Simulator{
		topo:     b.topo,
		parallel: b.parallelDrain,
	}

	for i := 0; i < b.numNodes; i++ {
		id := sim.NodeID(i)
		s.nodes = append(s.nodes, sim.NewNode(id, b.forwarders.Build(id)))
	}

	return s
}
