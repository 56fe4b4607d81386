// Package topology produces and evolves the node-adjacency relation of the
// simulated network.
package topology

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/Ramundoness/DynaRoute/sim"
)

// A Topology is the ground-truth connectivity of the network. It is owned by
// the simulator and mutated only through Step; nodes only ever query it.
type Topology interface {
	sim.NeighborLister

	// Matrix exposes the current adjacency. Consumers must treat it as
	// read-only.
	Matrix() sim.AdjacencyMatrix

	// Step mutates the adjacency in place according to the volatility.
	Step()
}

// A Positioned topology places nodes in the unit square. The positions are
// only an input to visualization and never affect the simulation outcome
// beyond the adjacency derived from them.
type Positioned interface {
	Positions() [][2]float64
}

var kinds = map[string]func(b Builder) Topology{
	"random":    buildRandom,
	"geometric": buildGeometric,
}

// Kinds lists the available topology strategies in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// A Builder builds topologies.
type Builder struct {
	kind       string
	numNodes   int
	density    float64
	volatility float64
	rng        *rand.Rand
}

// MakeBuilder creates a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		kind:       "random",
		numNodes:   2,
		density:    0.5,
		volatility: 0.5,
	}
}

// WithKind selects the topology strategy to build.
func (b Builder) WithKind(kind string) Builder {
	b.kind = kind
	return b
}

// WithNumNodes sets the number of nodes in the network.
func (b Builder) WithNumNodes(n int) Builder {
	b.numNodes = n
	return b
}

// WithDensity sets the expected connectivity, in [0, 1].
func (b Builder) WithDensity(density float64) Builder {
	b.density = density
	return b
}

// WithVolatility sets the per-tick connection churn, in [0, 1].
func (b Builder) WithVolatility(volatility float64) Builder {
	b.volatility = volatility
	return b
}

// WithRand sets the random source used for generation and evolution, so
// runs can be pinned exactly.
func (b Builder) WithRand(rng *rand.Rand) Builder {
	b.rng = rng
	return b
}

// Validate returns an error if the configured parameters cannot build a
// topology.
func (b Builder) Validate() error {
	if _, ok := kinds[b.kind]; !ok {
		return fmt.Errorf(
			"unknown topology %q, available: %v", b.kind, Kinds())
	}

	if b.numNodes <= 0 {
		return fmt.Errorf("topology needs at least one node, got %d",
			b.numNodes)
	}

	if b.density < 0 || b.density > 1 {
		return fmt.Errorf("density must be in [0, 1], got %f", b.density)
	}

	if b.volatility < 0 || b.volatility > 1 {
		return fmt.Errorf("volatility must be in [0, 1], got %f",
			b.volatility)
	}

	return nil
}

// Build creates the topology. It panics if the kind is unknown; call
// Validate first when the kind comes from user input.
func (b Builder) Build() Topology {
	construct, ok := kinds[b.kind]
	if !ok {
		panic("unknown topology " + b.kind)
	}

	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return construct(b)
}
