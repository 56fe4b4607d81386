package topology

import (
	"math/rand"

	"github.com/Ramundoness/DynaRoute/sim"
)

// randomTopology is an Erdős–Rényi-style topology. Each unordered pair of
// nodes is connected independently with probability derived from the
// density; volatility controls the fraction of entries redrawn per tick.
type randomTopology struct {
	numNodes   int
	density    float64
	volatility float64
	rng        *rand.Rand

	matrix sim.AdjacencyMatrix
}

func buildRandom(b Builder) Topology {
	t := &randomTopology{
		numNodes:   b.numNodes,
		density:    b.density,
		volatility: b.volatility,
		rng:        b.rng,
	}
	t.matrix = t.draw(t.density)

	return t
}

// draw samples a fresh symmetric adjacency. Entries are drawn per ordered
// pair and symmetrized with a logical OR, so the realized edge probability
// is 1-(1-p)^2. The diagonal is forced on so every node has at least itself
// as a neighbor.
func (t *randomTopology) draw(p float64) sim.AdjacencyMatrix {
	m := sim.NewAdjacencyMatrix(t.numNodes)

	for i := 0; i < t.numNodes; i++ {
		for j := 0; j < t.numNodes; j++ {
			if t.rng.Float64() < p {
				m[i][j] = true
				m[j][i] = true
			}
		}
	}

	for i := 0; i < t.numNodes; i++ {
		m[i][i] = true
	}

	return m
}

func (t *randomTopology) Neighbors(id sim.NodeID) []sim.NodeID {
	return t.matrix.Neighbors(id)
}

func (t *randomTopology) Matrix() sim.AdjacencyMatrix {
	return t.matrix
}

// Step redraws the whole adjacency at the target density, then keeps each
// entry of the previous adjacency unless a volatility-density mask selects
// the fresh draw for it. Edge churn is roughly proportional to volatility
// while the density distribution is preserved.
func (t *randomTopology) Step() {
	fresh := t.draw(t.density)
	mask := t.draw(t.volatility)

	for i := 0; i < t.numNodes; i++ {
		for j := 0; j < t.numNodes; j++ {
			if mask[i][j] {
				t.matrix[i][j] = fresh[i][j]
			}
		}
	}
}
