package topology

import (
	"math"
	"math/rand"

	"github.com/Ramundoness/DynaRoute/sim"
)

// maxDistance is the largest possible distance between two points in the
// unit square, used to normalize distances into [0, 1].
var maxDistance = math.Sqrt2

// geoTopology connects nodes based on their location in the unit square.
// Two nodes are adjacent iff their normalized Euclidean distance is strictly
// below the density threshold. Volatility controls how fast the nodes drift,
// and with it how quickly the connectivity changes.
type geoTopology struct {
	numNodes   int
	density    float64
	volatility float64
	rng        *rand.Rand

	positions [][2]float64
	matrix    sim.AdjacencyMatrix
}

func buildGeometric(b Builder) Topology {
	t := &geoTopology{
		numNodes:   b.numNodes,
		density:    b.density,
		volatility: b.volatility,
		rng:        b.rng,
	}

	t.positions = make([][2]float64, t.numNodes)
	for i := range t.positions {
		t.positions[i] = [2]float64{t.rng.Float64(), t.rng.Float64()}
	}

	t.recompute()

	return t
}

// recompute derives the adjacency from the current positions.
func (t *geoTopology) recompute() {
	m := sim.NewAdjacencyMatrix(t.numNodes)

	for i := 0; i < t.numNodes; i++ {
		for j := 0; j < t.numNodes; j++ {
			m[i][j] = t.distance(i, j)/maxDistance < t.density
		}
	}

	t.matrix = m
}

func (t *geoTopology) distance(i, j int) float64 {
	dx := t.positions[i][0] - t.positions[j][0]
	dy := t.positions[i][1] - t.positions[j][1]

	return math.Hypot(dx, dy)
}

func (t *geoTopology) Neighbors(id sim.NodeID) []sim.NodeID {
	return t.matrix.Neighbors(id)
}

func (t *geoTopology) Matrix() sim.AdjacencyMatrix {
	return t.matrix
}

// Positions returns a copy of the node positions for rendering.
func (t *geoTopology) Positions() [][2]float64 {
	positions := make([][2]float64, len(t.positions))
	copy(positions, t.positions)

	return positions
}

// Step displaces every node by a unit-random direction scaled by the
// volatility. Coordinates that would leave the unit square are reflected
// back into range rather than wrapped, then the adjacency is recomputed.
func (t *geoTopology) Step() {
	for i := range t.positions {
		dx := t.rng.Float64() - 0.5
		dy := t.rng.Float64() - 0.5

		norm := math.Hypot(dx, dy)
		if norm > 0 {
			dx /= norm
			dy /= norm
		}

		t.positions[i][0] = reflect(t.positions[i][0] + t.volatility*dx)
		t.positions[i][1] = reflect(t.positions[i][1] + t.volatility*dy)
	}

	t.recompute()
}

// reflect bounces a coordinate off the [0, 1] boundaries.
func reflect(x float64) float64 {
	if x > 1 {
		x -= 2 * (x - 1)
	}

	if x < 0 {
		x -= 2 * x
	}

	return x
}
