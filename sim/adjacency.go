package sim

// A NodeID identifies a node in the network. IDs are stable indices in the
// range [0, N), and double as row/column indices in the adjacency matrix.
type NodeID int

// An AdjacencyMatrix is a symmetric boolean connectivity relation over the
// nodes of a network. Entry [i][j] reports whether node i can reach node j in
// one hop. Every node is adjacent to itself by convention, so a node with no
// real neighbors can still be queried safely.
type AdjacencyMatrix [][]bool

// NewAdjacencyMatrix creates an all-false matrix for numNodes nodes.
func NewAdjacencyMatrix(numNodes int) AdjacencyMatrix {
	m := make(AdjacencyMatrix, numNodes)
	for i := range m {
		m[i] = make([]bool, numNodes)
	}

	return m
}

// NumNodes returns the number of nodes the matrix covers.
func (m AdjacencyMatrix) NumNodes() int {
	return len(m)
}

// Neighbors returns the IDs of all the nodes adjacent to the given node,
// in increasing order.
func (m AdjacencyMatrix) Neighbors(id NodeID) []NodeID {
	row := m[id]
	neighbors := make([]NodeID, 0, len(row))

	for j, connected := range row {
		if connected {
			neighbors = append(neighbors, NodeID(j))
		}
	}

	return neighbors
}

// A NeighborLister reports the current one-hop neighbors of a node. It is a
// pure lookup of stored state, not a network call.
type NeighborLister interface {
	Neighbors(id NodeID) []NodeID
}
