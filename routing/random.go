package routing

import (
	"math/rand"

	"github.com/Ramundoness/DynaRoute/sim"
)

// Random forwards each packet to exactly one uniformly chosen neighbor. It
// keeps no loop memory, so the same message may revisit a node.
type Random struct {
	self sim.NodeID
	rng  *rand.Rand
}

// LoopFree reports that the algorithm does not prevent loops.
func (r *Random) LoopFree() bool {
	return false
}

// Forward picks one neighbor at random and moves the packet there. A node
// with no neighbors forwards nothing. Self-adjacency means the packet may be
// handed back to this node for another try next tick.
func (r *Random) Forward(
	pkt *sim.Packet,
	neighbors []sim.NodeID,
) []sim.Delivery {
	if len(neighbors) == 0 {
		return nil
	}

	to := neighbors[r.rng.Intn(len(neighbors))]
	pkt.Msg.AddCost(1)

	return []sim.Delivery{{Pkt: pkt, To: to}}
}
