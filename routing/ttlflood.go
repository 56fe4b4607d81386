package routing

import "github.com/Ramundoness/DynaRoute/sim"

// TTLFlood floods like Flood, but spends one unit of the packet's hop budget
// per forwarding decision. When the budget runs out the packet is dropped
// silently, bounding the worst-case flood depth in static or sparse graphs.
// A zero TTL disables enforcement entirely.
type TTLFlood struct {
	flood Flood
}

// LoopFree reports that the algorithm never sends a packet back onto its
// path.
func (t *TTLFlood) LoopFree() bool {
	return true
}

// Forward decrements the TTL and, if the budget survives, floods to every
// unvisited neighbor.
func (t *TTLFlood) Forward(
	pkt *sim.Packet,
	neighbors []sim.NodeID,
) []sim.Delivery {
	if ttlExpired(pkt) {
		return nil
	}

	return t.flood.Forward(pkt, neighbors)
}

// ttlExpired charges one hop of budget and reports whether the packet must
// be dropped. Packets with no budget (TTL 0) are never dropped.
func ttlExpired(pkt *sim.Packet) bool {
	if pkt.TTL <= 0 {
		return false
	}

	pkt.TTL--

	return pkt.TTL == 0
}
