package routing

import "github.com/Ramundoness/DynaRoute/sim"

// Flood copies a packet to every neighbor that is not already on the
// packet's path. A node forwards each message at most once: re-deliveries of
// a message it has already processed are suppressed. Flooding reaches every
// node a path exists to, at the cost of packet counts that grow with node
// degree.
type Flood struct {
	self sim.NodeID
	seen map[int]bool
}

// LoopFree reports that flooding never sends a packet back onto its path.
func (f *Flood) LoopFree() bool {
	return true
}

// Seen reports whether this node has already processed the message.
func (f *Flood) Seen(msgID int) bool {
	return f.seen[msgID]
}

// Forward clones the packet to every unvisited neighbor. Each clone charges
// one hop to the shared message.
func (f *Flood) Forward(
	pkt *sim.Packet,
	neighbors []sim.NodeID,
) []sim.Delivery {
	if f.seen[pkt.Msg.ID] {
		return nil
	}
	f.seen[pkt.Msg.ID] = true

	return fanOut(pkt, neighbors)
}

// fanOut clones the packet to every neighbor not on the packet's path.
func fanOut(pkt *sim.Packet, neighbors []sim.NodeID) []sim.Delivery {
	var deliveries []sim.Delivery

	for _, nb := range neighbors {
		if pkt.HasVisited(nb) {
			continue
		}

		pkt.Msg.AddCost(1)
		deliveries = append(deliveries, sim.Delivery{
			Pkt: pkt.Clone(),
			To:  nb,
		})
	}

	return deliveries
}

// LoopFlood floods without per-node message memory. A message may be
// reprocessed at the same node from different packet copies, trading the
// termination guarantee of Flood for resilience against lost seen state.
type LoopFlood struct {
	self sim.NodeID
}

// LoopFree reports that the algorithm intentionally permits loops.
func (f *LoopFlood) LoopFree() bool {
	return false
}

// Forward clones the packet to every unvisited neighbor, unconditionally.
func (f *LoopFlood) Forward(
	pkt *sim.Packet,
	neighbors []sim.NodeID,
) []sim.Delivery {
	return fanOut(pkt, neighbors)
}
