package routing

import (
	"math/rand"

	"github.com/Ramundoness/DynaRoute/sim"
)

// splitFlood holds the shared state of the two TTL-flood variants that split
// their fan-out budget unevenly over a packet's lifetime. Neighbors are
// visited in shuffled order so the throttling does not bias toward low node
// IDs.
type splitFlood struct {
	self          sim.NodeID
	seen          map[int]bool
	rng           *rand.Rand
	totalMessages int
}

func (s *splitFlood) shuffled(neighbors []sim.NodeID) []sim.NodeID {
	order := make([]sim.NodeID, len(neighbors))
	copy(order, neighbors)
	s.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return order
}

func (s *splitFlood) ttlRatio(pkt *sim.Packet) float64 {
	return float64(pkt.TTL) / float64(s.totalMessages)
}

// EarlySplitFlood is a TTL flood that forwards to a larger fraction of
// neighbors while the TTL is high, early in the packet's life, and throttles
// the fan-out as the TTL decays. It trades early redundancy for late
// economy.
type EarlySplitFlood struct {
	splitFlood
}

// LoopFree reports that the algorithm never sends a packet back onto its
// path.
func (e *EarlySplitFlood) LoopFree() bool {
	return true
}

// Forward floods to shuffled unvisited neighbors for as long as the
// remaining TTL budget stays ahead of the fraction of neighbors already
// covered.
func (e *EarlySplitFlood) Forward(
	pkt *sim.Packet,
	neighbors []sim.NodeID,
) []sim.Delivery {
	if e.seen[pkt.Msg.ID] {
		return nil
	}
	e.seen[pkt.Msg.ID] = true

	if ttlExpired(pkt) {
		return nil
	}

	var deliveries []sim.Delivery
	forwarded := 0

	for _, nb := range e.shuffled(neighbors) {
		if pkt.HasVisited(nb) {
			continue
		}

		if e.ttlRatio(pkt) < float64(forwarded)/float64(len(neighbors)) {
			break
		}

		pkt.Msg.AddCost(1)
		deliveries = append(deliveries, sim.Delivery{
			Pkt: pkt.Clone(),
			To:  nb,
		})
		forwarded++
	}

	return deliveries
}

// LateSplitFlood mirrors EarlySplitFlood: it always forwards to at least one
// neighbor, then keeps fanning out only once the TTL has decayed below the
// covered-neighbor fraction. Duplication concentrates late in the packet's
// journey.
type LateSplitFlood struct {
	splitFlood
}

// LoopFree reports that the algorithm never sends a packet back onto its
// path.
func (l *LateSplitFlood) LoopFree() bool {
	return true
}

// Forward floods to one shuffled unvisited neighbor unconditionally, and to
// further neighbors only while the TTL budget sits at or below the fraction
// of neighbors already covered.
func (l *LateSplitFlood) Forward(
	pkt *sim.Packet,
	neighbors []sim.NodeID,
) []sim.Delivery {
	if l.seen[pkt.Msg.ID] {
		return nil
	}
	l.seen[pkt.Msg.ID] = true

	if ttlExpired(pkt) {
		return nil
	}

	var deliveries []sim.Delivery
	forwarded := 0

	for _, nb := range l.shuffled(neighbors) {
		if pkt.HasVisited(nb) {
			continue
		}

		if forwarded > 0 &&
			l.ttlRatio(pkt) > float64(forwarded)/float64(len(neighbors)) {
			break
		}

		pkt.Msg.AddCost(1)
		deliveries = append(deliveries, sim.Delivery{
			Pkt: pkt.Clone(),
			To:  nb,
		})
		forwarded++
	}

	return deliveries
}
