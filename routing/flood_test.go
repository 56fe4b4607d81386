package routing

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Ramundoness/DynaRoute/sim"
)

// inFlight mimics a packet as a node sees it during processing: the node has
// already recorded its own visit.
func inFlight(self sim.NodeID, dst sim.NodeID, ttl int) *sim.Packet {
	pkt := sim.NewPacket(sim.NewMessage(0, self, dst), ttl)
	pkt.RecordVisit(self)

	return pkt
}

var _ = Describe("Flood", func() {
	var f *Flood

	BeforeEach(func() {
		f = &Flood{self: 0, seen: map[int]bool{}}
	})

	It("should clone the packet to every unvisited neighbor", func() {
		pkt := inFlight(0, 4, 0)

		deliveries := f.Forward(pkt, []sim.NodeID{0, 1, 2})

		Expect(deliveries).To(HaveLen(2))
		Expect(deliveries[0].To).To(Equal(sim.NodeID(1)))
		Expect(deliveries[1].To).To(Equal(sim.NodeID(2)))
		Expect(pkt.Msg.TotalCost()).To(Equal(int64(2)))
	})

	It("should give each clone its own visited sequence", func() {
		pkt := inFlight(0, 4, 0)

		deliveries := f.Forward(pkt, []sim.NodeID{1, 2})

		deliveries[0].Pkt.RecordVisit(1)
		Expect(deliveries[1].Pkt.Visited).To(Equal([]sim.NodeID{0}))
	})

	It("should suppress re-deliveries of a seen message", func() {
		first := f.Forward(inFlight(0, 4, 0), []sim.NodeID{1, 2})
		second := f.Forward(inFlight(0, 4, 0), []sim.NodeID{1, 2})

		Expect(first).To(HaveLen(2))
		Expect(second).To(BeEmpty())
		Expect(f.Seen(0)).To(BeTrue())
	})

	It("should forward nothing when all neighbors are visited", func() {
		pkt := inFlight(0, 4, 0)
		pkt.RecordVisit(1)

		deliveries := f.Forward(pkt, []sim.NodeID{0, 1})

		Expect(deliveries).To(BeEmpty())
	})
})

var _ = Describe("LoopFlood", func() {
	It("should keep forwarding a message it has handled before", func() {
		f := &LoopFlood{self: 0}

		first := f.Forward(inFlight(0, 4, 0), []sim.NodeID{1, 2})
		second := f.Forward(inFlight(0, 4, 0), []sim.NodeID{1, 2})

		Expect(first).To(HaveLen(2))
		Expect(second).To(HaveLen(2))
	})

	It("should still skip nodes on the packet's own path", func() {
		f := &LoopFlood{self: 0}

		pkt := inFlight(0, 4, 0)
		pkt.RecordVisit(2)

		deliveries := f.Forward(pkt, []sim.NodeID{0, 1, 2})

		Expect(deliveries).To(HaveLen(1))
		Expect(deliveries[0].To).To(Equal(sim.NodeID(1)))
	})
})

var _ = Describe("Random", func() {
	It("should forward nothing without neighbors", func() {
		r := &Random{self: 0, rng: rand.New(rand.NewSource(1))}

		Expect(r.Forward(inFlight(0, 4, 0), nil)).To(BeEmpty())
	})

	It("should forward exactly one copy and charge one hop", func() {
		r := &Random{self: 0, rng: rand.New(rand.NewSource(1))}
		pkt := inFlight(0, 4, 0)

		deliveries := r.Forward(pkt, []sim.NodeID{1, 2, 3})

		Expect(deliveries).To(HaveLen(1))
		Expect([]sim.NodeID{1, 2, 3}).To(ContainElement(deliveries[0].To))
		Expect(deliveries[0].Pkt).To(BeIdenticalTo(pkt))
		Expect(pkt.Msg.TotalCost()).To(Equal(int64(1)))
	})
})
