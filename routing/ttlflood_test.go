package routing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Ramundoness/DynaRoute/sim"
)

var _ = Describe("TTLFlood", func() {
	var f *TTLFlood

	BeforeEach(func() {
		f = &TTLFlood{flood: Flood{self: 0, seen: map[int]bool{}}}
	})

	It("should drop a packet whose budget runs out", func() {
		pkt := inFlight(0, 4, 1)

		deliveries := f.Forward(pkt, []sim.NodeID{1, 2})

		Expect(deliveries).To(BeEmpty())
		Expect(pkt.TTL).To(Equal(0))
		Expect(pkt.Msg.TotalCost()).To(Equal(int64(0)))
	})

	It("should flood with the remaining budget", func() {
		pkt := inFlight(0, 4, 3)

		deliveries := f.Forward(pkt, []sim.NodeID{1, 2})

		Expect(deliveries).To(HaveLen(2))
		Expect(deliveries[0].Pkt.TTL).To(Equal(2))
	})

	It("should never drop packets without a budget", func() {
		pkt := inFlight(0, 4, 0)

		deliveries := f.Forward(pkt, []sim.NodeID{1, 2})

		Expect(deliveries).To(HaveLen(2))
		Expect(pkt.TTL).To(Equal(0))
	})

	It("should suppress re-deliveries like a plain flood", func() {
		first := f.Forward(inFlight(0, 4, 3), []sim.NodeID{1})
		second := f.Forward(inFlight(0, 4, 3), []sim.NodeID{1})

		Expect(first).To(HaveLen(1))
		Expect(second).To(BeEmpty())
	})
})
