package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type fixedTopology struct {
	matrix AdjacencyMatrix
}

func (t fixedTopology) Neighbors(id NodeID) []NodeID {
	return t.matrix.Neighbors(id)
}

func lineTopology(n int) fixedTopology {
	m := NewAdjacencyMatrix(n)
	for i := 0; i < n; i++ {
		m[i][i] = true
		if i+1 < n {
			m[i][i+1] = true
			m[i+1][i] = true
		}
	}

	return fixedTopology{matrix: m}
}

var _ = Describe("Node", func() {
	var (
		mockCtrl  *gomock.Controller
		forwarder *MockForwarder
		node      *Node
		topo      fixedTopology
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		forwarder = NewMockForwarder(mockCtrl)
		node = NewNode(1, forwarder)
		topo = lineTopology(3)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should deliver a packet addressed to itself", func() {
		forwarder.EXPECT().LoopFree().Return(true)

		msg := NewMessage(0, 0, 1)
		pkt := NewPacket(msg, 0)

		forwards, delivered := node.HandlePacket(pkt, topo)

		Expect(delivered).To(BeTrue())
		Expect(forwards).To(Equal(0))
		Expect(msg.Delivered()).To(BeTrue())
		Expect(pkt.Visited).To(Equal([]NodeID{1}))
		Expect(node.Outbox.Size()).To(Equal(0))
	})

	It("should queue the forwarder's deliveries in the outbox", func() {
		msg := NewMessage(0, 0, 2)
		pkt := NewPacket(msg, 0)

		forwarder.EXPECT().LoopFree().Return(true)
		forwarder.EXPECT().
			Forward(pkt, []NodeID{0, 1, 2}).
			Return([]Delivery{
				{Pkt: pkt.Clone(), To: 0},
				{Pkt: pkt.Clone(), To: 2},
			})

		forwards, delivered := node.HandlePacket(pkt, topo)

		Expect(delivered).To(BeFalse())
		Expect(forwards).To(Equal(2))
		Expect(node.Outbox.Size()).To(Equal(2))
		Expect(pkt.Visited).To(Equal([]NodeID{1}))
	})

	It("should panic when a packet loops back under a loop-free algorithm",
		func() {
			forwarder.EXPECT().LoopFree().Return(true)

			msg := NewMessage(0, 0, 2)
			pkt := NewPacket(msg, 0)
			pkt.Visited = []NodeID{0, 1}

			Expect(func() {
				node.HandlePacket(pkt, topo)
			}).To(Panic())
		})

	It("should tolerate revisits under a loop-permitting algorithm", func() {
		msg := NewMessage(0, 0, 2)
		pkt := NewPacket(msg, 0)
		pkt.Visited = []NodeID{1, 0}

		forwarder.EXPECT().LoopFree().Return(false)
		forwarder.EXPECT().
			Forward(pkt, gomock.Any()).
			Return(nil)

		forwards, delivered := node.HandlePacket(pkt, topo)

		Expect(delivered).To(BeFalse())
		Expect(forwards).To(Equal(0))
		Expect(pkt.Visited).To(Equal([]NodeID{1, 0, 1}))
	})

	It("should drain the whole inbox and account occupancy", func() {
		msg := NewMessage(0, 0, 2)
		node.Inbox.Push(NewPacket(msg, 0))
		node.Inbox.Push(NewPacket(msg, 0))

		forwarder.EXPECT().LoopFree().Return(true).Times(2)
		forwarder.EXPECT().
			Forward(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		node.DrainInbox(topo)

		Expect(node.Inbox.Size()).To(Equal(0))
		Expect(node.AvgInboxOccupancy()).To(Equal(2.0))
		Expect(msg.PacketCount()).To(Equal(int64(2)))

		node.DrainInbox(topo)
		Expect(node.AvgInboxOccupancy()).To(Equal(1.0))
	})
})
