package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Packet", func() {
	It("should clone with an independent visited sequence", func() {
		msg := NewMessage(0, 0, 3)
		pkt := NewPacket(msg, 4)
		pkt.RecordVisit(0)
		pkt.RecordVisit(1)

		clone := pkt.Clone()
		clone.RecordVisit(2)

		Expect(pkt.Visited).To(Equal([]NodeID{0, 1}))
		Expect(clone.Visited).To(Equal([]NodeID{0, 1, 2}))
		Expect(clone.TTL).To(Equal(4))
	})

	It("should share the message across clones", func() {
		msg := NewMessage(0, 0, 3)
		pkt := NewPacket(msg, 0)
		clone := pkt.Clone()

		clone.Msg.AddCost(2)
		clone.Msg.MarkDelivered()

		Expect(pkt.Msg.TotalCost()).To(Equal(int64(2)))
		Expect(pkt.Msg.Delivered()).To(BeTrue())
	})

	It("should report visited nodes", func() {
		pkt := NewPacket(NewMessage(0, 0, 3), 0)
		pkt.RecordVisit(2)

		Expect(pkt.HasVisited(2)).To(BeTrue())
		Expect(pkt.HasVisited(1)).To(BeFalse())
	})
})

var _ = Describe("Buffer", func() {
	It("should pop in FIFO order", func() {
		buf := NewBuffer("Buf")
		buf.Push(1)
		buf.Push(2)

		Expect(buf.Size()).To(Equal(2))
		Expect(buf.Pop()).To(Equal(1))
		Expect(buf.Peek()).To(Equal(2))
		Expect(buf.Pop()).To(Equal(2))
		Expect(buf.Pop()).To(BeNil())
	})

	It("should clear", func() {
		buf := NewBuffer("Buf")
		buf.Push(1)
		buf.Clear()

		Expect(buf.Size()).To(Equal(0))
	})

	It("should invoke hooks on push and pop", func() {
		buf := NewBuffer("Buf")
		hook := &positionRecordingHook{}
		buf.AcceptHook(hook)

		buf.Push(1)
		buf.Pop()

		Expect(hook.positions).To(Equal([]*HookPos{
			HookPosBufPush,
			HookPosBufPop,
		}))
	})
})

type positionRecordingHook struct {
	positions []*HookPos
}

func (h *positionRecordingHook) Func(ctx HookCtx) {
	h.positions = append(h.positions, ctx.Pos)
}
