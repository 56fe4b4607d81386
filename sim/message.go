package sim

import "sync/atomic"

// A Message is the logical payload being routed from an origin node to a
// destination node. The message itself carries no application data, only
// routing identity and the cost metrics accumulated in transit.
//
// One Message is shared by every in-flight Packet clone that carries it, so
// the mutable fields use atomic operations. Multiple nodes may process clones
// of the same message within one tick when the drain phase runs in parallel.
type Message struct {
	ID          int
	Origin      NodeID
	Destination NodeID

	totalCost   atomic.Int64
	packetCount atomic.Int64
	delivered   atomic.Bool
}

// NewMessage creates a message that needs to travel from origin to
// destination. Origin and destination may be equal.
func NewMessage(id int, origin, destination NodeID) *Message {
	return &Message{
		ID:          id,
		Origin:      origin,
		Destination: destination,
	}
}

// AddCost adds n hops to the cumulative cost of delivering the message.
func (m *Message) AddCost(n int64) {
	m.totalCost.Add(n)
}

// TotalCost returns the cumulative number of hops spent on the message so
// far. The value never decreases.
func (m *Message) TotalCost() int64 {
	return m.totalCost.Load()
}

// CountPacket tallies one processed packet copy of the message.
func (m *Message) CountPacket() {
	m.packetCount.Add(1)
}

// PacketCount returns the number of packet copies processed for the message.
func (m *Message) PacketCount() int64 {
	return m.packetCount.Load()
}

// MarkDelivered records that a packet carrying the message reached the
// destination. The transition happens at most once; later calls are no-ops.
func (m *Message) MarkDelivered() {
	m.delivered.Store(true)
}

// Delivered reports whether the message has reached its destination.
func (m *Message) Delivered() bool {
	return m.delivered.Load()
}
