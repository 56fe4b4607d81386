package sim

// A Packet is the unit actually moved between nodes. It wraps a shared
// Message and records the path traversed so far. When a forwarding algorithm
// fans out to more than one neighbor, the packet is cloned; each clone owns
// its Visited sequence but all clones point at the same Message, so cost and
// delivery updates are visible across the whole lineage.
type Packet struct {
	Msg     *Message
	Visited []NodeID

	// TTL is the remaining hop budget. Zero disables TTL enforcement; the
	// exact semantics belong to the forwarding algorithm.
	TTL int
}

// NewPacket wraps a message in a fresh packet with the given hop budget.
func NewPacket(msg *Message, ttl int) *Packet {
	return &Packet{Msg: msg, TTL: ttl}
}

// Clone makes a copy of the packet with its own Visited sequence. The
// underlying message stays shared.
func (p *Packet) Clone() *Packet {
	visited := make([]NodeID, len(p.Visited))
	copy(visited, p.Visited)

	return &Packet{
		Msg:     p.Msg,
		Visited: visited,
		TTL:     p.TTL,
	}
}

// HasVisited reports whether the packet has already traversed the node.
func (p *Packet) HasVisited(id NodeID) bool {
	for _, v := range p.Visited {
		if v == id {
			return true
		}
	}

	return false
}

// RecordVisit appends the node to the packet's traversal history.
func (p *Packet) RecordVisit(id NodeID) {
	p.Visited = append(p.Visited, id)
}

// A Delivery is a packet queued in an outbox together with the neighbor it
// is addressed to. The simulator moves it into the neighbor's inbox at the
// end of the tick.
type Delivery struct {
	Pkt *Packet
	To  NodeID
}
