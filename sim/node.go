package sim

import (
	"fmt"
	"log"
)

// A Forwarder decides, for one packet at one node, which neighbors receive a
// copy of the packet. Implementations are data-only strategy values; a node
// holds a forwarder value rather than a subclass identity, so each variant
// can be composed and tested in isolation.
type Forwarder interface {
	// Forward inspects a packet and the node's current neighbors and
	// returns the deliveries to queue. It may return nothing, which
	// terminates the packet at this node.
	Forward(pkt *Packet, neighbors []NodeID) []Delivery

	// LoopFree reports whether the algorithm guarantees that a packet
	// never revisits a node. The node asserts on arriving packets under
	// loop-free algorithms.
	LoopFree() bool
}

// A Node receives packets in its inbox, runs each of them through its
// forwarding algorithm, and queues the resulting deliveries in its outbox.
// Nodes are created once at simulator construction and live for the whole
// run.
type Node struct {
	id        NodeID
	forwarder Forwarder

	Inbox  Buffer
	Outbox Buffer

	occupancySum int64
	steps        int64
}

// NewNode creates a node with the given ID and forwarding algorithm.
func NewNode(id NodeID, forwarder Forwarder) *Node {
	name := fmt.Sprintf("Node%d", id)

	return &Node{
		id:        id,
		forwarder: forwarder,
		Inbox:     NewBuffer(name + ".Inbox"),
		Outbox:    NewBuffer(name + ".Outbox"),
	}
}

// ID returns the node's identity.
func (n *Node) ID() NodeID {
	return n.id
}

// Name returns the name of the node.
func (n *Node) Name() string {
	return fmt.Sprintf("Node%d", n.id)
}

// Forwarder returns the forwarding algorithm the node runs.
func (n *Node) Forwarder() Forwarder {
	return n.forwarder
}

// HandlePacket processes one packet from the inbox. It records the visit,
// delivers the message if this node is the destination, and otherwise lets
// the forwarding algorithm pick the neighbors to copy the packet to. The
// returned count is the number of deliveries queued in the outbox.
func (n *Node) HandlePacket(
	pkt *Packet,
	topo NeighborLister,
) (forwards int, delivered bool) {
	if n.forwarder.LoopFree() && pkt.HasVisited(n.id) {
		log.Panicf(
			"node %d: message %d looped back under a loop-free algorithm",
			n.id, pkt.Msg.ID)
	}

	pkt.RecordVisit(n.id)

	if pkt.Msg.Destination == n.id {
		pkt.Msg.MarkDelivered()
		return 0, true
	}

	deliveries := n.forwarder.Forward(pkt, topo.Neighbors(n.id))
	for _, d := range deliveries {
		n.Outbox.Push(d)
	}

	return len(deliveries), false
}

// DrainInbox runs every packet currently in the inbox through HandlePacket
// and clears the inbox. It also accumulates the occupancy statistics and the
// per-message packet tally.
func (n *Node) DrainInbox(topo NeighborLister) {
	n.occupancySum += int64(n.Inbox.Size())
	n.steps++

	for {
		e := n.Inbox.Pop()
		if e == nil {
			break
		}

		pkt := e.(*Packet)
		pkt.Msg.CountPacket()
		n.HandlePacket(pkt, topo)
	}
}

// AvgInboxOccupancy returns the mean number of packets found in the inbox at
// the start of each tick processed so far.
func (n *Node) AvgInboxOccupancy() float64 {
	if n.steps == 0 {
		return 0
	}

	return float64(n.occupancySum) / float64(n.steps)
}
