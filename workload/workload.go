// Package workload generates the set of messages a simulation run must
// deliver.
package workload

import (
	"math/rand"

	"github.com/Ramundoness/DynaRoute/sim"
)

// A Workload is the ordered set of messages to be routed plus the default
// hop budget for the run. It is immutable after generation, apart from the
// cost and delivery fields the messages accumulate in transit.
type Workload struct {
	Messages []*sim.Message

	// TTL is the hop budget assigned to every packet that wraps a message
	// of this workload.
	TTL int
}

// NumMessages returns the number of messages in the workload.
func (w *Workload) NumMessages() int {
	return len(w.Messages)
}

// NumDelivered returns the number of messages that have reached their
// destination so far.
func (w *Workload) NumDelivered() int {
	delivered := 0
	for _, msg := range w.Messages {
		if msg.Delivered() {
			delivered++
		}
	}

	return delivered
}

// A Builder builds workloads.
type Builder struct {
	numMessages int
	numNodes    int
	ttl         int
	rng         *rand.Rand
}

// MakeBuilder creates a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		numMessages: 1,
		numNodes:    2,
	}
}

// WithNumMessages sets the number of messages to generate.
func (b Builder) WithNumMessages(n int) Builder {
	b.numMessages = n
	return b
}

// WithNumNodes sets the number of nodes origins and destinations are drawn
// from.
func (b Builder) WithNumNodes(n int) Builder {
	b.numNodes = n
	return b
}

// WithTTL overrides the default hop budget. Without it, the budget is the
// node count.
func (b Builder) WithTTL(ttl int) Builder {
	b.ttl = ttl
	return b
}

// WithRand sets the random source used for generation.
func (b Builder) WithRand(rng *rand.Rand) Builder {
	b.rng = rng
	return b
}

// Build generates the messages. Origins and destinations are uniformly
// random node IDs; a destination may equal its origin, which is allowed and
// not special-cased.
func (b Builder) Build() *Workload {
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	ttl := b.ttl
	if ttl == 0 {
		ttl = b.numNodes
	}

	w := &Workload{TTL: ttl}
	for i := 0; i < b.numMessages; i++ {
		w.Messages = append(w.Messages, sim.NewMessage(
			i,
			sim.NodeID(b.rng.Intn(b.numNodes)),
			sim.NodeID(b.rng.Intn(b.numNodes)),
		))
	}

	return w
}
