// Package routing provides the forwarding algorithms that decide, at each
// node and tick, which neighbors receive a copy of an in-flight packet.
package routing

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/Ramundoness/DynaRoute/sim"
)

// algorithms maps the algorithm names accepted on the command line to
// constructors. Registration happens at init time; lookup of an unknown name
// fails before a simulation starts.
var algorithms = map[string]func(b Builder, self sim.NodeID) sim.Forwarder{
	"random": func(b Builder, self sim.NodeID) sim.Forwarder {
		return &Random{self: self, rng: b.nodeRand(self)}
	},
	"flood": func(b Builder, self sim.NodeID) sim.Forwarder {
		return &Flood{self: self, seen: map[int]bool{}}
	},
	"ttl-flood": func(b Builder, self sim.NodeID) sim.Forwarder {
		return &TTLFlood{flood: Flood{self: self, seen: map[int]bool{}}}
	},
	"early-split": func(b Builder, self sim.NodeID) sim.Forwarder {
		return &EarlySplitFlood{splitFlood: b.splitFlood(self)}
	},
	"late-split": func(b Builder, self sim.NodeID) sim.Forwarder {
		return &LateSplitFlood{splitFlood: b.splitFlood(self)}
	},
	"loop-flood": func(b Builder, self sim.NodeID) sim.Forwarder {
		return &LoopFlood{self: self}
	},
}

// Algorithms lists the registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// A Builder builds forwarder values for the nodes of one simulation run.
type Builder struct {
	algorithm     string
	totalMessages int
	seed          int64
}

// MakeBuilder creates a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		algorithm:     "flood",
		totalMessages: 1,
	}
}

// WithAlgorithm sets the algorithm to build forwarders for.
func (b Builder) WithAlgorithm(name string) Builder {
	b.algorithm = name
	return b
}

// WithTotalMessages sets the workload size; the split-flood variants scale
// their fan-out threshold by it.
func (b Builder) WithTotalMessages(n int) Builder {
	b.totalMessages = n
	return b
}

// WithSeed sets the seed that per-node random sources derive from.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	return b
}

// Validate returns an error if the configured algorithm name is unknown.
func (b Builder) Validate() error {
	if _, ok := algorithms[b.algorithm]; !ok {
		return fmt.Errorf(
			"unknown forwarding algorithm %q, available: %v",
			b.algorithm, Algorithms())
	}

	return nil
}

// Build creates the forwarder for one node. It panics if the algorithm name
// is unknown; call Validate first when the name comes from user input.
func (b Builder) Build(self sim.NodeID) sim.Forwarder {
	construct, ok := algorithms[b.algorithm]
	if !ok {
		panic("unknown forwarding algorithm " + b.algorithm)
	}

	return construct(b, self)
}

// nodeRand derives an independent random source for one node, so that the
// parallel drain path never shares a source across goroutines.
func (b Builder) nodeRand(self sim.NodeID) *rand.Rand {
	return rand.New(rand.NewSource(b.seed + int64(self)*0x9E3779B9))
}

func (b Builder) splitFlood(self sim.NodeID) splitFlood {
	total := b.totalMessages
	if total < 1 {
		total = 1
	}

	return splitFlood{
		self:          self,
		seen:          map[int]bool{},
		rng:           b.nodeRand(self),
		totalMessages: total,
	}
}
