// Package simulation orchestrates the synchronous tick loop that advances
// every node and the topology in lockstep.
package simulation

import (
	"sync"
	"sync/atomic"

	"github.com/Ramundoness/DynaRoute/sim"
	"github.com/Ramundoness/DynaRoute/topology"
	"github.com/Ramundoness/DynaRoute/workload"
)

// A SimulationEndHandler is a handler that is called after the simulation
// ends.
type SimulationEndHandler interface {
	Handle(tick int64)
}

// A Simulator owns the nodes, the topology, and the current workload, and
// advances them tick by tick.
//
// Each tick has two phases. Phase one drains every node's inbox through its
// forwarding algorithm into its outbox. Phase two, which starts only after
// every node has finished phase one, flushes all outboxes into the addressed
// nodes' inboxes for the next tick. The barrier between the phases is what
// makes propagation speed bounded by hop count and the outcome independent
// of the order nodes are iterated in within a tick.
type Simulator struct {
	sim.HookableBase

	nodes    []*sim.Node
	topo     topology.Topology
	wl       *workload.Workload
	parallel bool

	tick     atomic.Int64
	maxSteps atomic.Int64

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	endHandlers []SimulationEndHandler
}

// Nodes returns the nodes of the network.
func (s *Simulator) Nodes() []*sim.Node {
	return s.nodes
}

// Topology returns the topology the simulator owns.
func (s *Simulator) Topology() topology.Topology {
	return s.topo
}

// Workload returns the workload being routed, if one is initialized.
func (s *Simulator) Workload() *workload.Workload {
	return s.wl
}

// CurrentTick returns the number of completed ticks.
func (s *Simulator) CurrentTick() int64 {
	return s.tick.Load()
}

// MaxSteps returns the tick budget of the current run.
func (s *Simulator) MaxSteps() int64 {
	return s.maxSteps.Load()
}

// InitializeWorkload wraps every message of the workload in a fresh packet
// carrying the workload's TTL and places it in its origin node's inbox.
func (s *Simulator) InitializeWorkload(w *workload.Workload) {
	s.wl = w

	for _, msg := range w.Messages {
		pkt := sim.NewPacket(msg, w.TTL)
		s.nodes[msg.Origin].Inbox.Push(pkt)
	}
}

// RunOneStep advances the network by one tick: drain all inboxes, then, only
// after every node has finished, flush all outboxes into the addressed
// inboxes. A packet forwarded during tick T is therefore not visible to its
// recipient until tick T+1.
func (s *Simulator) RunOneStep() {
	tick := s.tick.Load()

	if s.NumHooks() > 0 {
		s.InvokeHook(sim.HookCtx{
			Domain: s,
			Pos:    sim.HookPosTickStart,
			Item:   tick,
		})
	}

	if s.parallel {
		s.drainAllInboxesParallel()
	} else {
		s.drainAllInboxes()
	}

	for _, node := range s.nodes {
		s.flushOutbox(node)
	}

	s.tick.Add(1)

	if s.NumHooks() > 0 {
		s.InvokeHook(sim.HookCtx{
			Domain: s,
			Pos:    sim.HookPosTickEnd,
			Item:   tick,
		})
	}
}

func (s *Simulator) drainAllInboxes() {
	for _, node := range s.nodes {
		node.DrainInbox(s.topo)
	}
}

// drainAllInboxesParallel fans the drain phase out across nodes. Nodes only
// mutate their own inbox, outbox, and forwarder state; the shared per-message
// counters are atomic.
func (s *Simulator) drainAllInboxesParallel() {
	var wg sync.WaitGroup

	for _, node := range s.nodes {
		wg.Add(1)
		go func(n *sim.Node) {
			defer wg.Done()
			n.DrainInbox(s.topo)
		}(node)
	}

	wg.Wait()
}

func (s *Simulator) flushOutbox(node *sim.Node) {
	for {
		e := node.Outbox.Pop()
		if e == nil {
			return
		}

		d := e.(sim.Delivery)
		s.nodes[d.To].Inbox.Push(d.Pkt)
	}
}

// Run advances the simulation for maxSteps ticks. The topology steps after
// the routing step of the same tick, so a forwarding decision always sees
// the topology that was current when the tick began.
func (s *Simulator) Run(maxSteps int) error {
	s.maxSteps.Store(int64(maxSteps))

	for i := 0; i < maxSteps; i++ {
		s.pauseLock.Lock()
		s.RunOneStep()
		s.topo.Step()
		s.pauseLock.Unlock()
	}

	return nil
}

// Pause prevents the simulator from starting more ticks.
func (s *Simulator) Pause() {
	s.isPausedLock.Lock()
	defer s.isPausedLock.Unlock()

	if s.isPaused {
		return
	}

	s.pauseLock.Lock()
	s.isPaused = true
}

// Continue allows a paused simulator to run again.
func (s *Simulator) Continue() {
	s.isPausedLock.Lock()
	defer s.isPausedLock.Unlock()

	if !s.isPaused {
		return
	}

	s.pauseLock.Unlock()
	s.isPaused = false
}

// RegisterSimulationEndHandler registers a handler that performs some
// actions after the simulation is finished.
func (s *Simulator) RegisterSimulationEndHandler(h SimulationEndHandler) {
	s.endHandlers = append(s.endHandlers, h)
}

// Finished should be called after the simulation ends. It invokes all the
// registered SimulationEndHandlers.
func (s *Simulator) Finished() {
	tick := s.tick.Load()
	for _, h := range s.endHandlers {
		h.Handle(tick)
	}
}
