// Package analysis records per-tick and per-run metrics of a simulation into
// a data recorder.
package analysis

import (
	"github.com/Ramundoness/DynaRoute/datarecording"
	"github.com/Ramundoness/DynaRoute/sim"
	"github.com/Ramundoness/DynaRoute/simulation"
)

// inboxTable is the table that holds one occupancy sample per node per tick.
const inboxTable = "inbox_occupancy"

// An InboxSample is one per-node, per-tick inbox occupancy record. The
// sample is taken at the start of the tick, before the node drains its
// inbox.
type InboxSample struct {
	Tick     int64
	Node     int
	InboxLen int
}

// An InboxAnalyzer periodically records the inbox occupancy of every node.
// It hooks into the simulator's tick loop; unbounded inbox growth under high
// fan-out shows up in this table rather than being prevented.
type InboxAnalyzer struct {
	recorder datarecording.DataRecorder
}

// Func samples all the inboxes when a tick starts.
func (a *InboxAnalyzer) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosTickStart {
		return
	}

	tick := ctx.Item.(int64)
	s := ctx.Domain.(*simulation.Simulator)

	for _, node := range s.Nodes() {
		a.recorder.InsertData(inboxTable, InboxSample{
			Tick:     tick,
			Node:     int(node.ID()),
			InboxLen: node.Inbox.Size(),
		})
	}
}

// InboxAnalyzerBuilder can build an InboxAnalyzer.
type InboxAnalyzerBuilder struct {
	recorder datarecording.DataRecorder
}

// MakeInboxAnalyzerBuilder creates an InboxAnalyzerBuilder.
func MakeInboxAnalyzerBuilder() InboxAnalyzerBuilder {
	return InboxAnalyzerBuilder{}
}

// WithRecorder sets the recorder the samples are written into.
func (b InboxAnalyzerBuilder) WithRecorder(
	r datarecording.DataRecorder,
) InboxAnalyzerBuilder {
	b.recorder = r
	return b
}

// Build creates the analyzer and registers it with the simulator.
func (b InboxAnalyzerBuilder) Build(s *simulation.Simulator) *InboxAnalyzer {
	if b.recorder == nil {
		panic("inbox analyzer needs a data recorder")
	}

	a := &InboxAnalyzer{recorder: b.recorder}
	b.recorder.CreateTable(inboxTable, InboxSample{})
	s.AcceptHook(a)

	return a
}
