package analysis

import (
	"github.com/Ramundoness/DynaRoute/datarecording"
	"github.com/Ramundoness/DynaRoute/simulation"
)

const (
	messageTable = "message_outcomes"
	summaryTable = "run_summary"
)

// A MessageOutcome is the final record of one message after a run.
type MessageOutcome struct {
	RunID       string
	MsgID       int
	Origin      int
	Destination int
	Cost        int64
	Packets     int64
	Delivered   bool
}

// A RunSummary is the one-row aggregate of a whole run.
type RunSummary struct {
	RunID             string
	Algorithm         string
	Topology          string
	NumNodes          int
	NumMessages       int
	Steps             int64
	TotalCost         int64
	CostPerMessage    float64
	FractionDelivered float64
	PacketsPerMessage float64
}

// A RunLogger writes the per-message outcomes and the run summary into the
// data recorder when the simulation finishes. Register it as a simulation
// end handler.
type RunLogger struct {
	recorder  datarecording.DataRecorder
	sim       *simulation.Simulator
	runID     string
	algorithm string
	topology  string
}

// Handle writes one row per message plus the summary row, then flushes.
func (l *RunLogger) Handle(tick int64) {
	for _, msg := range l.sim.Workload().Messages {
		l.recorder.InsertData(messageTable, MessageOutcome{
			RunID:       l.runID,
			MsgID:       msg.ID,
			Origin:      int(msg.Origin),
			Destination: int(msg.Destination),
			Cost:        msg.TotalCost(),
			Packets:     msg.PacketCount(),
			Delivered:   msg.Delivered(),
		})
	}

	stats := l.sim.ComputeWorkloadStats()
	l.recorder.InsertData(summaryTable, RunSummary{
		RunID:             l.runID,
		Algorithm:         l.algorithm,
		Topology:          l.topology,
		NumNodes:          len(l.sim.Nodes()),
		NumMessages:       l.sim.Workload().NumMessages(),
		Steps:             tick,
		TotalCost:         stats.TotalCost,
		CostPerMessage:    stats.CostPerMessage,
		FractionDelivered: stats.FractionDelivered,
		PacketsPerMessage: stats.PacketsPerMessage,
	})

	l.recorder.Flush()
}

// RunLoggerBuilder can build a RunLogger.
type RunLoggerBuilder struct {
	recorder  datarecording.DataRecorder
	runID     string
	algorithm string
	topology  string
}

// MakeRunLoggerBuilder creates a RunLoggerBuilder.
func MakeRunLoggerBuilder() RunLoggerBuilder {
	return RunLoggerBuilder{}
}

// WithRecorder sets the recorder the outcomes are written into.
func (b RunLoggerBuilder) WithRecorder(
	r datarecording.DataRecorder,
) RunLoggerBuilder {
	b.recorder = r
	return b
}

// WithRunID tags every row with the run's ID.
func (b RunLoggerBuilder) WithRunID(id string) RunLoggerBuilder {
	b.runID = id
	return b
}

// WithAlgorithm records the forwarding algorithm name in the summary.
func (b RunLoggerBuilder) WithAlgorithm(name string) RunLoggerBuilder {
	b.algorithm = name
	return b
}

// WithTopology records the topology kind in the summary.
func (b RunLoggerBuilder) WithTopology(kind string) RunLoggerBuilder {
	b.topology = kind
	return b
}

// Build creates the logger and registers it with the simulator.
func (b RunLoggerBuilder) Build(s *simulation.Simulator) *RunLogger {
	if b.recorder == nil {
		panic("run logger needs a data recorder")
	}

	l := &RunLogger{
		recorder:  b.recorder,
		sim:       s,
		runID:     b.runID,
		algorithm: b.algorithm,
		topology:  b.topology,
	}

	b.recorder.CreateTable(messageTable, MessageOutcome{})
	b.recorder.CreateTable(summaryTable, RunSummary{})
	s.RegisterSimulationEndHandler(l)

	return l
}
