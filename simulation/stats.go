package simulation

import (
	"fmt"
	"io"
)

// InboxStats summarizes per-node inbox occupancy over a run: the mean number
// of packets found in an inbox per tick, averaged across nodes, plus the
// lowest and highest per-node means.
type InboxStats struct {
	Avg float64
	Min float64
	Max float64
}

// WorkloadStats aggregates the delivery and cost metrics of one workload.
type WorkloadStats struct {
	TotalCost         int64
	CostPerMessage    float64
	FractionDelivered float64
	Inbox             InboxStats
	PacketsPerMessage float64
}

// ComputeWorkloadStats computes the statistics of the current workload. It
// reads the accumulated counters without advancing the simulation, so
// calling it repeatedly yields identical results.
func (s *Simulator) ComputeWorkloadStats() WorkloadStats {
	numMessages := s.wl.NumMessages()

	stats := WorkloadStats{
		TotalCost: s.computeWorkloadCost(),
		Inbox:     s.computeInboxStats(),
	}

	if numMessages > 0 {
		stats.CostPerMessage =
			float64(stats.TotalCost) / float64(numMessages)
		stats.FractionDelivered =
			float64(s.wl.NumDelivered()) / float64(numMessages)
		stats.PacketsPerMessage = s.computePacketsPerMessage()
	}

	return stats
}

func (s *Simulator) computeWorkloadCost() int64 {
	var cost int64
	for _, msg := range s.wl.Messages {
		cost += msg.TotalCost()
	}

	return cost
}

func (s *Simulator) computePacketsPerMessage() float64 {
	var packets int64
	for _, msg := range s.wl.Messages {
		packets += msg.PacketCount()
	}

	return float64(packets) / float64(s.wl.NumMessages())
}

func (s *Simulator) computeInboxStats() InboxStats {
	stats := InboxStats{}

	for i, node := range s.nodes {
		occupancy := node.AvgInboxOccupancy()

		stats.Avg += occupancy
		if i == 0 || occupancy < stats.Min {
			stats.Min = occupancy
		}
		if occupancy > stats.Max {
			stats.Max = occupancy
		}
	}

	if len(s.nodes) > 0 {
		stats.Avg /= float64(len(s.nodes))
	}

	return stats
}

// Fprint writes the statistics block in the shape the CLI reports.
func (ws WorkloadStats) Fprint(w io.Writer, verbose bool) {
	fmt.Fprintf(w, "Total cost: %d\n", ws.TotalCost)
	fmt.Fprintf(w, "Cost per message: %g\n", ws.CostPerMessage)
	fmt.Fprintf(w, "Fraction delivered: %g\n", ws.FractionDelivered)

	if verbose {
		fmt.Fprintf(w, "Average number of packets across nodes: %g\n",
			ws.Inbox.Avg)
		fmt.Fprintf(w, "Minimum number of packets across nodes: %g\n",
			ws.Inbox.Min)
		fmt.Fprintf(w, "Peak number of packets across nodes: %g\n",
			ws.Inbox.Max)
		fmt.Fprintf(w, "Average number of packets per message: %g\n",
			ws.PacketsPerMessage)
	}

	fmt.Fprintln(w, "-------------------------")
}
