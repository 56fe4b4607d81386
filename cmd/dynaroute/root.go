package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/xid"
	"github.com/spf13/cobra"

	"github.com/Ramundoness/DynaRoute/analysis"
	"github.com/Ramundoness/DynaRoute/datarecording"
	"github.com/Ramundoness/DynaRoute/monitoring"
	"github.com/Ramundoness/DynaRoute/routing"
	"github.com/Ramundoness/DynaRoute/simulation"
	"github.com/Ramundoness/DynaRoute/topology"
	"github.com/Ramundoness/DynaRoute/workload"
)

var rootCmd = &cobra.Command{
	Use: "dynaroute",
	Short: "DynaRoute simulates message flooding over networks with " +
		"changing topology.",
	Long: `DynaRoute runs a tick-synchronous simulation of message ` +
		`propagation over a network whose connectivity changes every tick, ` +
		`and reports the cost and delivery rate of the chosen forwarding ` +
		`algorithm.`,
	RunE:          runSimulation,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// A .env file can pre-set any DYNAROUTE_* flag default. A missing
	// file is fine.
	_ = godotenv.Load()

	flags := rootCmd.Flags()
	flags.Int("nodes", envInt("DYNAROUTE_NODES", 50),
		"number of nodes in the network")
	flags.Int("messages", envInt("DYNAROUTE_MESSAGES", 100),
		"number of messages in the workload")
	flags.Int("steps", envInt("DYNAROUTE_STEPS", 100),
		"number of ticks to run")
	flags.Int("ttl", envInt("DYNAROUTE_TTL", 0),
		"per-packet hop budget, defaults to the node count")
	flags.Float64("density", envFloat("DYNAROUTE_DENSITY", 0.1),
		"target connectivity in [0,1]")
	flags.Float64("volatility", envFloat("DYNAROUTE_VOLATILITY", 0.1),
		"per-tick connectivity churn in [0,1]")
	flags.String("topology", envString("DYNAROUTE_TOPOLOGY", "random"),
		fmt.Sprintf("topology strategy, one of %v", topology.Kinds()))
	flags.String("algorithm", envString("DYNAROUTE_ALGORITHM", "flood"),
		fmt.Sprintf("forwarding algorithm, one of %v", routing.Algorithms()))
	flags.Int64("seed", 0,
		"random seed, 0 picks one from the clock")
	flags.Bool("parallel", false,
		"drain node inboxes in parallel")
	flags.Bool("record", false,
		"record per-tick and per-message results into a SQLite database")
	flags.String("output", "",
		"output database name, defaults to dynaroute_<run id>")
	flags.Bool("monitor", false,
		"serve the live monitoring dashboard")
	flags.Int("monitor-port", 0,
		"port for the monitoring server, 0 picks a free one")
	flags.Bool("open", false,
		"open the monitoring dashboard in the browser")
	flags.BoolP("verbose", "v", false,
		"also report inbox occupancy and fan-out overhead")
}

//nolint:funlen // flag unpacking and wiring is mechanical.
func runSimulation(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	numNodes, _ := flags.GetInt("nodes")
	numMessages, _ := flags.GetInt("messages")
	steps, _ := flags.GetInt("steps")
	ttl, _ := flags.GetInt("ttl")
	density, _ := flags.GetFloat64("density")
	volatility, _ := flags.GetFloat64("volatility")
	topologyKind, _ := flags.GetString("topology")
	algorithm, _ := flags.GetString("algorithm")
	seed, _ := flags.GetInt64("seed")
	parallel, _ := flags.GetBool("parallel")
	record, _ := flags.GetBool("record")
	output, _ := flags.GetString("output")
	monitor, _ := flags.GetBool("monitor")
	monitorPort, _ := flags.GetInt("monitor-port")
	open, _ := flags.GetBool("open")
	verbose, _ := flags.GetBool("verbose")

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	topoBuilder := topology.MakeBuilder().
		WithKind(topologyKind).
		WithNumNodes(numNodes).
		WithDensity(density).
		WithVolatility(volatility).
		WithRand(rand.New(rand.NewSource(seed)))
	if err := topoBuilder.Validate(); err != nil {
		return err
	}

	forwarderBuilder := routing.MakeBuilder().
		WithAlgorithm(algorithm).
		WithTotalMessages(numMessages).
		WithSeed(seed)
	if err := forwarderBuilder.Validate(); err != nil {
		return err
	}

	simBuilder := simulation.MakeBuilder().
		WithNumNodes(numNodes).
		WithTopology(topoBuilder.Build()).
		WithForwarderBuilder(forwarderBuilder)
	if parallel {
		simBuilder = simBuilder.WithParallelDrain()
	}
	s := simBuilder.Build()

	runID := xid.New().String()

	var recorder datarecording.DataRecorder
	if record {
		if output == "" {
			output = "dynaroute_" + runID
		}
		recorder = datarecording.NewRecorder(output)

		analysis.MakeInboxAnalyzerBuilder().
			WithRecorder(recorder).
			Build(s)
		analysis.MakeRunLoggerBuilder().
			WithRecorder(recorder).
			WithRunID(runID).
			WithAlgorithm(algorithm).
			WithTopology(topologyKind).
			Build(s)
	}

	if monitor {
		m := monitoring.NewMonitor()
		if monitorPort > 0 {
			m.WithPortNumber(monitorPort)
		}
		m.RegisterSimulator(s)
		m.StartServer()
		if open {
			m.OpenDashboard()
		}
	}

	w := workload.MakeBuilder().
		WithNumMessages(numMessages).
		WithNumNodes(numNodes).
		WithTTL(ttl).
		WithRand(rand.New(rand.NewSource(seed + 1))).
		Build()

	fmt.Fprintf(os.Stderr, "Initializing workload with %d messages.\n",
		w.NumMessages())
	s.InitializeWorkload(w)

	fmt.Fprintf(os.Stderr, "Running workload for %d steps.\n", steps)
	if err := s.Run(steps); err != nil {
		return err
	}
	s.Finished()

	s.ComputeWorkloadStats().Fprint(os.Stdout, verbose)

	if recorder != nil {
		recorder.Close()
	}

	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid value %q for %s\n", v, key)
		os.Exit(1)
	}

	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid value %q for %s\n", v, key)
		os.Exit(1)
	}

	return f
}
