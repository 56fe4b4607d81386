// Package monitoring turns a running simulation into a small web server so
// the topology and the delivery statistics can be watched live. The monitor
// is read-only: nothing it serves feeds back into the simulation outcome.
package monitoring

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/Ramundoness/DynaRoute/simulation"
	"github.com/Ramundoness/DynaRoute/topology"
)

//go:embed dashboard.html
var dashboardPage []byte

// Monitor exposes a simulation over HTTP for external observation.
type Monitor struct {
	sim        *simulation.Simulator
	portNumber int
	url        string
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterSimulator registers the simulator to be monitored.
func (m *Monitor) RegisterSimulator(s *simulation.Simulator) {
	m.sim = s
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/pause", m.pauseSimulator)
	r.HandleFunc("/api/continue", m.continueSimulator)
	r.HandleFunc("/api/progress", m.listProgress)
	r.HandleFunc("/api/topology", m.listTopology)
	r.HandleFunc("/api/positions", m.listPositions)
	r.HandleFunc("/api/stats", m.listStats)
	r.HandleFunc("/api/node/{id}", m.listNodeDetails)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/").HandlerFunc(m.dashboard)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", m.url)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

// OpenDashboard opens the dashboard in the default browser. Call it after
// StartServer.
func (m *Monitor) OpenDashboard() {
	err := browser.OpenURL(m.url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open browser: %s\n", err)
	}
}

func (m *Monitor) dashboard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	_, err := w.Write(dashboardPage)
	dieOnErr(err)
}

func (m *Monitor) pauseSimulator(w http.ResponseWriter, _ *http.Request) {
	m.sim.Pause()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) continueSimulator(w http.ResponseWriter, _ *http.Request) {
	m.sim.Continue()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) listProgress(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"tick\":%d,\"max_steps\":%d}",
		m.sim.CurrentTick(), m.sim.MaxSteps())
}

func (m *Monitor) listTopology(w http.ResponseWriter, _ *http.Request) {
	bytes, err := json.Marshal(m.sim.Topology().Matrix())
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listPositions(w http.ResponseWriter, _ *http.Request) {
	positioned, ok := m.sim.Topology().(topology.Positioned)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Topology has no positions"))
		dieOnErr(err)

		return
	}

	bytes, err := json.Marshal(positioned.Positions())
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listStats(w http.ResponseWriter, _ *http.Request) {
	bytes, err := json.Marshal(m.sim.ComputeWorkloadStats())
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listNodeDetails(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	id, err := strconv.Atoi(idStr)
	if err != nil || id < 0 || id >= len(m.sim.Nodes()) {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Node not found"))
		dieOnErr(err)

		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(m.sim.Nodes()[id])
	serializer.SetMaxDepth(1)
	err = serializer.Serialize(w)

	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
