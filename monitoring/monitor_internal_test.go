package monitoring

import (
	"encoding/json"
	"math/rand"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Ramundoness/DynaRoute/routing"
	"github.com/Ramundoness/DynaRoute/simulation"
	"github.com/Ramundoness/DynaRoute/topology"
)

func newTestSimulator(kind string) *simulation.Simulator {
	topo := topology.MakeBuilder().
		WithKind(kind).
		WithNumNodes(4).
		WithDensity(0.5).
		WithVolatility(0).
		WithRand(rand.New(rand.NewSource(1))).
		Build()

	return simulation.MakeBuilder().
		WithNumNodes(4).
		WithTopology(topo).
		WithForwarderBuilder(routing.MakeBuilder().WithAlgorithm("flood")).
		Build()
}

var _ = Describe("Monitor", func() {
	var m *Monitor

	BeforeEach(func() {
		m = NewMonitor()
		m.RegisterSimulator(newTestSimulator("random"))
	})

	It("should report progress", func() {
		w := httptest.NewRecorder()

		m.listProgress(w, httptest.NewRequest("GET", "/api/progress", nil))

		Expect(w.Body.String()).To(Equal(`{"tick":0,"max_steps":0}`))
	})

	It("should serve the topology matrix", func() {
		w := httptest.NewRecorder()

		m.listTopology(w, httptest.NewRequest("GET", "/api/topology", nil))

		var matrix [][]bool
		err := json.Unmarshal(w.Body.Bytes(), &matrix)
		Expect(err).To(BeNil())
		Expect(matrix).To(HaveLen(4))
	})

	It("should reject positions for a topology without them", func() {
		w := httptest.NewRecorder()

		m.listPositions(w, httptest.NewRequest("GET", "/api/positions", nil))

		Expect(w.Code).To(Equal(404))
	})

	It("should serve positions for a geometric topology", func() {
		m.RegisterSimulator(newTestSimulator("geometric"))
		w := httptest.NewRecorder()

		m.listPositions(w, httptest.NewRequest("GET", "/api/positions", nil))

		var positions [][2]float64
		err := json.Unmarshal(w.Body.Bytes(), &positions)
		Expect(err).To(BeNil())
		Expect(positions).To(HaveLen(4))
	})

	It("should serve the dashboard page", func() {
		w := httptest.NewRecorder()

		m.dashboard(w, httptest.NewRequest("GET", "/", nil))

		Expect(w.Header().Get("Content-Type")).To(Equal("text/html"))
		Expect(w.Body.Len()).To(BeNumerically(">", 0))
	})

	It("should refuse a privileged port number", func() {
		m.WithPortNumber(80)

		Expect(m.portNumber).To(Equal(0))
	})
})
