package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Muayad-Arafeh/Qscape/pkg/config"
	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
	"github.com/Muayad-Arafeh/Qscape/pkg/render"
	"github.com/Muayad-Arafeh/Qscape/pkg/style"
)

// fakeServer is an in-memory solver backend for end-to-end binding tests.
type fakeServer struct {
	mu      sync.Mutex
	graph   *graph.Graph
	calls   map[string]int
	lastHaz struct {
		NodeIDs []graph.NodeID `json:"node_ids"`
		SetTo   bool           `json:"set_to"`
	}
	failHazards bool
}

func newFakeServer() (*fakeServer, *httptest.Server) {
	fs := &fakeServer{graph: graph.DemoGraph(), calls: map[string]int{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/graph", fs.handleGraph)
	mux.HandleFunc("/graph/hazards", fs.handleHazards)
	mux.HandleFunc("/graph/constraints", fs.handle(`{"status":"ok"}`))
	mux.HandleFunc("/solve", fs.handle(`{"path":[0,2,1],"cost":7.5,"algorithm":"dijkstra","execution_time_ms":1,"is_optimal":true}`))
	mux.HandleFunc("/solve/hard", fs.handle(`{"path":[0,2,1],"cost":7.5,"algorithm":"dijkstra","execution_time_ms":1,"is_valid":true,"population_served":850,"population_left":150,"vehicles_used":3,"penalty":0,"adjusted_cost":7.5}`))
	mux.HandleFunc("/solve/compare", fs.handle(`{"algorithms":{"dijkstra":{"path":[0,2,1],"cost":7.5,"execution_time_ms":1,"is_optimal":true},"quantum":{"path":[0,1],"cost":9,"execution_time_ms":2,"quantum_mode":"simulated"}}}`))
	mux.HandleFunc("/predict/traffic", fs.handle(`{"nodes":{},"peak_hour":false}`))
	mux.HandleFunc("/predict/hazards", fs.handle(`{"predictions":{},"high_risk_nodes":[],"night_time":false}`))
	mux.HandleFunc("/predict/route-quality", fs.handle(`{"recommendation":"PROCEED","success_probability":95,"reason":"clear"}`))
	return fs, httptest.NewServer(mux)
}

func (f *fakeServer) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func (f *fakeServer) handle(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls[r.URL.Path]++
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func (f *fakeServer) handleGraph(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls[r.URL.Path]++
	g := f.graph
	f.mu.Unlock()
	json.NewEncoder(w).Encode(g)
}

func (f *fakeServer) handleHazards(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[r.URL.Path]++
	if f.failHazards {
		http.Error(w, `{"detail":"hazard toggle rejected"}`, http.StatusInternalServerError)
		return
	}
	var req struct {
		NodeIDs []graph.NodeID `json:"node_ids"`
		SetTo   bool           `json:"set_to"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	f.lastHaz.NodeIDs = req.NodeIDs
	f.lastHaz.SetTo = req.SetTo
	for _, id := range req.NodeIDs {
		for i := range f.graph.Nodes {
			if f.graph.Nodes[i].ID == id {
				f.graph.Nodes[i].Hazard = req.SetTo
			}
		}
	}
	json.NewEncoder(w).Encode(f.graph)
}

func newTestApp(t *testing.T) (*App, *fakeServer) {
	t.Helper()
	fs, srv := newFakeServer()
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Server.URL = srv.URL
	// Zero out the presentation delay so solve tests run instantly.
	cfg.Delays = map[string]config.DelayConfig{}
	for _, algorithm := range []string{"dijkstra", "astar", "dynamic_programming", "quantum", "genetic"} {
		cfg.Delays[algorithm] = config.DelayConfig{Multiplier: 0, FloorMS: 0}
	}
	return newApp(cfg), fs
}

func spriteByID(t *testing.T, f *render.Frame, id graph.NodeID) render.NodeSprite {
	t.Helper()
	for _, n := range f.Nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("node %d not in frame", id)
	return render.NodeSprite{}
}

func TestLoadGraphRendersDemo(t *testing.T) {
	app, _ := newTestApp(t)

	frame, err := app.LoadGraph()
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	if len(frame.Nodes) != 51 {
		t.Errorf("nodes rendered = %d, want 51", len(frame.Nodes))
	}
	if len(frame.Legend) == 0 {
		t.Error("frame carries no legend")
	}
	sp := spriteByID(t, frame, 0)
	if sp.Lat == 0 || sp.Lng == 0 {
		t.Error("geo coordinates missing from sprite")
	}
}

func TestClickFlowSelectsEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	if _, err := app.LoadGraph(); err != nil {
		t.Fatal(err)
	}

	app.ClickNode(0)
	if err := app.SetEditMode("end"); err != nil {
		t.Fatal(err)
	}
	frame := app.ClickNode(1)

	if got := spriteByID(t, frame, 0).Style.Fill; got != style.FillStart {
		t.Errorf("start fill = %q, want %q", got, style.FillStart)
	}
	if got := spriteByID(t, frame, 1).Style.Fill; got != style.FillEnd {
		t.Errorf("end fill = %q, want %q", got, style.FillEnd)
	}
}

func TestClickAtUsesHitIndex(t *testing.T) {
	app, _ := newTestApp(t)
	frame, err := app.LoadGraph()
	if err != nil {
		t.Fatal(err)
	}

	sp := spriteByID(t, frame, 0)
	frame = app.ClickAt(sp.X+3, sp.Y-3)
	if got := spriteByID(t, frame, 0).Style.Fill; got != style.FillStart {
		t.Errorf("fill after near-hit click = %q, want %q", got, style.FillStart)
	}

	// A click in empty space changes nothing.
	before, _ := app.state.Selection()
	app.ClickAt(-50, -50)
	after, _ := app.state.Selection()
	if before != after {
		t.Error("miss click changed the selection")
	}
}

func TestSetEditModeRejectsUnknown(t *testing.T) {
	app, _ := newTestApp(t)
	if err := app.SetEditMode("teleport"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if app.EditMode() != "start" {
		t.Errorf("mode = %q, want unchanged start", app.EditMode())
	}
}

func TestSolveBindingAppliesPath(t *testing.T) {
	app, fs := newTestApp(t)
	if _, err := app.LoadGraph(); err != nil {
		t.Fatal(err)
	}
	app.ClickNode(0)
	app.SetEditMode("end")
	app.ClickNode(1)

	frame, err := app.Solve("dijkstra", true)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if fs.count("/solve") != 1 {
		t.Errorf("/solve calls = %d, want 1", fs.count("/solve"))
	}
	if fs.count("/graph/constraints") != 1 {
		t.Errorf("/graph/constraints calls = %d, want 1", fs.count("/graph/constraints"))
	}
	if got := spriteByID(t, frame, 2).Style.Fill; got != style.FillPath {
		t.Errorf("intermediate path fill = %q, want %q", got, style.FillPath)
	}
	if frame.Status.Algorithm != "dijkstra" || frame.Status.PathCost != 7.5 {
		t.Errorf("status = %+v", frame.Status)
	}
}

func TestCompareBinding(t *testing.T) {
	app, _ := newTestApp(t)
	if _, err := app.LoadGraph(); err != nil {
		t.Fatal(err)
	}

	if _, err := app.Compare(true); err == nil {
		t.Fatal("compare without selection should fail")
	}

	app.ClickNode(0)
	app.SetEditMode("end")
	app.ClickNode(1)
	rows, err := app.Compare(true)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(rows) != 2 || rows[0].Algorithm != "dijkstra" || rows[1].Algorithm != "quantum" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestSolveHardBinding(t *testing.T) {
	app, _ := newTestApp(t)
	if _, err := app.LoadGraph(); err != nil {
		t.Fatal(err)
	}
	app.ClickNode(0)
	app.SetEditMode("end")
	app.ClickNode(1)

	res, err := app.SolveHard("dijkstra", true)
	if err != nil {
		t.Fatalf("SolveHard: %v", err)
	}
	if !res.IsValid || res.PopulationServed != 850 || res.VehiclesUsed != 3 {
		t.Errorf("result = %+v", res)
	}
}

func TestToggleHazardRoundTrip(t *testing.T) {
	app, fs := newTestApp(t)
	if _, err := app.LoadGraph(); err != nil {
		t.Fatal(err)
	}

	frame, err := app.ToggleHazard(10)
	if err != nil {
		t.Fatalf("ToggleHazard: %v", err)
	}
	if !fs.lastHaz.SetTo || len(fs.lastHaz.NodeIDs) != 1 || fs.lastHaz.NodeIDs[0] != 10 {
		t.Errorf("hazard push = %+v", fs.lastHaz)
	}
	if got := spriteByID(t, frame, 10).Style.Fill; got != style.FillHazard {
		t.Errorf("hazard fill = %q, want %q", got, style.FillHazard)
	}
	// The cached mirror was replaced wholesale from the response.
	if n := app.state.Graph().Get(10); n == nil || !n.Hazard {
		t.Error("graph mirror not refreshed from hazard response")
	}
}

func TestToggleHazardRollsBackOnFailure(t *testing.T) {
	app, fs := newTestApp(t)
	if _, err := app.LoadGraph(); err != nil {
		t.Fatal(err)
	}
	fs.failHazards = true

	if _, err := app.ToggleHazard(10); err == nil {
		t.Fatal("expected error from failed hazard push")
	}
	for _, id := range app.state.HazardIDs() {
		if id == 10 {
			t.Fatal("local hazard mark survived a failed push")
		}
	}
}

func TestResetIssuesSingleClearingRequest(t *testing.T) {
	app, fs := newTestApp(t)
	if _, err := app.LoadGraph(); err != nil {
		t.Fatal(err)
	}
	if _, err := app.ToggleHazard(10); err != nil {
		t.Fatal(err)
	}
	if _, err := app.ToggleHazard(20); err != nil {
		t.Fatal(err)
	}
	app.ClickNode(0)
	before := fs.count("/graph/hazards")

	frame, err := app.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := fs.count("/graph/hazards") - before; got != 1 {
		t.Errorf("clearing requests = %d, want exactly 1", got)
	}
	if fs.lastHaz.SetTo {
		t.Error("clearing request has set_to=true")
	}
	if len(fs.lastHaz.NodeIDs) != 2 || fs.lastHaz.NodeIDs[0] != 10 || fs.lastHaz.NodeIDs[1] != 20 {
		t.Errorf("cleared ids = %v, want [10 20]", fs.lastHaz.NodeIDs)
	}
	start, end := app.state.Selection()
	if start != -1 || end != -1 {
		t.Errorf("selection after reset = %d,%d", start, end)
	}
	if got := spriteByID(t, frame, 10).Style.Fill; got == style.FillHazard {
		t.Error("hazard styling survived reset")
	}
}

func TestResetWithoutHazardsSkipsServer(t *testing.T) {
	app, fs := newTestApp(t)
	if _, err := app.LoadGraph(); err != nil {
		t.Fatal(err)
	}
	app.ClickNode(0)

	if _, err := app.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if fs.count("/graph/hazards") != 0 {
		t.Errorf("/graph/hazards calls = %d, want 0", fs.count("/graph/hazards"))
	}
}

func TestAlgorithmsOrder(t *testing.T) {
	app, _ := newTestApp(t)
	got := app.Algorithms()
	want := []string{"dijkstra", "dynamic_programming", "astar", "quantum", "genetic"}
	if len(got) != len(want) {
		t.Fatalf("algorithms = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("algorithms[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
