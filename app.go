package main

import (
	"context"
	"fmt"
	"log"
	"sync"

	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/Muayad-Arafeh/Qscape/pkg/api"
	"github.com/Muayad-Arafeh/Qscape/pkg/config"
	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
	"github.com/Muayad-Arafeh/Qscape/pkg/pipeline"
	"github.com/Muayad-Arafeh/Qscape/pkg/project"
	"github.com/Muayad-Arafeh/Qscape/pkg/render"
	"github.com/Muayad-Arafeh/Qscape/pkg/view"
)

// Frontend event names.
const (
	eventFrame  = "qscape:frame"
	eventBusy   = "qscape:busy"
	eventNotify = "qscape:notify"
)

// hitRadius is the pointer pick radius in canvas pixels, wide enough to
// cover the largest node sprite.
const hitRadius = 14.0

// App is the Wails backend. It owns the session state and exposes the
// client operations to the frontend via bindings.
type App struct {
	ctx context.Context
	cfg config.Config

	client *api.Client
	state  *view.State
	ctrl   *view.Controller
	engine *render.Engine
	pipe   *pipeline.Orchestrator
	report *pipeline.Reporter

	mu   sync.Mutex
	hits *project.HitIndex
}

// NewApp creates the backend from qscape.toml in the working directory,
// falling back to compiled-in defaults when the file is absent.
func NewApp() *App {
	cfg, err := config.Load("qscape.toml")
	if err != nil {
		log.Printf("app: %v, using defaults", err)
		cfg = config.Default()
	}
	return newApp(cfg)
}

// newApp wires the backend for the given configuration. The pipeline starts
// with a silent surface; startup swaps in the Wails dialogs and events.
func newApp(cfg config.Config) *App {
	a := &App{
		cfg:    cfg,
		client: api.NewClient(cfg.Server.URL),
		state:  view.NewState(nil),
		engine: render.NewEngine(cfg.ProjectorCanvas()),
	}
	a.engine.SetGeoBounds(cfg.GeoBounds())
	a.ctrl = view.NewController(a.state)
	a.pipe = pipeline.NewOrchestrator(a.state, a.client, pipeline.NopSurface{}, a.emitFrame)
	a.pipe.SetDelays(cfg.DelayTable())
	a.report = pipeline.NewReporter(a.client)
	return a
}

// startup is called by Wails once the runtime context exists. From here on
// notifications, confirmations, and pushed frames go through the runtime.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.pipe.SetSurface(wailsSurface{ctx: ctx})
	a.pipe.SetBusyFunc(func(active bool) {
		wruntime.EventsEmit(ctx, eventBusy, active)
	})
}

// render builds a frame from the current state and refreshes the hit index.
func (a *App) render() *render.Frame {
	g := a.state.Graph()
	if g == nil {
		return &render.Frame{Legend: render.Legend()}
	}
	frame, hits := a.engine.Render(g, a.state.Snapshot())
	a.mu.Lock()
	a.hits = hits
	a.mu.Unlock()
	return frame
}

// emitFrame renders and pushes the frame to the frontend. Registered as the
// pipeline's render callback.
func (a *App) emitFrame() {
	frame := a.render()
	if a.ctx != nil {
		wruntime.EventsEmit(a.ctx, eventFrame, frame)
	}
}

// LoadGraph fetches the graph from the server, replaces the cached mirror
// wholesale, and returns the initial frame.
func (a *App) LoadGraph() (*render.Frame, error) {
	g, err := a.client.Graph(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	a.state.SetGraph(g)
	return a.render(), nil
}

// CurrentFrame re-renders the current state without touching the server.
func (a *App) CurrentFrame() *render.Frame {
	return a.render()
}

// EditMode returns the active edit mode name.
func (a *App) EditMode() string {
	return a.ctrl.Mode().String()
}

// SetEditMode switches the edit mode. Unknown names are rejected and leave
// the mode unchanged.
func (a *App) SetEditMode(mode string) error {
	m, err := view.ParseMode(mode)
	if err != nil {
		return err
	}
	a.ctrl.SetMode(m)
	return nil
}

// ClickAt resolves a canvas position to a node and dispatches the click per
// the active edit mode. A miss changes nothing and returns the frame as-is.
func (a *App) ClickAt(x, y float64) *render.Frame {
	a.mu.Lock()
	hits := a.hits
	a.mu.Unlock()
	if hits == nil {
		return a.render()
	}
	id, ok := hits.NodeAt(x, y, hitRadius)
	if !ok {
		return a.render()
	}
	a.ctrl.Click(id)
	return a.render()
}

// ClickNode dispatches a click on a known node id, bypassing hit-testing.
func (a *App) ClickNode(id int) *render.Frame {
	a.ctrl.Click(graph.NodeID(id))
	return a.render()
}

// ToggleHazard flips a node's manual hazard mark, pushes the change to the
// server, and replaces the cached graph wholesale from the response. A
// failed push rolls the local mark back.
func (a *App) ToggleHazard(id int) (*render.Frame, error) {
	nid := graph.NodeID(id)
	on := a.state.ToggleHazard(nid)
	g, err := a.client.SetHazards(context.Background(), []graph.NodeID{nid}, nil, on)
	if err != nil {
		a.state.ToggleHazard(nid)
		return nil, fmt.Errorf("toggle hazard: %w", err)
	}
	a.state.SetGraph(g)
	return a.render(), nil
}

// Solve runs the full pipeline with the configured weights and returns the
// resulting frame. A declined confirmation or superseded invocation is not
// an error to the frontend; the surface has already explained it.
func (a *App) Solve(algorithm string, avoidHazards bool) (*render.Frame, error) {
	err := a.pipe.Solve(context.Background(), pipeline.SolveOptions{
		Algorithm:    algorithm,
		AvoidHazards: avoidHazards,
		RiskWeight:   a.cfg.Solver.RiskWeight,
		HazardWeight: a.cfg.Solver.HazardWeight,
	})
	switch err {
	case nil, pipeline.ErrDeclined, pipeline.ErrSuperseded:
		return a.render(), nil
	default:
		return nil, err
	}
}

// Compare runs every algorithm on the current selection and returns the
// table rows in fixed order.
func (a *App) Compare(avoidHazards bool) ([]pipeline.ComparisonRow, error) {
	start, end := a.state.Selection()
	if start == view.NoSelection || end == view.NoSelection {
		return nil, pipeline.ErrPreconditions
	}
	return a.report.Compare(context.Background(), api.SolveRequest{
		Start:        start,
		End:          end,
		AvoidHazards: avoidHazards,
		RiskWeight:   a.cfg.Solver.RiskWeight,
		HazardWeight: a.cfg.Solver.HazardWeight,
	})
}

// SolveHard runs the capacity-constrained solve on the current selection.
func (a *App) SolveHard(algorithm string, enableConstraints bool) (*api.HardSolveResult, error) {
	start, end := a.state.Selection()
	if start == view.NoSelection || end == view.NoSelection {
		return nil, pipeline.ErrPreconditions
	}
	return a.client.SolveHard(context.Background(), api.HardSolveRequest{
		Start:             start,
		End:               end,
		Algorithm:         algorithm,
		EnableConstraints: enableConstraints,
	})
}

// Reset clears the whole session in one step. When hazards were set, exactly
// one clearing request goes to the server and the cached graph is replaced
// wholesale from its response.
func (a *App) Reset() (*render.Frame, error) {
	out := a.state.Reset()
	if out.HadHazards {
		g, err := a.client.SetHazards(context.Background(), out.HazardIDs, nil, false)
		if err != nil {
			return nil, fmt.Errorf("reset hazards: %w", err)
		}
		a.state.SetGraph(g)
	}
	return a.render(), nil
}

// Algorithms returns the algorithm keys in presentation order, for the
// frontend selector.
func (a *App) Algorithms() []string {
	return pipeline.CompareOrder
}

// wailsSurface routes pipeline output through the Wails runtime: toasts via
// events, confirmations via a blocking native dialog.
type wailsSurface struct {
	ctx context.Context
}

func (s wailsSurface) Notify(message, severity string) {
	wruntime.EventsEmit(s.ctx, eventNotify, map[string]string{
		"message":  message,
		"severity": severity,
	})
}

func (s wailsSurface) Confirm(title, message string) (bool, error) {
	choice, err := wruntime.MessageDialog(s.ctx, wruntime.MessageDialogOptions{
		Type:          wruntime.QuestionDialog,
		Title:         title,
		Message:       message,
		Buttons:       []string{"Yes", "No"},
		DefaultButton: "No",
	})
	if err != nil {
		return false, err
	}
	return choice == "Yes", nil
}
