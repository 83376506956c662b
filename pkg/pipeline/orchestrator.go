// Package pipeline sequences the multi-stage solve workflow: prediction
// fetch, recommendation gate, constraint sync, solve request, simulated
// presentation delay, and re-render. It also tabulates multi-algorithm
// comparisons.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Muayad-Arafeh/Qscape/pkg/api"
	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
	"github.com/Muayad-Arafeh/Qscape/pkg/view"
)

// Pipeline outcome sentinels.
var (
	ErrPreconditions = errors.New("start and end must be selected and unblocked")
	ErrDeclined      = errors.New("solve declined at recommendation gate")
	ErrSuperseded    = errors.New("solve superseded by newer invocation")
)

// Backend is the slice of the API client the pipeline depends on.
type Backend interface {
	Solve(ctx context.Context, req api.SolveRequest) (*graph.SolvedPath, error)
	Compare(ctx context.Context, req api.SolveRequest) (*api.CompareResponse, error)
	SyncConstraints(ctx context.Context, blockedNodes []graph.NodeID, blockedEdges []string) error
	PredictTraffic(ctx context.Context, hazardIDs, blockedIDs []graph.NodeID) (*graph.TrafficPrediction, error)
	PredictHazards(ctx context.Context, hazardIDs, blockedIDs []graph.NodeID) (*graph.HazardPredictions, error)
	PredictRouteQuality(ctx context.Context, start, end graph.NodeID, algorithm string, hazardIDs, blockedIDs []graph.NodeID) (*graph.RouteQuality, error)
}

// SolveOptions are the operator-chosen solve parameters.
type SolveOptions struct {
	Algorithm    string
	AvoidHazards bool
	RiskWeight   float64
	HazardWeight float64
}

// Orchestrator runs the solve pipeline against a shared view-state. Within
// one invocation the stages run strictly in order; across invocations there
// is no mutual exclusion, but each invocation carries a generation token and
// stale completions discard their writes instead of racing.
type Orchestrator struct {
	state   *view.State
	backend Backend
	ui      Surface
	delays  DelayTable

	// sleep and onBusy are injectable for tests; sleep defaults to
	// time.Sleep, onBusy to a no-op.
	sleep  func(time.Duration)
	onBusy func(active bool)

	// onRender is invoked after every state mutation the pipeline makes.
	onRender func()

	mu         sync.Mutex
	generation uint64
}

// NewOrchestrator wires a pipeline around the given state, backend, and
// surface. onRender may be nil.
func NewOrchestrator(state *view.State, backend Backend, ui Surface, onRender func()) *Orchestrator {
	o := &Orchestrator{
		state:    state,
		backend:  backend,
		ui:       ui,
		delays:   DefaultDelays(),
		sleep:    time.Sleep,
		onBusy:   func(bool) {},
		onRender: func() {},
	}
	if onRender != nil {
		o.onRender = onRender
	}
	return o
}

// SetDelays overrides the presentation-delay policy.
func (o *Orchestrator) SetDelays(t DelayTable) { o.delays = t }

// SetSurface swaps the user-facing output capability. Called once the real
// display surface exists; safe only before the first Solve.
func (o *Orchestrator) SetSurface(ui Surface) { o.ui = ui }

// SetBusyFunc registers the busy-indicator callback.
func (o *Orchestrator) SetBusyFunc(fn func(active bool)) { o.onBusy = fn }

func (o *Orchestrator) nextGeneration() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.generation++
	return o.generation
}

func (o *Orchestrator) current(gen uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return gen == o.generation
}

// Solve runs the full pipeline. It blocks through every suspension point
// (network round trips, the confirmation gate, the artificial delay), so
// callers run it off the UI thread. Stage order and failure semantics:
//
//  1. precondition check: fatal, no network activity on violation
//  2. prediction fetch: best-effort, degrades to no predictions
//  3. recommendation gate: aborts only on explicit operator decline
//  4. constraint sync: fatal on failure
//  5. solve request: fatal on failure, prior solved path left as-is
//  6. simulated presentation delay
//  7. apply result and re-render, unless superseded
func (o *Orchestrator) Solve(ctx context.Context, opts SolveOptions) error {
	gen := o.nextGeneration()

	// Stage 1: preconditions.
	start, end := o.state.Selection()
	if start == view.NoSelection || end == view.NoSelection {
		o.ui.Notify("Select both a start and an end node first", SeverityWarning)
		return ErrPreconditions
	}
	if o.state.IsBlocked(start) || o.state.IsBlocked(end) {
		o.ui.Notify("Start or end node is blocked", SeverityWarning)
		return ErrPreconditions
	}

	// Stage 2: prediction fetch, best-effort.
	preds := o.fetchPredictions(ctx, start, end, opts.Algorithm)
	if preds != nil {
		if !o.current(gen) {
			return ErrSuperseded
		}
		o.state.SetPredictions(preds)
		o.onRender()
	}

	// Stage 3: recommendation gate.
	if preds != nil {
		switch preds.RouteQuality.Recommendation {
		case graph.RecommendReject:
			msg := fmt.Sprintf("%s\nSuccess probability: %.1f%%\n\nCompute the route anyway?",
				preds.RouteQuality.Reason, preds.RouteQuality.SuccessProbability)
			ok, err := o.ui.Confirm("Route not recommended", msg)
			if err != nil {
				log.Printf("pipeline: confirm failed: %v", err)
				return ErrDeclined
			}
			if !ok {
				o.ui.Notify("Solve cancelled", SeverityInfo)
				return ErrDeclined
			}
		case graph.RecommendCaution:
			log.Printf("pipeline: proceeding with caution: %s", preds.RouteQuality.Reason)
		}
		// SLOW is silent.
	}

	// Stage 4: constraint sync. Always pushed, even when unchanged, so the
	// server state matches the client before solving.
	if err := o.backend.SyncConstraints(ctx, o.state.BlockedIDs(), nil); err != nil {
		log.Printf("pipeline: constraint sync failed: %v", err)
		o.ui.Notify("Failed to sync blocked nodes: "+err.Error(), SeverityError)
		return err
	}

	// Stage 5: solve request.
	result, err := o.backend.Solve(ctx, api.SolveRequest{
		Start:        start,
		End:          end,
		Algorithm:    opts.Algorithm,
		AvoidHazards: opts.AvoidHazards,
		RiskWeight:   opts.RiskWeight,
		HazardWeight: opts.HazardWeight,
	})
	if err != nil {
		log.Printf("pipeline: solve failed: %v", err)
		o.ui.Notify("No path found: "+err.Error(), SeverityError)
		return err
	}

	// Stage 6: simulated presentation delay.
	delay := o.delays.Presentation(opts.Algorithm, result.ExecutionTimeMS)
	o.onBusy(true)
	o.sleep(delay)
	o.onBusy(false)

	// Stage 7: apply and render, unless a newer invocation took over.
	if !o.current(gen) {
		log.Printf("pipeline: discarding stale solve result (generation %d)", gen)
		return ErrSuperseded
	}
	o.state.SetSolvedPath(result)
	o.onRender()
	return nil
}

// fetchPredictions issues the three prediction requests concurrently. The
// fragments are applied all-or-nothing: any transport failure, non-success
// status, or in-band error marker discards the whole bundle, with a warning
// rather than an abort.
func (o *Orchestrator) fetchPredictions(ctx context.Context, start, end graph.NodeID, algorithm string) *graph.Predictions {
	hazardIDs := o.state.HazardIDs()
	blockedIDs := o.state.BlockedIDs()

	var (
		traffic *graph.TrafficPrediction
		hazards *graph.HazardPredictions
		quality *graph.RouteQuality
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		traffic, err = o.backend.PredictTraffic(gctx, hazardIDs, blockedIDs)
		return err
	})
	g.Go(func() error {
		var err error
		hazards, err = o.backend.PredictHazards(gctx, hazardIDs, blockedIDs)
		return err
	})
	g.Go(func() error {
		var err error
		quality, err = o.backend.PredictRouteQuality(gctx, start, end, algorithm, hazardIDs, blockedIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("pipeline: prediction fetch failed, continuing without predictions: %v", err)
		o.ui.Notify("Predictions unavailable, solving without them", SeverityWarning)
		return nil
	}
	return &graph.Predictions{Traffic: traffic, Hazards: hazards, RouteQuality: quality}
}
