// Package render assembles display frames for the frontend canvas. A frame
// is a pure function of the graph and a view-state snapshot: every mutation
// re-renders from scratch.
package render

import (
	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
	"github.com/Muayad-Arafeh/Qscape/pkg/project"
	"github.com/Muayad-Arafeh/Qscape/pkg/style"
	"github.com/Muayad-Arafeh/Qscape/pkg/view"
)

// NodeSprite is one node ready to draw.
type NodeSprite struct {
	ID    graph.NodeID    `json:"id"`
	X     float64         `json:"x"`
	Y     float64         `json:"y"`
	Lat   float64         `json:"lat,omitempty"`
	Lng   float64         `json:"lng,omitempty"`
	Label string          `json:"label"`
	Style style.NodeStyle `json:"style"`
}

// EdgeSprite is one edge ready to draw, with both endpoints projected.
type EdgeSprite struct {
	From  graph.NodeID    `json:"from"`
	To    graph.NodeID    `json:"to"`
	X1    float64         `json:"x1"`
	Y1    float64         `json:"y1"`
	X2    float64         `json:"x2"`
	Y2    float64         `json:"y2"`
	Style style.EdgeStyle `json:"style"`
}

// LegendEntry is one row of the on-screen legend.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Status summarizes the overlay state for the frame's status strip.
type Status struct {
	PeakHour  bool    `json:"peak_hour"`
	NightTime bool    `json:"night_time"`
	PathCost  float64 `json:"path_cost,omitempty"`
	Algorithm string  `json:"algorithm,omitempty"`
}

// Frame is a complete, JSON-serializable render of the current state.
type Frame struct {
	Nodes  []NodeSprite  `json:"nodes"`
	Edges  []EdgeSprite  `json:"edges"`
	Legend []LegendEntry `json:"legend"`
	Status Status        `json:"status"`
}

// Engine renders frames for a fixed canvas and optional geographic target.
type Engine struct {
	canvas project.Canvas
	geo    *project.GeoBounds
}

// NewEngine creates a render engine for the given canvas.
func NewEngine(c project.Canvas) *Engine {
	return &Engine{canvas: c}
}

// SetGeoBounds enables the geographic projection target; sprites then carry
// lat/lng alongside pixel coordinates.
func (e *Engine) SetGeoBounds(g project.GeoBounds) {
	e.geo = &g
}

// Render produces a frame and the hit index matching it. Edges draw before
// nodes so node sprites sit on top.
func (e *Engine) Render(g *graph.Graph, snap view.Snapshot) (*Frame, *project.HitIndex) {
	p := project.NewProjection(g.Nodes, e.canvas)

	f := &Frame{
		Nodes:  make([]NodeSprite, 0, len(g.Nodes)),
		Edges:  make([]EdgeSprite, 0, len(g.Edges)),
		Legend: Legend(),
	}

	for i := range g.Edges {
		edge := &g.Edges[i]
		from := g.Get(edge.From)
		to := g.Get(edge.To)
		if from == nil || to == nil {
			continue
		}
		x1, y1 := p.Screen(from)
		x2, y2 := p.Screen(to)
		f.Edges = append(f.Edges, EdgeSprite{
			From: edge.From, To: edge.To,
			X1: x1, Y1: y1, X2: x2, Y2: y2,
			Style: style.EdgeStyleOf(edge, from, to, snap),
		})
	}

	for i := range g.Nodes {
		n := &g.Nodes[i]
		x, y := p.Screen(n)
		sp := NodeSprite{
			ID: n.ID, X: x, Y: y,
			Label: n.Label,
			Style: style.NodeStyleOf(n, snap),
		}
		if e.geo != nil {
			pt := p.LatLng(n, *e.geo)
			sp.Lng, sp.Lat = pt.Lon(), pt.Lat()
		}
		f.Nodes = append(f.Nodes, sp)
	}

	if pred := snap.Predictions; pred != nil {
		if pred.Traffic != nil {
			f.Status.PeakHour = pred.Traffic.PeakHour
		}
		if pred.Hazards != nil {
			f.Status.NightTime = pred.Hazards.NightTime
		}
	}
	if snap.Solved != nil {
		f.Status.PathCost = snap.Solved.Cost
		f.Status.Algorithm = snap.Solved.Algorithm
	}

	return f, project.BuildHitIndex(g.Nodes, p)
}

// Legend returns the fixed legend rows shown with every frame.
func Legend() []LegendEntry {
	return []LegendEntry{
		{Label: "Start", Color: style.FillStart},
		{Label: "End", Color: style.FillEnd},
		{Label: "Hazard", Color: style.FillHazard},
		{Label: "Blocked", Color: style.FillBlocked},
		{Label: "Evacuation path", Color: style.FillPath},
		{Label: "Residential Zone", Color: style.RegionFill(graph.RegionResidential)},
		{Label: "Transition Zone", Color: style.RegionFill(graph.RegionTransition)},
		{Label: "High-Risk Zone", Color: style.RegionFill(graph.RegionHighRisk)},
		{Label: "Conflict / Control Zone", Color: style.RegionFill(graph.RegionConflict)},
		{Label: "Safe Zone", Color: style.RegionFill(graph.RegionSafe)},
	}
}
