// Package view holds the operator session state and the edit-mode controller.
// All mutable client-side state lives in a State owned by the session; there
// are no package-level globals.
package view

import (
	"sort"
	"sync"

	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
)

// NoSelection marks an unset start/end selection.
const NoSelection graph.NodeID = -1

// State is the shared view-state mutated by the edit-mode controller, UI
// events, and the solve pipeline. Renderers consume immutable snapshots of it.
type State struct {
	mu sync.Mutex

	graph   *graph.Graph
	start   graph.NodeID
	end     graph.NodeID
	hazard  map[graph.NodeID]bool
	blocked map[graph.NodeID]bool
	mode    Mode

	solved      *graph.SolvedPath
	predictions *graph.Predictions
}

// NewState creates a State around the given graph with no selections, empty
// hazard/blocked sets, and start edit mode.
func NewState(g *graph.Graph) *State {
	return &State{
		graph:   g,
		start:   NoSelection,
		end:     NoSelection,
		hazard:  make(map[graph.NodeID]bool),
		blocked: make(map[graph.NodeID]bool),
		mode:    ModeStart,
	}
}

// Snapshot is an immutable copy of the view-state consumed by the style
// resolver and the render engine.
type Snapshot struct {
	Start       graph.NodeID // NoSelection when unset
	End         graph.NodeID
	Hazard      map[graph.NodeID]bool
	Blocked     map[graph.NodeID]bool
	Mode        Mode
	Solved      *graph.SolvedPath
	Predictions *graph.Predictions
}

// Snapshot returns a copy of the current state. The hazard/blocked maps are
// copied; the solved path and predictions are replaced atomically elsewhere
// and safe to share.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	hz := make(map[graph.NodeID]bool, len(s.hazard))
	for id := range s.hazard {
		hz[id] = true
	}
	bl := make(map[graph.NodeID]bool, len(s.blocked))
	for id := range s.blocked {
		bl[id] = true
	}
	return Snapshot{
		Start:       s.start,
		End:         s.end,
		Hazard:      hz,
		Blocked:     bl,
		Mode:        s.mode,
		Solved:      s.solved,
		Predictions: s.predictions,
	}
}

// Graph returns the cached graph mirror.
func (s *State) Graph() *graph.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph
}

// SetGraph replaces the cached graph wholesale, as required after any
// mutation endpoint call.
func (s *State) SetGraph(g *graph.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = g
}

// Selection returns the current start and end selections.
func (s *State) Selection() (start, end graph.NodeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start, s.end
}

// SetStart records the start selection. No validation against the blocked
// set happens here; the solve precondition check is the safety net.
func (s *State) SetStart(id graph.NodeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = id
}

// SetEnd records the end selection.
func (s *State) SetEnd(id graph.NodeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.end = id
}

// ToggleBlocked toggles a node's membership in the blocked set and returns
// the new membership. Blocking a node that is the active start or end clears
// that selection; blocking also removes the node from the hazard set, since
// the two sets are mutually exclusive. Unblocking restores nothing.
func (s *State) ToggleBlocked(id graph.NodeID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blocked[id] {
		delete(s.blocked, id)
		return false
	}
	s.blocked[id] = true
	delete(s.hazard, id)
	if s.start == id {
		s.start = NoSelection
	}
	if s.end == id {
		s.end = NoSelection
	}
	return true
}

// IsBlocked reports membership in the blocked set.
func (s *State) IsBlocked(id graph.NodeID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blocked[id]
}

// BlockedIDs returns the blocked node ids in ascending order.
func (s *State) BlockedIDs() []graph.NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedIDs(s.blocked)
}

// ToggleHazard toggles a node's membership in the manual hazard set and
// returns the new membership. Marking a hazard clears a matching selection
// and blocked membership, mirroring ToggleBlocked.
func (s *State) ToggleHazard(id graph.NodeID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hazard[id] {
		delete(s.hazard, id)
		return false
	}
	s.hazard[id] = true
	delete(s.blocked, id)
	if s.start == id {
		s.start = NoSelection
	}
	if s.end == id {
		s.end = NoSelection
	}
	return true
}

// HazardIDs returns the manual hazard node ids in ascending order.
func (s *State) HazardIDs() []graph.NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedIDs(s.hazard)
}

// SetSolvedPath replaces the solved path atomically.
func (s *State) SetSolvedPath(p *graph.SolvedPath) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solved = p
}

// SolvedPath returns the current solved path, or nil.
func (s *State) SolvedPath() *graph.SolvedPath {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solved
}

// SetPredictions applies all three prediction fragments atomically. A nil
// argument clears the caches.
func (s *State) SetPredictions(p *graph.Predictions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictions = p
}

// Predictions returns the cached prediction bundle, or nil.
func (s *State) Predictions() *graph.Predictions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.predictions
}

// ResetOutcome reports what a Reset cleared, so the caller can push a single
// hazard-clearing request to the server when needed.
type ResetOutcome struct {
	HadHazards bool
	HazardIDs  []graph.NodeID
}

// Reset clears selections, hazard and blocked sets, the solved path, and all
// prediction caches in one atomic step. It returns the previously hazardous
// node ids.
func (s *State) Reset() ResetOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := ResetOutcome{
		HadHazards: len(s.hazard) > 0,
		HazardIDs:  sortedIDs(s.hazard),
	}
	s.start = NoSelection
	s.end = NoSelection
	s.hazard = make(map[graph.NodeID]bool)
	s.blocked = make(map[graph.NodeID]bool)
	s.solved = nil
	s.predictions = nil
	return out
}

func sortedIDs(set map[graph.NodeID]bool) []graph.NodeID {
	ids := make([]graph.NodeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
