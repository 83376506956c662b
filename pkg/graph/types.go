package graph

// NodeID identifies a node in the evacuation graph. Server-assigned, unique.
type NodeID int

// RegionType is the static zone classification of a node. It drives both the
// base rendering color and the conflicting-region-pair table.
type RegionType string

const (
	RegionResidential RegionType = "Residential Zone"
	RegionTransition  RegionType = "Transition Zone"
	RegionHighRisk    RegionType = "High-Risk Zone"
	RegionConflict    RegionType = "Conflict / Control Zone"
	RegionSafe        RegionType = "Safe Zone"
)

// DangerousRegion reports whether a region's identity color already encodes
// danger. Predicted-hazard and traffic overlays must not replace the fill of
// such regions, only their border.
func DangerousRegion(r RegionType) bool {
	return r == RegionHighRisk || r == RegionConflict
}

// Node is a vertex of the evacuation graph. Coordinates are abstract layout
// coordinates, not display coordinates.
type Node struct {
	ID         NodeID     `json:"id"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Zone       string     `json:"zone"`
	RegionType RegionType `json:"region_type"`
	Hazard     bool       `json:"hazard"`
	Blocked    bool       `json:"blocked"`
	Population int        `json:"population"`
	Capacity   int        `json:"capacity"`
	Label      string     `json:"label"`
}

// Edge is a directed arc between two nodes. Cost models travel time, risk
// models danger exposure.
type Edge struct {
	From    NodeID  `json:"from"`
	To      NodeID  `json:"to"`
	Cost    float64 `json:"cost"`
	Risk    float64 `json:"risk"`
	Hazard  bool    `json:"hazard"`
	Blocked bool    `json:"blocked"`
}

// Graph is a cached mirror of server graph state. It is replaced wholesale
// after any mutation endpoint call, never patched field-by-field beyond the
// toggled attribute.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Start NodeID `json:"start"`
	End   NodeID `json:"end"`
}

// Get returns the node with the given id, or nil.
func (g *Graph) Get(id NodeID) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// NodeCount returns the total number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// HazardNodeIDs returns the ids of all nodes with the server-declared hazard
// flag set, in graph order.
func (g *Graph) HazardNodeIDs() []NodeID {
	var ids []NodeID
	for _, n := range g.Nodes {
		if n.Hazard {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// HasEdge reports whether a directed edge from a to b exists.
func (g *Graph) HasEdge(a, b NodeID) bool {
	for _, e := range g.Edges {
		if e.From == a && e.To == b {
			return true
		}
	}
	return false
}
