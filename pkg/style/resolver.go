package style

import (
	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
	"github.com/Muayad-Arafeh/Qscape/pkg/view"
)

// NodeStyle is the resolved visual style of a node.
type NodeStyle struct {
	Fill        string  `json:"fill"`
	Border      string  `json:"border"`
	BorderWidth float64 `json:"border_width"`
	Radius      float64 `json:"radius"`
	Opacity     float64 `json:"opacity"`
}

// EdgeStyle is the resolved visual style of an edge.
type EdgeStyle struct {
	Color   string  `json:"color"`
	Width   float64 `json:"width"`
	Opacity float64 `json:"opacity"`
	Dashed  bool    `json:"dashed"`
}

// Signal thresholds for the overlay rules.
const (
	PredCriticalThreshold = 70.0
	PredElevatedThreshold = 50.0
	TrafficHeavy          = 70.0
	TrafficBusy           = 50.0
	TrafficLight          = 30.0

	RiskTierHigh   = 4.0
	RiskTierMedium = 2.0
)

// Base node geometry. Blocked nodes render enlarged so they read as removed
// from the graph rather than merely recolored.
const (
	baseRadius    = 9.0
	blockedRadius = 12.0
)

// NodeRule is one entry in the ordered node precedence table. The first rule
// whose Applies returns true determines the style.
type NodeRule struct {
	Name    string
	Applies func(n *graph.Node, snap view.Snapshot) bool
	Style   func(n *graph.Node, snap view.Snapshot) NodeStyle
}

// regionStyle is the rule-10 default: the region's identity color.
func regionStyle(n *graph.Node) NodeStyle {
	return NodeStyle{
		Fill:        RegionFill(n.RegionType),
		Border:      BorderDefault,
		BorderWidth: 1.5,
		Radius:      baseRadius,
		Opacity:     1,
	}
}

// tintOrBorder implements the region-aware split of the overlay rules: for
// regions whose identity color already encodes danger, keep the base fill
// and change only the border; otherwise replace the fill. Overriding the fill
// of an inherently risky zone would make it indistinguishable from a
// currently-predicted risky one.
func tintOrBorder(n *graph.Node, tint, border string, borderWidth float64) NodeStyle {
	s := regionStyle(n)
	if graph.DangerousRegion(n.RegionType) {
		s.Border = border
		s.BorderWidth = borderWidth
		return s
	}
	s.Fill = tint
	return s
}

func probability(n *graph.Node, snap view.Snapshot) float64 {
	if snap.Predictions == nil {
		return 0
	}
	return snap.Predictions.Hazards.Probability(n.ID)
}

func traffic(n *graph.Node, snap view.Snapshot) float64 {
	if snap.Predictions == nil {
		return 0
	}
	return snap.Predictions.Traffic.Level(n.ID)
}

// nodeRules is the full node precedence table, first match wins.
var nodeRules = []NodeRule{
	{
		Name: "blocked",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return snap.Blocked[n.ID]
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			return NodeStyle{Fill: FillBlocked, Border: "#000000", BorderWidth: 2, Radius: blockedRadius, Opacity: 1}
		},
	},
	{
		Name: "start",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return snap.Start == n.ID
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			return NodeStyle{Fill: FillStart, Border: BorderDefault, BorderWidth: 2, Radius: baseRadius, Opacity: 1}
		},
	},
	{
		Name: "end",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return snap.End == n.ID
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			return NodeStyle{Fill: FillEnd, Border: BorderDefault, BorderWidth: 2, Radius: baseRadius, Opacity: 1}
		},
	},
	{
		Name: "hazard",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return n.Hazard || snap.Hazard[n.ID]
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			return NodeStyle{Fill: FillHazard, Border: BorderPredCritical, BorderWidth: 2, Radius: baseRadius, Opacity: 1}
		},
	},
	{
		Name: "path",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return snap.Solved.Contains(n.ID)
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			return NodeStyle{Fill: FillPath, Border: BorderDefault, BorderWidth: 2, Radius: baseRadius, Opacity: 1}
		},
	},
	{
		Name: "predicted-critical",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return probability(n, snap) >= PredCriticalThreshold
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			return tintOrBorder(n, FillPredCritical, BorderPredCritical, 3)
		},
	},
	{
		Name: "predicted-elevated",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return probability(n, snap) >= PredElevatedThreshold
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			return tintOrBorder(n, FillPredElevated, BorderPredElevated, 2.5)
		},
	},
	{
		Name: "traffic-heavy",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return traffic(n, snap) > TrafficHeavy
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			return tintOrBorder(n, FillTrafficHeavy, BorderTraffic, 2.5)
		},
	},
	{
		Name: "traffic-busy",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return traffic(n, snap) > TrafficBusy && !graph.DangerousRegion(n.RegionType)
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			s := regionStyle(n)
			s.Fill = FillTrafficBusy
			return s
		},
	},
	{
		Name: "traffic-light",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return traffic(n, snap) > TrafficLight && !graph.DangerousRegion(n.RegionType)
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			s := regionStyle(n)
			s.Fill = FillTrafficLight
			return s
		},
	},
	{
		Name: "region",
		Applies: func(n *graph.Node, snap view.Snapshot) bool {
			return true
		},
		Style: func(n *graph.Node, snap view.Snapshot) NodeStyle {
			return regionStyle(n)
		},
	},
}

// ResolveNode returns the style for a node under the current view-state, and
// the name of the precedence rule that produced it.
func ResolveNode(n *graph.Node, snap view.Snapshot) (NodeStyle, string) {
	for _, r := range nodeRules {
		if r.Applies(n, snap) {
			return r.Style(n, snap), r.Name
		}
	}
	// Unreachable: the region rule always applies.
	return regionStyle(n), "region"
}

// NodeStyleOf is ResolveNode without the rule name.
func NodeStyleOf(n *graph.Node, snap view.Snapshot) NodeStyle {
	s, _ := ResolveNode(n, snap)
	return s
}

// NodeRuleNames returns the precedence order of the node rule table.
func NodeRuleNames() []string {
	names := make([]string, len(nodeRules))
	for i, r := range nodeRules {
		names[i] = r.Name
	}
	return names
}

// ResolveEdge returns the style for an edge under the current view-state and
// the name of the rule that produced it. Precedence: blocked > manual hazard
// > sequential-in-path > risk tier. Edges between conflicting region pairs
// render dashed at reduced opacity unless a higher-precedence rule already
// styled them.
func ResolveEdge(e *graph.Edge, from, to *graph.Node, snap view.Snapshot) (EdgeStyle, string) {
	switch {
	case e.Blocked || snap.Blocked[e.From] || snap.Blocked[e.To]:
		return EdgeStyle{Color: EdgeBlocked, Width: 1, Opacity: 0.35, Dashed: true}, "blocked"
	case e.Hazard:
		return EdgeStyle{Color: EdgeHazard, Width: 3, Opacity: 1}, "hazard"
	case snap.Solved.Sequential(e.From, e.To):
		return EdgeStyle{Color: EdgePath, Width: 4, Opacity: 1}, "path"
	}

	s := EdgeStyle{Width: 1.5, Opacity: 0.9}
	switch {
	case e.Risk >= RiskTierHigh:
		s.Color = EdgeRiskHigh
	case e.Risk >= RiskTierMedium:
		s.Color = EdgeRiskMedium
	default:
		s.Color = EdgeRiskLow
	}

	if from != nil && to != nil && ConflictingRegions(from.RegionType, to.RegionType) {
		s.Dashed = true
		s.Opacity = 0.5
		return s, "risk-conflict"
	}
	return s, "risk"
}

// EdgeStyleOf is ResolveEdge without the rule name.
func EdgeStyleOf(e *graph.Edge, from, to *graph.Node, snap view.Snapshot) EdgeStyle {
	s, _ := ResolveEdge(e, from, to, snap)
	return s
}
