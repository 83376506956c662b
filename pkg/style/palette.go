// Package style resolves the visual style of nodes and edges from the
// view-state and prediction overlays. Precedence is expressed as ordered
// rule tables so the ordering itself is testable.
package style

import "github.com/Muayad-Arafeh/Qscape/pkg/graph"

// Node fill colors for the signal layers.
const (
	FillBlocked       = "#2C3E50"
	FillStart         = "#2ECC71"
	FillEnd           = "#8E44AD"
	FillHazard        = "#E74C3C"
	FillPath          = "#1ABC9C"
	FillPredCritical  = "#FF6B6B" // red tint, predicted probability >= 70
	FillPredElevated  = "#FFA07A" // lighter tint, predicted probability >= 50
	FillTrafficHeavy  = "#E67E22" // traffic > 70
	FillTrafficBusy   = "#F5B041" // traffic > 50
	FillTrafficLight  = "#FAD7A0" // traffic > 30
	FillNeutral       = "#95A5A6" // unrecognized region
)

// Border colors used when a prediction or traffic signal must not replace a
// dangerous region's identity fill.
const (
	BorderDefault      = "#34495E"
	BorderPredCritical = "#C0392B"
	BorderPredElevated = "#E67E22"
	BorderTraffic      = "#D35400"
)

// Edge colors.
const (
	EdgeBlocked    = "#17202A"
	EdgeHazard     = "#E74C3C"
	EdgePath       = "#1ABC9C"
	EdgeRiskHigh   = "#CB4335"
	EdgeRiskMedium = "#E67E22"
	EdgeRiskLow    = "#7F8C8D"
)

// regionFills maps each region type to its base identity color.
var regionFills = map[graph.RegionType]string{
	graph.RegionResidential: "#3498DB",
	graph.RegionTransition:  "#F1C40F",
	graph.RegionHighRisk:    "#CD6155",
	graph.RegionConflict:    "#884EA0",
	graph.RegionSafe:        "#58D68D",
}

// RegionFill returns the base fill for a region type, or the neutral default
// for unrecognized regions.
func RegionFill(r graph.RegionType) string {
	if c, ok := regionFills[r]; ok {
		return c
	}
	return FillNeutral
}

// conflictPairs is the symmetric set of region pairs whose adjacency is
// visually flagged: edges between them render dashed at reduced opacity
// unless a higher-precedence rule already styled them. Mirrors the server's
// region penalty table.
var conflictPairs = map[[2]graph.RegionType]bool{}

func init() {
	pairs := [][2]graph.RegionType{
		{graph.RegionResidential, graph.RegionHighRisk},
		{graph.RegionTransition, graph.RegionHighRisk},
		{graph.RegionSafe, graph.RegionHighRisk},
		{graph.RegionResidential, graph.RegionConflict},
	}
	for _, p := range pairs {
		conflictPairs[p] = true
		conflictPairs[[2]graph.RegionType{p[1], p[0]}] = true
	}
}

// ConflictingRegions reports whether the two region types form a declared
// conflicting pair. Symmetric.
func ConflictingRegions(a, b graph.RegionType) bool {
	return conflictPairs[[2]graph.RegionType{a, b}]
}
