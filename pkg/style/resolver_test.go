package style

import (
	"testing"

	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
	"github.com/Muayad-Arafeh/Qscape/pkg/view"
)

func emptySnap() view.Snapshot {
	return view.Snapshot{
		Start:   view.NoSelection,
		End:     view.NoSelection,
		Hazard:  map[graph.NodeID]bool{},
		Blocked: map[graph.NodeID]bool{},
	}
}

func withPredictions(snap view.Snapshot, prob map[graph.NodeID]float64, traffic map[graph.NodeID]float64) view.Snapshot {
	forecasts := make(map[graph.NodeID]graph.HazardForecast, len(prob))
	for id, p := range prob {
		forecasts[id] = graph.HazardForecast{Probability: p, RiskLevel: graph.RiskHigh}
	}
	snap.Predictions = &graph.Predictions{
		Traffic:      &graph.TrafficPrediction{Nodes: traffic},
		Hazards:      &graph.HazardPredictions{Predictions: forecasts},
		RouteQuality: &graph.RouteQuality{Recommendation: graph.RecommendProceed},
	}
	return snap
}

func TestNodeRuleOrder(t *testing.T) {
	want := []string{
		"blocked", "start", "end", "hazard", "path",
		"predicted-critical", "predicted-elevated",
		"traffic-heavy", "traffic-busy", "traffic-light",
		"region",
	}
	got := NodeRuleNames()
	if len(got) != len(want) {
		t.Fatalf("rule table has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rule[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNodePrecedenceFirstMatchWins(t *testing.T) {
	n := &graph.Node{ID: 7, RegionType: graph.RegionResidential}

	// A node that is blocked, selected, hazardous, on the path, and under
	// every prediction overlay at once must resolve as blocked.
	snap := emptySnap()
	snap.Blocked[7] = true
	snap.Start = 7
	snap.Hazard[7] = true
	snap.Solved = &graph.SolvedPath{Path: []graph.NodeID{7}}
	snap = withPredictions(snap, map[graph.NodeID]float64{7: 99}, map[graph.NodeID]float64{7: 99})

	s, rule := ResolveNode(n, snap)
	if rule != "blocked" {
		t.Fatalf("rule = %q, want blocked", rule)
	}
	if s.Fill != FillBlocked {
		t.Errorf("fill = %q, want blocked fill", s.Fill)
	}
	if s.Radius <= baseRadius {
		t.Errorf("blocked radius %g must exceed base radius %g", s.Radius, baseRadius)
	}
}

func TestDangerousRegionKeepsFillUnderCriticalPrediction(t *testing.T) {
	for _, region := range []graph.RegionType{graph.RegionHighRisk, graph.RegionConflict} {
		n := &graph.Node{ID: 3, RegionType: region}
		snap := withPredictions(emptySnap(), map[graph.NodeID]float64{3: 85}, nil)

		s, rule := ResolveNode(n, snap)
		if rule != "predicted-critical" {
			t.Fatalf("%s: rule = %q, want predicted-critical", region, rule)
		}
		if s.Fill != RegionFill(region) {
			t.Errorf("%s: fill = %q, want region base %q", region, s.Fill, RegionFill(region))
		}
		if s.Border != BorderPredCritical {
			t.Errorf("%s: border = %q, want critical border", region, s.Border)
		}
		if s.BorderWidth <= 1.5 {
			t.Errorf("%s: border width %g must grow under critical prediction", region, s.BorderWidth)
		}
	}
}

func TestNonDangerousRegionGetsTintedFill(t *testing.T) {
	n := &graph.Node{ID: 3, RegionType: graph.RegionResidential}

	snap := withPredictions(emptySnap(), map[graph.NodeID]float64{3: 85}, nil)
	s, _ := ResolveNode(n, snap)
	if s.Fill != FillPredCritical {
		t.Errorf("fill = %q, want critical tint", s.Fill)
	}

	snap = withPredictions(emptySnap(), map[graph.NodeID]float64{3: 55}, nil)
	s, rule := ResolveNode(n, snap)
	if rule != "predicted-elevated" {
		t.Fatalf("rule = %q, want predicted-elevated", rule)
	}
	if s.Fill != FillPredElevated {
		t.Errorf("fill = %q, want elevated tint", s.Fill)
	}
}

func TestManualHazardBeatsPrediction(t *testing.T) {
	n := &graph.Node{ID: 5, RegionType: graph.RegionHighRisk, Hazard: true}
	snap := withPredictions(emptySnap(), map[graph.NodeID]float64{5: 90}, nil)

	s, rule := ResolveNode(n, snap)
	if rule != "hazard" {
		t.Fatalf("rule = %q, want hazard", rule)
	}
	if s.Fill != FillHazard {
		t.Errorf("fill = %q, want manual hazard fill", s.Fill)
	}
}

func TestTrafficTiers(t *testing.T) {
	tests := []struct {
		name     string
		region   graph.RegionType
		traffic  float64
		wantRule string
		wantFill string
	}{
		{"heavy residential", graph.RegionResidential, 80, "traffic-heavy", FillTrafficHeavy},
		{"heavy high-risk keeps fill", graph.RegionHighRisk, 80, "traffic-heavy", RegionFill(graph.RegionHighRisk)},
		{"busy residential", graph.RegionResidential, 60, "traffic-busy", FillTrafficBusy},
		{"busy high-risk skipped", graph.RegionHighRisk, 60, "region", RegionFill(graph.RegionHighRisk)},
		{"light safe", graph.RegionSafe, 40, "traffic-light", FillTrafficLight},
		{"light conflict skipped", graph.RegionConflict, 40, "region", RegionFill(graph.RegionConflict)},
		{"quiet", graph.RegionSafe, 10, "region", RegionFill(graph.RegionSafe)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &graph.Node{ID: 1, RegionType: tt.region}
			snap := withPredictions(emptySnap(), nil, map[graph.NodeID]float64{1: tt.traffic})
			s, rule := ResolveNode(n, snap)
			if rule != tt.wantRule {
				t.Errorf("rule = %q, want %q", rule, tt.wantRule)
			}
			if s.Fill != tt.wantFill {
				t.Errorf("fill = %q, want %q", s.Fill, tt.wantFill)
			}
		})
	}
}

func TestUnrecognizedRegionUsesNeutralFill(t *testing.T) {
	n := &graph.Node{ID: 1, RegionType: "Industrial Zone"}
	s, rule := ResolveNode(n, emptySnap())
	if rule != "region" {
		t.Fatalf("rule = %q, want region", rule)
	}
	if s.Fill != FillNeutral {
		t.Errorf("fill = %q, want neutral default", s.Fill)
	}
}

func TestNoPredictionsMeansNoOverlayRules(t *testing.T) {
	n := &graph.Node{ID: 1, RegionType: graph.RegionResidential}
	_, rule := ResolveNode(n, emptySnap())
	if rule != "region" {
		t.Errorf("rule = %q, want region when no predictions are cached", rule)
	}
}

func TestEdgePrecedence(t *testing.T) {
	from := &graph.Node{ID: 1, RegionType: graph.RegionResidential}
	to := &graph.Node{ID: 2, RegionType: graph.RegionResidential}

	snap := emptySnap()
	snap.Solved = &graph.SolvedPath{Path: []graph.NodeID{1, 2}}

	e := &graph.Edge{From: 1, To: 2, Risk: 5, Blocked: true, Hazard: true}
	if _, rule := ResolveEdge(e, from, to, snap); rule != "blocked" {
		t.Errorf("rule = %q, want blocked", rule)
	}

	e = &graph.Edge{From: 1, To: 2, Risk: 5, Hazard: true}
	if _, rule := ResolveEdge(e, from, to, snap); rule != "hazard" {
		t.Errorf("rule = %q, want hazard", rule)
	}

	e = &graph.Edge{From: 1, To: 2, Risk: 5}
	s, rule := ResolveEdge(e, from, to, snap)
	if rule != "path" {
		t.Errorf("rule = %q, want path", rule)
	}
	if s.Color != EdgePath {
		t.Errorf("color = %q, want path color", s.Color)
	}

	// Reverse-order adjacency also counts as sequential.
	e = &graph.Edge{From: 2, To: 1, Risk: 5}
	if _, rule := ResolveEdge(e, from, to, snap); rule != "path" {
		t.Errorf("reverse edge rule = %q, want path", rule)
	}

	// Nodes on the path but not adjacent are not sequential.
	snap.Solved = &graph.SolvedPath{Path: []graph.NodeID{1, 3, 2}}
	e = &graph.Edge{From: 1, To: 2, Risk: 5}
	if _, rule := ResolveEdge(e, from, to, snap); rule != "risk" {
		t.Errorf("non-adjacent rule = %q, want risk", rule)
	}
}

func TestEdgeRiskTiers(t *testing.T) {
	from := &graph.Node{ID: 1, RegionType: graph.RegionResidential}
	to := &graph.Node{ID: 2, RegionType: graph.RegionResidential}
	snap := emptySnap()

	tests := []struct {
		risk float64
		want string
	}{
		{4.5, EdgeRiskHigh},
		{4.0, EdgeRiskHigh},
		{3.9, EdgeRiskMedium},
		{2.0, EdgeRiskMedium},
		{1.9, EdgeRiskLow},
		{0, EdgeRiskLow},
	}
	for _, tt := range tests {
		e := &graph.Edge{From: 1, To: 2, Risk: tt.risk}
		s, _ := ResolveEdge(e, from, to, snap)
		if s.Color != tt.want {
			t.Errorf("risk %g: color = %q, want %q", tt.risk, s.Color, tt.want)
		}
	}
}

func TestConflictingRegionPairDashesRiskTierOnly(t *testing.T) {
	res := &graph.Node{ID: 1, RegionType: graph.RegionResidential}
	hr := &graph.Node{ID: 2, RegionType: graph.RegionHighRisk}
	snap := emptySnap()

	e := &graph.Edge{From: 1, To: 2, Risk: 3.5}
	s, rule := ResolveEdge(e, res, hr, snap)
	if rule != "risk-conflict" {
		t.Fatalf("rule = %q, want risk-conflict", rule)
	}
	if !s.Dashed {
		t.Error("conflicting pair edge must be dashed")
	}
	if s.Opacity >= 0.9 {
		t.Errorf("opacity = %g, want reduced", s.Opacity)
	}

	// Higher-precedence styling suppresses the conflict treatment.
	snap.Solved = &graph.SolvedPath{Path: []graph.NodeID{1, 2}}
	s, rule = ResolveEdge(e, res, hr, snap)
	if rule != "path" {
		t.Fatalf("rule = %q, want path", rule)
	}
	if s.Dashed {
		t.Error("path edge must not be dashed even across conflicting regions")
	}
}

func TestConflictingRegionsSymmetric(t *testing.T) {
	if !ConflictingRegions(graph.RegionHighRisk, graph.RegionSafe) {
		t.Error("expected safe/high-risk to conflict in both orders")
	}
	if ConflictingRegions(graph.RegionSafe, graph.RegionSafe) {
		t.Error("safe/safe must not conflict")
	}
}
