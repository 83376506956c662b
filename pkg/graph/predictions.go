package graph

// Recommendation is the route-quality gate verdict returned by the server.
type Recommendation string

const (
	RecommendProceed Recommendation = "PROCEED"
	RecommendCaution Recommendation = "CAUTION"
	RecommendSlow    Recommendation = "SLOW"
	RecommendReject  Recommendation = "REJECT"
)

// Risk level classifications for predicted hazards. The server may also emit
// ACTIVE (already hazardous) and BLOCKED markers; those pass through verbatim.
const (
	RiskLow      = "LOW"
	RiskMedium   = "MEDIUM"
	RiskHigh     = "HIGH"
	RiskCritical = "CRITICAL"
)

// TrafficPrediction maps nodes to predicted capacity usage (0-100%).
type TrafficPrediction struct {
	Nodes    map[NodeID]float64 `json:"nodes"`
	PeakHour bool               `json:"peak_hour"`
}

// Level returns the predicted traffic percentage for a node, zero if absent.
func (t *TrafficPrediction) Level(id NodeID) float64 {
	if t == nil {
		return 0
	}
	return t.Nodes[id]
}

// HazardForecast is the per-node hazard prediction.
type HazardForecast struct {
	Probability float64 `json:"probability"` // 0-100
	RiskLevel   string  `json:"risk_level"`
}

// HazardPredictions maps nodes to hazard forecasts.
type HazardPredictions struct {
	Predictions   map[NodeID]HazardForecast `json:"predictions"`
	HighRiskNodes []NodeID                  `json:"high_risk_nodes"`
	NightTime     bool                      `json:"night_time"`
}

// Probability returns the predicted hazard probability for a node, zero if
// absent.
func (h *HazardPredictions) Probability(id NodeID) float64 {
	if h == nil {
		return 0
	}
	return h.Predictions[id].Probability
}

// RouteQuality is the pre-solve quality estimate used by the recommendation
// gate.
type RouteQuality struct {
	Recommendation     Recommendation `json:"recommendation"`
	SuccessProbability float64        `json:"success_probability"` // 0-100
	Reason             string         `json:"reason"`
	EstimatedTime      float64        `json:"estimated_time"`
	EstimatedCost      float64        `json:"estimated_cost"`
	ComplexityScore    float64        `json:"complexity_score"`
}

// Predictions bundles the three prediction fragments. They are fetched
// together and applied atomically: either all three are present or none is.
type Predictions struct {
	Traffic      *TrafficPrediction `json:"traffic"`
	Hazards      *HazardPredictions `json:"hazards"`
	RouteQuality *RouteQuality      `json:"route_quality"`
}

// SolvedPath is the result of a successful solve request. It is replaced
// atomically and never partially constructed.
type SolvedPath struct {
	Path            []NodeID `json:"path"`
	Cost            float64  `json:"cost"`
	Algorithm       string   `json:"algorithm"`
	ExecutionTimeMS float64  `json:"execution_time_ms"`
	IsOptimal       bool     `json:"is_optimal"`
	QuantumMode     string   `json:"quantum_mode,omitempty"`
}

// Contains reports whether the path visits the given node.
func (p *SolvedPath) Contains(id NodeID) bool {
	if p == nil {
		return false
	}
	for _, n := range p.Path {
		if n == id {
			return true
		}
	}
	return false
}

// Sequential reports whether a and b appear at adjacent positions in the
// path, in either order.
func (p *SolvedPath) Sequential(a, b NodeID) bool {
	if p == nil {
		return false
	}
	for i := 0; i+1 < len(p.Path); i++ {
		if (p.Path[i] == a && p.Path[i+1] == b) || (p.Path[i] == b && p.Path[i+1] == a) {
			return true
		}
	}
	return false
}
