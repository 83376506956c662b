// Package api is the REST client for the route-solver backend. Every
// mutation endpoint returns the complete updated graph, and any endpoint may
// carry an in-band error marker even with a success status; callers of this
// package never see an unchecked payload.
package api

import (
	"fmt"

	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
)

// SolveRequest is the body for /solve and /solve/compare.
type SolveRequest struct {
	Start        graph.NodeID `json:"start"`
	End          graph.NodeID `json:"end"`
	Algorithm    string       `json:"algorithm"`
	AvoidHazards bool         `json:"avoid_hazards"`
	RiskWeight   float64      `json:"risk_weight"`
	HazardWeight float64      `json:"hazard_weight"`
}

// HardSolveRequest is the body for /solve/hard.
type HardSolveRequest struct {
	Start             graph.NodeID `json:"start"`
	End               graph.NodeID `json:"end"`
	Algorithm         string       `json:"algorithm"`
	EnableConstraints bool         `json:"enable_constraints"`
}

// HardSolveResult is a solved path plus constraint-validation metrics.
type HardSolveResult struct {
	graph.SolvedPath
	IsValid          bool    `json:"is_valid"`
	PopulationServed int     `json:"population_served"`
	PopulationLeft   int     `json:"population_left"`
	VehiclesUsed     int     `json:"vehicles_used"`
	Penalty          float64 `json:"penalty"`
	AdjustedCost     float64 `json:"adjusted_cost"`
}

// AlgorithmResult is one entry of a /solve/compare response. A result either
// carries an error marker or a path; Cost is nil when the destination is
// unreachable.
type AlgorithmResult struct {
	Error           string         `json:"error,omitempty"`
	Path            []graph.NodeID `json:"path,omitempty"`
	Cost            *float64       `json:"cost,omitempty"`
	ExecutionTimeMS float64        `json:"execution_time_ms"`
	IsOptimal       bool           `json:"is_optimal"`
	QuantumMode     string         `json:"quantum_mode,omitempty"`
}

// CompareResponse maps algorithm keys to their results. Key order on the
// wire is meaningless; presentation order is fixed by the reporter.
type CompareResponse struct {
	Algorithms map[string]AlgorithmResult `json:"algorithms"`
}

// hazardRequest is the body for /graph/hazards.
type hazardRequest struct {
	NodeIDs []graph.NodeID `json:"node_ids"`
	EdgeIDs []string       `json:"edge_ids"`
	SetTo   bool           `json:"set_to"`
}

// constraintRequest is the body for /graph/constraints.
type constraintRequest struct {
	BlockedNodes []graph.NodeID `json:"blocked_nodes"`
	BlockedEdges []string       `json:"blocked_edges"`
}

// StatusError reports a non-success HTTP status or an in-band error marker.
// The two are treated identically by callers.
type StatusError struct {
	Endpoint string
	Status   int    // 0 for in-band errors
	Message  string // marker text or response detail
}

func (e *StatusError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: server reported: %s", e.Endpoint, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Endpoint, e.Status)
}
