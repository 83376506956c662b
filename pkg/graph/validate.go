package graph

import "fmt"

// ValidationError describes a single structural validation finding.
type ValidationError struct {
	NodeID  NodeID // node the finding refers to (-1 if graph-level)
	Message string
}

func (e ValidationError) Error() string {
	if e.NodeID < 0 {
		return e.Message
	}
	return fmt.Sprintf("node %d: %s", e.NodeID, e.Message)
}

// Validate runs structural checks on a graph received from the server and
// returns all findings. An empty slice means the graph is well-formed. The
// function is read-only and never mutates the graph.
//
// Invariants checked:
//   - node ids are unique
//   - every edge references existing node ids
//   - edge cost and risk are non-negative
func Validate(g *Graph) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateNodeIDs(g)...)
	errs = append(errs, validateEdgeRefs(g)...)
	errs = append(errs, validateEdgeWeights(g)...)
	return errs
}

func validateNodeIDs(g *Graph) []ValidationError {
	var errs []ValidationError
	seen := make(map[NodeID]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if seen[n.ID] {
			errs = append(errs, ValidationError{
				NodeID:  n.ID,
				Message: "duplicate node id",
			})
		}
		seen[n.ID] = true
	}
	return errs
}

func validateEdgeRefs(g *Graph) []ValidationError {
	var errs []ValidationError
	ids := make(map[NodeID]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	for _, e := range g.Edges {
		if !ids[e.From] {
			errs = append(errs, ValidationError{
				NodeID:  -1,
				Message: fmt.Sprintf("edge %d->%d: unknown from-node", e.From, e.To),
			})
		}
		if !ids[e.To] {
			errs = append(errs, ValidationError{
				NodeID:  -1,
				Message: fmt.Sprintf("edge %d->%d: unknown to-node", e.From, e.To),
			})
		}
	}
	return errs
}

func validateEdgeWeights(g *Graph) []ValidationError {
	var errs []ValidationError
	for _, e := range g.Edges {
		if e.Cost < 0 {
			errs = append(errs, ValidationError{
				NodeID:  -1,
				Message: fmt.Sprintf("edge %d->%d: negative cost %g", e.From, e.To, e.Cost),
			})
		}
		if e.Risk < 0 {
			errs = append(errs, ValidationError{
				NodeID:  -1,
				Message: fmt.Sprintf("edge %d->%d: negative risk %g", e.From, e.To, e.Risk),
			})
		}
	}
	return errs
}
