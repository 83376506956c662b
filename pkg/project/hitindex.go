package project

import (
	"math"

	"github.com/tidwall/rtree"

	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
)

// HitIndex resolves a display-space pointer position to the node drawn
// there. It is rebuilt from the same projection the renderer used, so hits
// always agree with what is on screen.
type HitIndex struct {
	tr rtree.RTreeG[graph.NodeID]
}

// BuildHitIndex projects every node and indexes its screen position.
func BuildHitIndex(nodes []graph.Node, p *Projection) *HitIndex {
	h := &HitIndex{}
	for i := range nodes {
		x, y := p.Screen(&nodes[i])
		h.tr.Insert([2]float64{x, y}, [2]float64{x, y}, nodes[i].ID)
	}
	return h
}

// NodeAt returns the node closest to the pointer position within the given
// radius, and whether one was found.
func (h *HitIndex) NodeAt(x, y, radius float64) (graph.NodeID, bool) {
	var (
		best     graph.NodeID
		bestDist = math.Inf(1)
		found    bool
	)
	h.tr.Search(
		[2]float64{x - radius, y - radius},
		[2]float64{x + radius, y + radius},
		func(min, max [2]float64, id graph.NodeID) bool {
			dx, dy := min[0]-x, min[1]-y
			if d := math.Hypot(dx, dy); d <= radius && d < bestDist {
				best, bestDist, found = id, d, true
			}
			return true
		},
	)
	return best, found
}
