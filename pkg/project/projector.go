// Package project maps abstract graph-space coordinates into display space:
// either a pixel canvas rectangle or a fixed geographic bounding box. It also
// provides an R-tree hit index for resolving pointer positions to nodes.
package project

import (
	"github.com/paulmach/orb"

	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
)

// Canvas describes a pixel projection target.
type Canvas struct {
	Width   float64
	Height  float64
	Padding float64
}

// Projection holds the per-axis min-max bounds of one node collection,
// computed fresh for each render pass. Bounds are never cached across calls:
// mutations and window resizes can change both geometry and target size.
type Projection struct {
	canvas                 Canvas
	minX, maxX, minY, maxY float64
	empty                  bool
}

// NewProjection computes graph-space bounds over the given node collection
// for the given canvas.
func NewProjection(nodes []graph.Node, c Canvas) *Projection {
	p := &Projection{canvas: c, empty: len(nodes) == 0}
	if p.empty {
		return p
	}
	p.minX, p.maxX = nodes[0].X, nodes[0].X
	p.minY, p.maxY = nodes[0].Y, nodes[0].Y
	for _, n := range nodes[1:] {
		if n.X < p.minX {
			p.minX = n.X
		}
		if n.X > p.maxX {
			p.maxX = n.X
		}
		if n.Y < p.minY {
			p.minY = n.Y
		}
		if n.Y > p.maxY {
			p.maxY = n.Y
		}
	}
	return p
}

// Screen maps a node's graph-space coordinates into canvas pixels. The node
// with minimum x lands at padding; the node with maximum x lands at
// width-padding, and likewise for y.
func (p *Projection) Screen(n *graph.Node) (x, y float64) {
	x = p.canvas.Padding + p.scale(n.X, p.minX, p.maxX)*(p.canvas.Width-2*p.canvas.Padding)
	y = p.canvas.Padding + p.scale(n.Y, p.minY, p.maxY)*(p.canvas.Height-2*p.canvas.Padding)
	return x, y
}

// scale normalizes v into [0,1]. A degenerate axis (zero range) uses unit
// scale instead of dividing by zero, which parks every node at the same
// stable offset.
func (p *Projection) scale(v, min, max float64) float64 {
	if max == min {
		return v - min
	}
	return (v - min) / (max - min)
}

// GeoBounds is a fixed geographic projection target.
type GeoBounds struct {
	Bound orb.Bound
}

// NewGeoBounds builds a geographic target from corner coordinates.
func NewGeoBounds(minLon, minLat, maxLon, maxLat float64) GeoBounds {
	return GeoBounds{Bound: orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}}
}

// LatLng maps a node into the geographic bounding box by linear
// interpolation of the normalized ratio. The vertical axis is inverted:
// increasing graph-Y maps to decreasing latitude.
func (p *Projection) LatLng(n *graph.Node, g GeoBounds) orb.Point {
	rx := p.scale(n.X, p.minX, p.maxX)
	ry := p.scale(n.Y, p.minY, p.maxY)
	lon := g.Bound.Min.Lon() + rx*(g.Bound.Max.Lon()-g.Bound.Min.Lon())
	lat := g.Bound.Max.Lat() - ry*(g.Bound.Max.Lat()-g.Bound.Min.Lat())
	return orb.Point{lon, lat}
}
