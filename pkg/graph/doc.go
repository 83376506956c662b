// Package graph defines the evacuation graph data structures shared by the
// renderer, the style resolver, and the solve pipeline.
package graph
