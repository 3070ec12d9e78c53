// Package-level error and usage notes for graph.
//
// Failure modes:
//
//	RemoveEdge panics if the edge is absent.
//	Edge (and AcyclicEdges/RiverEdges, which call it) panics if the sink
//	is not a vertex of the graph.
//	Every other operation is total: missing vertices/edges are no-ops or
//	empty results, never errors — callers never need error handling for
//	the read-only queries (Roots, Edges, Paths).
package graph
