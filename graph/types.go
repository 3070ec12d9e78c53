// Package graph implements the mutable directed graph abstraction shared by
// the Condorcet-family voting methods (RankedPairs, Beatpath, River,
// Minimax): cycle-safe edge insertion, bulk insertion with cycle pruning,
// branching-free ("river") insertion, root extraction, and path
// enumeration.
//
// A Graph is scratch state for exactly one tabulation call: it is built,
// mutated, and discarded within a single voting-method invocation, never
// shared across goroutines or calls (spec §5 — "no cross-call state, no
// global mutable state"). Unlike core.Graph in the wider lvlath lineage,
// it therefore carries no internal locking: callers that need one Graph
// visible to multiple goroutines must synchronize externally.
//
// Edges are stored as inbound adjacency, keyed by sink, because every
// consumer (Roots, Pop, cycle pruning) asks "who points at me", never "who
// do I point at".
package graph

// Graph is a directed graph over a fixed vertex set, storing each vertex's
// inbound edges (source -> sink recorded under inbound[sink]).
type Graph struct {
	inbound map[string]map[string]struct{}
}

// New creates a Graph over exactly the given vertices, with no edges.
func New(vertices ...string) *Graph {
	g := &Graph{inbound: make(map[string]map[string]struct{}, len(vertices))}
	for _, v := range vertices {
		g.inbound[v] = make(map[string]struct{})
	}
	return g
}

// Empty reports whether the graph has no vertices left, mirroring the
// source's truth-value-of-graph convention used to drive "while graph:"
// pop loops.
func (g *Graph) Empty() bool {
	return len(g.inbound) == 0
}

// Edge adds a directed edge from source to sink with no safety checks
// against cycles or duplication (spec §4.2 — "add inbound s to t; no
// safety checks").
func (g *Graph) Edge(source, sink string) {
	g.inbound[sink][source] = struct{}{}
}

// HasEdge reports whether source -> sink currently exists.
func (g *Graph) HasEdge(source, sink string) bool {
	_, ok := g.inbound[sink][source]
	return ok
}

// RemoveEdge deletes a specific edge. It panics if the edge is absent,
// matching spec §4.2's failure semantics for this operation.
func (g *Graph) RemoveEdge(source, sink string) {
	if !g.HasEdge(source, sink) {
		panic("graph: RemoveEdge: no such edge " + source + "->" + sink)
	}
	delete(g.inbound[sink], source)
}

// RemoveVertex deletes v and every edge touching it.
func (g *Graph) RemoveVertex(v string) {
	delete(g.inbound, v)
	for _, sources := range g.inbound {
		delete(sources, v)
	}
}

// Roots returns every vertex with no inbound edges.
func (g *Graph) Roots() []string {
	var roots []string
	for v, inbound := range g.inbound {
		if len(inbound) == 0 {
			roots = append(roots, v)
		}
	}
	return roots
}

// Pop atomically collects Roots() and removes each of them from the graph,
// so that the next call sees the next layer of the partial order.
func (g *Graph) Pop() []string {
	roots := g.Roots()
	for _, v := range roots {
		delete(g.inbound, v)
	}
	for _, sources := range g.inbound {
		for _, v := range roots {
			delete(sources, v)
		}
	}
	return roots
}

// Edges enumerates every (source, sink) pair currently in the graph. Order
// is unspecified; callers that need determinism sort the result.
func (g *Graph) Edges() [][2]string {
	var out [][2]string
	for sink, sources := range g.inbound {
		for source := range sources {
			out = append(out, [2]string{source, sink})
		}
	}
	return out
}
