package graph

// Pair is an ordered (source, sink) edge candidate.
type Pair [2]string

// AcyclicEdges inserts every pair, then removes any that now participate
// in a cycle, and reports how many survived. Pruning decisions are made
// against the snapshot of the graph with ALL of this batch's edges
// present — never edge-by-edge — so that ties within one Regroup group
// are pruned symmetrically regardless of iteration order (this is what
// lets RankedPairs treat a group of equal-strength majorities atomically;
// see methods.RankedPairs).
func (g *Graph) AcyclicEdges(pairs []Pair) int {
	completed := make(map[Pair]struct{}, len(pairs))
	for _, p := range pairs {
		g.Edge(p[0], p[1])
		completed[p] = struct{}{}
	}

	cyclic := g.pruneCycles(completed)
	return len(completed) - len(cyclic)
}

// pruneCycles removes every edge in candidates that closes a cycle,
// judged against the graph state at the moment pruneCycles is called
// (i.e. with every candidate already inserted). It returns the removed
// set.
func (g *Graph) pruneCycles(candidates map[Pair]struct{}) map[Pair]struct{} {
	cyclic := make(map[Pair]struct{})
	for p := range candidates {
		if g.reaches(p[1], p[0]) {
			cyclic[p] = struct{}{}
		}
	}
	for p := range cyclic {
		g.RemoveEdge(p[0], p[1])
	}
	return cyclic
}

// reaches reports whether a directed path sink -> ... -> source already
// exists, by walking backward (via inbound sets) from source. If so,
// adding source -> sink would close a cycle sink -> ... -> source -> sink.
func (g *Graph) reaches(sink, source string) bool {
	seen := make(map[string]struct{})
	frontier := []string{source}
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}

		inbound := g.inbound[v]
		if _, ok := inbound[sink]; ok {
			return true
		}
		for u := range inbound {
			if _, ok := seen[u]; !ok {
				frontier = append(frontier, u)
			}
		}
	}
	return false
}

// RiverEdges groups pairs by sink and accepts only the sinks that receive
// exactly one candidate source from this batch AND have no pre-existing
// inbound edge; every other sink's candidates are rejected outright.
// Accepted edges are then cycle-pruned like AcyclicEdges. It returns the
// full rejected set (branching conflicts plus any cycle prunes).
func (g *Graph) RiverEdges(pairs []Pair) []Pair {
	bySink := make(map[string][]string)
	for _, p := range pairs {
		bySink[p[1]] = append(bySink[p[1]], p[0])
	}

	var rejected []Pair
	completed := make(map[Pair]struct{})
	for sink, sources := range bySink {
		if len(g.inbound[sink]) > 0 || len(sources) > 1 {
			for _, source := range sources {
				rejected = append(rejected, Pair{source, sink})
			}
			continue
		}
		source := sources[0]
		g.Edge(source, sink)
		completed[Pair{source, sink}] = struct{}{}
	}

	cyclic := g.pruneCycles(completed)
	for p := range cyclic {
		rejected = append(rejected, p)
	}

	return rejected
}
