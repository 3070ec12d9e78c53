package methods

import (
	"sort"

	"github.com/eswald/rankedvote/graph"
	"github.com/eswald/rankedvote/tally"
)

// drainGraph repeatedly pops the graph's root layer until it is empty,
// appending each sorted layer as one Ranking group. This is the "while
// graph: yield graph.pop()" idiom shared by RankedPairs, Beatpath and
// River (voting.py).
func drainGraph(g *graph.Graph) Ranking {
	var out Ranking
	for !g.Empty() {
		roots := g.Pop()
		sort.Strings(roots)
		out = append(out, roots)
	}
	return out
}

// toPairs converts a RegroupMajorities group into graph.Pair edges.
func toPairs(group []tally.Pair) []graph.Pair {
	pairs := make([]graph.Pair, len(group))
	for i, p := range group {
		pairs[i] = graph.Pair{p.Winner, p.Loser}
	}
	return pairs
}
