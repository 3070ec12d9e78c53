package methods

import (
	"sort"

	"github.com/eswald/rankedvote/ballot"
	"github.com/eswald/rankedvote/graph"
	"github.com/eswald/rankedvote/tally"
)

// Minimax (the Simpson / Successive Reversal method) selects the
// candidate(s) unbeaten by pairwise majority; if none exist, it drops
// every edge in the next-weakest group of equal majorities and tries
// again, repeating until a root layer emerges. Grounded on voting.py's minimax().
func Minimax(ballots []ballot.Ballot, universe ballot.CandidateSet) Ranking {
	majorities := tally.Pairwise(ballots, universe)
	g := graph.New(universe.Sorted()...)
	for p := range majorities {
		g.Edge(p.Winner, p.Loser)
	}

	// Weakest majority first: these are the first candidates for removal
	// when no root layer exists.
	groups := tally.RegroupMajorities(majorities, false)

	var out Ranking
	next := 0
	for !g.Empty() {
		winners := g.Pop()
		if len(winners) > 0 {
			sort.Strings(winners)
			out = append(out, winners)
			continue
		}
		if next >= len(groups) {
			break
		}
		for _, p := range groups[next] {
			if g.HasEdge(p.Winner, p.Loser) {
				g.RemoveEdge(p.Winner, p.Loser)
			}
		}
		next++
	}
	return out
}
