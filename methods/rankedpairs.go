package methods

import (
	"github.com/eswald/rankedvote/ballot"
	"github.com/eswald/rankedvote/graph"
	"github.com/eswald/rankedvote/tally"
)

// RankedPairs implements the Tideman method: pairwise majorities are
// locked in from strongest to weakest, skipping any that would close a
// cycle, and the resulting partial order is drained root layer by root
// layer. Grounded on voting.py's rankedpairs(), modified (per that
// function's own comment) to ignore candidates outside the universe
// rather than treat them as unanimously worst.
func RankedPairs(ballots []ballot.Ballot, universe ballot.CandidateSet) Ranking {
	majorities := tally.Pairwise(ballots, universe)
	g := graph.New(universe.Sorted()...)
	for _, group := range tally.RegroupMajorities(majorities, true) {
		g.AcyclicEdges(toPairs(group))
	}
	return drainGraph(g)
}
