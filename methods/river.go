package methods

import (
	"github.com/eswald/rankedvote/ballot"
	"github.com/eswald/rankedvote/graph"
	"github.com/eswald/rankedvote/tally"
)

// River is a compromise between Beatpath and Ranked Pairs: each majority
// group is offered to the graph as branching-free edges first (at most one
// inbound edge per sink, per group), and whatever a group rejects is
// retried, weakest rejection last, as ordinary acyclic edges once every
// group has had its branching-free turn. Grounded on voting.py's river().
func River(ballots []ballot.Ballot, universe ballot.CandidateSet) Ranking {
	majorities := tally.Pairwise(ballots, universe)
	g := graph.New(universe.Sorted()...)

	var retries [][]graph.Pair
	for _, group := range tally.RegroupMajorities(majorities, true) {
		if rejected := g.RiverEdges(toPairs(group)); len(rejected) > 0 {
			retries = append(retries, rejected)
		}
	}
	for _, pairs := range retries {
		g.AcyclicEdges(pairs)
	}
	return drainGraph(g)
}
