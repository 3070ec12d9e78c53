package methods

import (
	"github.com/eswald/rankedvote/ballot"
	"github.com/eswald/rankedvote/graph"
	"github.com/eswald/rankedvote/tally"
)

// Beatpath implements the Schulze method (Cloneproof Schwartz Sequential
// Dropping): for every ordered candidate pair, the strongest path of
// majorities connecting them (a path's strength is its weakest link) is
// compared against the strongest path the other way, and the stronger
// direction wins a final edge. Grounded on voting.py's beatpath().
func Beatpath(ballots []ballot.Ballot, universe ballot.CandidateSet) Ranking {
	majorities := tally.Pairwise(ballots, universe)
	candidates := universe.Sorted()

	g := graph.New(candidates...)
	for p := range majorities {
		g.Edge(p.Winner, p.Loser)
	}

	final := graph.New(candidates...)
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			a, b := candidates[i], candidates[j]
			major := beatStrength(g, majorities, b, a)
			minor := beatStrength(g, majorities, a, b)
			switch {
			case majorityGreater(major, minor):
				final.Edge(b, a)
			case majorityGreater(minor, major):
				final.Edge(a, b)
			}
		}
	}
	return drainGraph(final)
}

// beatStrength is the strength of the strongest path from source to sink,
// where a path's strength is the weakest (For, Against) majority along it
// (max-min, the defining Schulze computation). A candidate pair with no
// connecting path has zero strength, which loses to any real majority.
func beatStrength(g *graph.Graph, majorities map[tally.Pair]tally.Majority, source, sink string) tally.Majority {
	var strength tally.Majority
	for i, path := range g.Paths(source, sink) {
		var weakest tally.Majority
		for step := 0; step+1 < len(path); step++ {
			m := majorities[tally.Pair{Winner: path[step], Loser: path[step+1]}]
			if step == 0 || majorityGreater(weakest, m) {
				weakest = m
			}
		}
		if i == 0 || majorityGreater(weakest, strength) {
			strength = weakest
		}
	}
	return strength
}

// majorityGreater orders Majority values lexicographically by (For,
// Against), matching voting.py's direct tuple comparison of (major,
// minor) pairs.
func majorityGreater(a, b tally.Majority) bool {
	if a.For != b.For {
		return a.For > b.For
	}
	return a.Against > b.Against
}
