// Package tally computes the pairwise-majority map shared by every
// Condorcet-family method and the Regroup primitive used to turn any
// totally-ordered scoring map into tie-aware descending (or ascending)
// rank groups.
package tally

import (
	"github.com/eswald/rankedvote/ballot"
)

// Pair is an ordered (winner, loser) candidate comparison.
type Pair struct {
	Winner, Loser ballot.Candidate
}

// Majority holds the strict-majority vote counts for one Pair.
type Majority struct {
	For     int64 // ballots ranking Winner strictly above Loser
	Against int64 // ballots ranking Loser strictly above Winner
}

// Pairwise walks every ballot's normalized, universe-restricted rows,
// accumulating the "ranked above" relation, and folds the result into
// strict-majority entries only: (a,b) is present iff more ballot-weight
// ranks a above b than ranks b above a. At most one of (a,b) and (b,a)
// appears, never both.
func Pairwise(ballots []ballot.Ballot, universe ballot.CandidateSet) map[Pair]Majority {
	comparisons := make(map[Pair]int64)
	for _, b := range ballots {
		rows := ballot.Restrict(ballot.Normalize(b.Ranks), universe)

		above := make(map[ballot.Candidate]struct{})
		for _, row := range rows {
			for candidate := range row {
				for former := range above {
					comparisons[Pair{former, candidate}] += b.Multiplicity
				}
			}
			for candidate := range row {
				above[candidate] = struct{}{}
			}
		}
	}

	majorities := make(map[Pair]Majority, len(comparisons))
	for p, major := range comparisons {
		minor := comparisons[Pair{p.Loser, p.Winner}]
		if major > minor {
			majorities[p] = Majority{For: major, Against: minor}
		}
	}
	return majorities
}
