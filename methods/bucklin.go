package methods

import (
	"math/big"

	"github.com/eswald/rankedvote/ballot"
	"github.com/eswald/rankedvote/tally"
)

// Bucklin (the Grand Junction method) repeats plurality-style tallying at
// successively deeper rank thresholds — round n counts each ballot's
// support among its first n effective preferences, splitting a row that
// straddles the threshold fractionally — stopping at the first round
// where some candidate exceeds half the total weight. If no round ever
// produces a majority, the whole universe is returned as one tied group.
// Grounded on voting.py's bucklin().
func Bucklin(ballots []ballot.Ballot, universe ballot.CandidateSet) Ranking {
	if len(universe) == 0 {
		return nil
	}

	var totalWeight int64
	for _, b := range ballots {
		totalWeight += b.Multiplicity
	}
	majorityThreshold := big.NewRat(totalWeight, 2)

	for round := 1; round <= len(universe); round++ {
		totals := tally.NewRationalTotals(universe)
		for _, b := range ballots {
			rows := ballot.Restrict(ballot.Normalize(b.Ranks), universe)

			seen := 0
			for _, row := range rows {
				remaining := round - seen
				var weight *big.Rat
				if len(row) > remaining {
					// Only part of this row fits within the threshold;
					// divide evenly so no ballot counts more than once.
					weight = big.NewRat(b.Multiplicity*int64(remaining), int64(len(row)))
				} else {
					weight = big.NewRat(b.Multiplicity, 1)
				}
				for c := range row {
					totals[c].Add(totals[c], weight)
				}

				seen += len(row)
				if seen >= round {
					break
				}
			}
		}

		groups := tally.RegroupRationals(totals, true)
		if totals[groups[0][0]].Cmp(majorityThreshold) > 0 {
			return groups
		}
	}

	return Ranking{universe.Sorted()}
}
