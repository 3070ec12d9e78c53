package methods

import (
	"math/big"
	"sort"

	"github.com/eswald/rankedvote/ballot"
	"github.com/eswald/rankedvote/tally"
)

// InstantRunoff implements ER-IRV with fractional tie-splitting: repeatedly
// totals each remaining candidate's top-of-remaining-preference weight
// (splitting a tied top row evenly among its members), declares a winner
// the instant someone exceeds half the total weight, otherwise eliminates
// the weakest tied group and continues. Grounded on voting.py's
// instantrunoff(), modified (like that function's docstring says) to
// return a full ordering rather than stop at the first winner.
func InstantRunoff(ballots []ballot.Ballot, universe ballot.CandidateSet) Ranking {
	if len(universe) == 0 {
		return nil
	}

	remaining := make(ballot.CandidateSet, len(universe))
	for c := range universe {
		remaining[c] = struct{}{}
	}

	var totalWeight int64
	for _, b := range ballots {
		totalWeight += b.Multiplicity
	}
	majorityThreshold := big.NewRat(totalWeight, 2)

	var winners, losers Ranking
	for len(remaining) > 0 {
		totals := tally.NewRationalTotals(remaining)
		for _, b := range ballots {
			rows := ballot.Restrict(ballot.Normalize(b.Ranks), universe)
			for _, row := range rows {
				possible := intersectRemaining(row, remaining)
				if len(possible) == 0 {
					continue
				}
				for _, c := range possible {
					totals.Add(c, b.Multiplicity, len(possible))
				}
				break
			}
		}

		groups := tally.RegroupRationals(totals, true)
		top := groups[0]
		if totals[top[0]].Cmp(majorityThreshold) > 0 {
			winners = append(winners, top)
			for _, c := range top {
				delete(remaining, c)
			}
			continue
		}

		bottom := groups[len(groups)-1]
		losers = append(Ranking{bottom}, losers...)
		for _, c := range bottom {
			delete(remaining, c)
		}
	}
	return append(winners, losers...)
}

func intersectRemaining(row ballot.Row, remaining ballot.CandidateSet) []ballot.Candidate {
	var out []ballot.Candidate
	for c := range row {
		if remaining.Has(c) {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
