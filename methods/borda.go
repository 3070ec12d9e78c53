package methods

import (
	"github.com/eswald/rankedvote/ballot"
	"github.com/eswald/rankedvote/tally"
)

// Borda is the zero-sum Borda count: each ballot first subtracts points
// for every candidate ranked above a given row, then adds points for
// every candidate ranked below it, so that a candidate an incomplete
// ballot never mentions nets to zero rather than being silently harmed or
// helped. Grounded on voting.py's borda().
func Borda(ballots []ballot.Ballot, universe ballot.CandidateSet) Ranking {
	if len(universe) == 0 {
		return nil
	}

	ratings := tally.NewRationalTotals(universe)
	for _, b := range ballots {
		rows := ballot.Restrict(ballot.Normalize(b.Ranks), universe)

		seen := 0
		for _, row := range rows {
			for c := range row {
				ratings.Sub(c, b.Multiplicity*int64(seen), 1)
			}
			seen += len(row)
		}
		for _, row := range rows {
			seen -= len(row)
			for c := range row {
				ratings.Add(c, b.Multiplicity*int64(seen), 1)
			}
		}
	}
	return tally.RegroupRationals(ratings, true)
}
