package methods

import (
	"github.com/eswald/rankedvote/ballot"
	"github.com/eswald/rankedvote/tally"
)

// Plurality is first-past-the-post: only each ballot's top row is
// counted, split evenly across a tied top. Grounded on voting.py's
// plurality().
func Plurality(ballots []ballot.Ballot, universe ballot.CandidateSet) Ranking {
	if len(universe) == 0 {
		return nil
	}

	totals := tally.NewRationalTotals(universe)
	for _, b := range ballots {
		rows := ballot.Restrict(ballot.Normalize(b.Ranks), universe)
		if len(rows) == 0 {
			continue
		}
		row := rows[0]
		for c := range row {
			totals.Add(c, b.Multiplicity, len(row))
		}
	}
	return tally.RegroupRationals(totals, true)
}
