package tally

import (
	"math/big"

	"github.com/eswald/rankedvote/ballot"
)

// RationalTotals accumulates exact fractional vote weight per candidate.
// Using math/big.Rat instead of float64 avoids the rounding drift that
// would otherwise bias a close tie one way or another between runs (spec
// §9 calls for exact rational or scaled-integer arithmetic in every method
// that splits a ballot's weight across tied or eliminated candidates).
type RationalTotals map[ballot.Candidate]*big.Rat

// NewRationalTotals seeds every candidate in universe at zero, mirroring
// Python's dict.fromkeys(candidates, 0): a candidate with no support still
// appears in the result, typically trailing in the final tied group.
func NewRationalTotals(universe ballot.CandidateSet) RationalTotals {
	t := make(RationalTotals, len(universe))
	for c := range universe {
		t[c] = new(big.Rat)
	}
	return t
}

// Add credits weight/parts of a vote's weight to candidate.
func (t RationalTotals) Add(candidate ballot.Candidate, weight int64, parts int) {
	if t[candidate] == nil {
		t[candidate] = new(big.Rat)
	}
	t[candidate].Add(t[candidate], big.NewRat(weight, int64(parts)))
}

// Sub debits weight/parts of a vote's weight from candidate, used by
// Borda's over/under zero-sum scoring.
func (t RationalTotals) Sub(candidate ballot.Candidate, weight int64, parts int) {
	if t[candidate] == nil {
		t[candidate] = new(big.Rat)
	}
	t[candidate].Sub(t[candidate], big.NewRat(weight, int64(parts)))
}
