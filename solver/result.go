package solver

import "github.com/eswald/rankedvote/ballot"

// Status reports how a Solve* call concluded.
type Status int

const (
	// StatusSolved means Counts satisfies every constraint exactly.
	StatusSolved Status = iota
	// StatusInfeasible means SolveLP's simplex phase proved no
	// non-negative assignment can satisfy every constraint.
	StatusInfeasible
	// StatusNonConvergent means SolveIterative exhausted its iteration
	// budget with nonzero constraint error remaining; Counts is its best
	// attempt, not a guaranteed solution.
	StatusNonConvergent
)

// Result is the outcome of a Solve* call.
type Result struct {
	Problem    *Problem
	Counts     []int64 // parallel to Problem.Permutations
	Status     Status
	Iterations int // SolveIterative's iteration count; 0 for SolveLP
}

// Ballots materializes a solved permutation-count vector as the ballots it
// represents: one Ballot per permutation with a nonzero count, each a
// fully-ranked (untied) sequence of single-candidate Rows.
func (r *Result) Ballots() []ballot.Ballot {
	var out []ballot.Ballot
	for i, perm := range r.Problem.Permutations {
		count := r.Counts[i]
		if count == 0 {
			continue
		}
		rows := make([]ballot.Row, len(perm))
		for j, c := range perm {
			rows[j] = ballot.NewRow(c)
		}
		out = append(out, ballot.Ballot{Ranks: rows, Multiplicity: count})
	}
	return out
}
