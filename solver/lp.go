package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// SolveLP finds a non-negative permutation-count vector satisfying
// problem's constraints, minimizing the total ballot count, via gonum's
// simplex implementation. Every strict Inequality (Left > Right) becomes
// Left - Right - slack = 1 with a fresh non-negative slack variable; every
// equality becomes Left - Right = 0. The objective weights every
// permutation column at 1 and every slack column at 0, so simplex finds
// the smallest feasible Σ n_p (spec: "synthesize a minimal set of
// ballots"), not merely an arbitrary feasible vertex.
func SolveLP(problem *Problem) (*Result, error) {
	numPerms := len(problem.Permutations)
	numSlack := 0
	for _, c := range problem.Constraints {
		if c.Strict {
			numSlack++
		}
	}
	hasTotal := problem.TotalBallots > 0

	numRows := len(problem.Constraints)
	if hasTotal {
		numRows++
	}
	numCols := numPerms + numSlack

	rows := make([]float64, numRows*numCols)
	at := func(r, c int) int { return r*numCols + c }
	b := make([]float64, numRows)

	slack := numPerms
	for i, cons := range problem.Constraints {
		left := problem.Sums[cons.Left]
		right := problem.Sums[cons.Right]
		for j, idx := range left.Permutations {
			rows[at(i, idx)] += float64(left.WeightAt(j))
		}
		for j, idx := range right.Permutations {
			rows[at(i, idx)] -= float64(right.WeightAt(j))
		}
		if cons.Strict {
			rows[at(i, slack)] = -1
			slack++
			b[i] = 1
		} else {
			b[i] = 0
		}
	}
	if hasTotal {
		last := len(problem.Constraints)
		for idx := range problem.Permutations {
			rows[at(last, idx)] = 1
		}
		b[last] = float64(problem.TotalBallots)
	}

	// Objective: minimize the total number of ballots (spec: "synthesize a
	// minimal set of ballots"), i.e. minimize Σ n_p over the permutation
	// columns. Slack columns carry no cost.
	c := make([]float64, numCols)
	for i := 0; i < numPerms; i++ {
		c[i] = 1
	}
	A := mat.NewDense(numRows, numCols, rows)

	_, x, err := lp.Simplex(c, A, b, 0, nil)
	if err != nil {
		return &Result{Problem: problem, Status: StatusInfeasible}, fmt.Errorf("solver: SolveLP: %w: %v", ErrInfeasible, err)
	}

	counts := make([]int64, numPerms)
	for i := 0; i < numPerms; i++ {
		counts[i] = int64(x[i] + 0.5) // simplex vertices land on (near-)integers for this unimodular system
	}
	return &Result{Problem: problem, Counts: counts, Status: StatusSolved}, nil
}
