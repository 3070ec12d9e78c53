package solver

import "sort"

// SolveIterative searches for a feasible permutation-count vector by
// repeatedly moving one unit of weight from the variable most responsible
// for constraint violations to the one least responsible, until every
// constraint's error reaches zero or the iteration budget runs out.
// Ported from matrixexpansion.py's CustomSolver, whose own comment notes
// it exists because even a dedicated constraint solver ("Minion") was too
// slow for this problem size — this is a best-effort heuristic, not a
// certificate of infeasibility.
func SolveIterative(problem *Problem, ctx Context) (*Result, error) {
	n := len(problem.Permutations)
	counts := make([]int64, n)

	initial := int64(1)
	if problem.TotalBallots > 0 && n > 0 {
		initial = problem.TotalBallots / int64(n)
	}
	for i := range counts {
		counts[i] = initial
	}

	var lastHigh, lastLow int = -1, -1
	maxIterations := ctx.maxIterations
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}

	for iteration := 0; iteration < maxIterations; iteration++ {
		// errors[v] = [negativeContribution, positiveContribution], as in
		// CustomSolver.solve(): a variable whose sum-membership keeps
		// contributing to a constraint that's too large sorts toward the
		// front (it's a candidate to shrink); one behind a constraint
		// that's too small sorts toward the back (grow it instead).
		type errPair struct{ neg, pos int64 }
		errs := make([]errPair, n)
		var totalError int64

		for _, cons := range problem.Constraints {
			left := problem.Sums[cons.Left]
			right := problem.Sums[cons.Right]
			leftVal := left.Evaluate(counts)
			rightVal := right.Evaluate(counts)
			difference := leftVal - rightVal

			var leftNeg, leftPos, rightNeg, rightPos int64
			if cons.Strict {
				difference--
				if difference >= 0 {
					leftPos, rightNeg = difference, -difference
					difference = 0
				} else {
					leftNeg, rightPos = -difference, difference
				}
			} else {
				leftNeg, rightPos = -difference, difference
			}
			totalError += abs64(difference)

			for i, idx := range left.Permutations {
				w := left.WeightAt(i)
				errs[idx].neg += w * leftNeg
				errs[idx].pos += w * leftPos
			}
			for i, idx := range right.Permutations {
				w := right.WeightAt(i)
				errs[idx].neg += w * rightNeg
				errs[idx].pos += w * rightPos
			}
		}

		if totalError == 0 {
			return &Result{Problem: problem, Counts: counts, Status: StatusSolved, Iterations: iteration}, nil
		}

		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			a, b := order[i], order[j]
			if errs[a].neg != errs[b].neg {
				return errs[a].neg < errs[b].neg
			}
			return errs[a].pos < errs[b].pos
		})

		high, low := order[0], order[n-1]
		if (high == lastHigh && low == lastLow) || counts[high] == 0 {
			if len(order) > 1 {
				high = order[1]
			}
		}
		if low == lastLow && len(order) > 1 {
			low = order[n-2]
		}
		lastHigh, lastLow = high, low

		counts[low]++
		if counts[high] >= 1 {
			counts[high]--
		}
	}

	return &Result{Problem: problem, Counts: counts, Status: StatusNonConvergent, Iterations: maxIterations}, ErrNonConvergent
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
