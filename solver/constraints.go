package solver

import (
	"fmt"

	"github.com/eswald/rankedvote/ballot"
)

// SumExpression names a linear combination over the solver's permutation
// variables: Permutations lists which permutation indices contribute, and
// Weights (if non-nil) gives each one's coefficient — nil means every
// listed permutation contributes weight 1, the common case for a pairwise
// margin or first-place count (matrixexpansion.py's defineSum()).
type SumExpression struct {
	Name         string
	Permutations []int
	Weights      []int64
}

// WeightAt returns the coefficient for Permutations[i].
func (s SumExpression) WeightAt(i int) int64 {
	if s.Weights == nil {
		return 1
	}
	return s.Weights[i]
}

// Evaluate computes the expression's current value given a full vector of
// permutation counts, parallel to Problem.Permutations.
func (s SumExpression) Evaluate(counts []int64) int64 {
	var total int64
	for i, idx := range s.Permutations {
		total += s.WeightAt(i) * counts[idx]
	}
	return total
}

// Inequality asserts Left > Right (Strict) or Left == Right, where Left
// and Right name entries in Problem.Sums.
type Inequality struct {
	Left, Right string
	Strict      bool
}

// Problem is everything BuildConstraints derives from a Statement: the
// full permutation universe, every sum expression a constraint
// references, and the constraints themselves. TotalBallots is 0 unless
// WithTotalBallots was set. SolveLP then requires the permutation counts
// to sum to exactly that value; SolveIterative only uses it to seed every
// count at TotalBallots / len(Permutations) and does not hold the sum
// fixed while it searches.
type Problem struct {
	Candidates   []ballot.Candidate
	Permutations [][]ballot.Candidate
	Sums         map[string]SumExpression
	Constraints  []Inequality
	TotalBallots int64
}

// BuildConstraints turns a parsed Statement into a Problem: one pairwise-
// margin constraint per candidate pair (strict in whichever direction the
// statement names, or equality if the statement leaves that pair
// unnamed), an equality constraint tying every other token of a Rank to
// that Rank's first token, a chain of strict constraints enforcing the
// statement's between-Rank order, and any optional winner-pinning
// constraints from ctx. Grounded on matrixexpansion.py's solve().
func BuildConstraints(ctx Context, statement Statement) (*Problem, error) {
	candidates := ctx.candidates
	n := len(candidates)
	if len(statement) == 0 {
		return nil, fmt.Errorf("solver: BuildConstraints: empty statement: %w", ErrMalformedStatement)
	}

	perms := Permutations(candidates)
	problem := &Problem{
		Candidates:   candidates,
		Permutations: perms,
		Sums:         make(map[string]SumExpression),
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := candidates[i], candidates[j]
			ab, ba := a+b, b+a

			var abIdx, baIdx []int
			for idx, perm := range perms {
				if positionOf(perm, a) < positionOf(perm, b) {
					abIdx = append(abIdx, idx)
				} else {
					baIdx = append(baIdx, idx)
				}
			}
			problem.Sums[ab] = SumExpression{Name: ab, Permutations: abIdx}
			problem.Sums[ba] = SumExpression{Name: ba, Permutations: baIdx}

			_, forward, found := statement.directionFor(a, b)
			switch {
			case !found:
				// Spec §6.3: a pair the statement never names defaults to
				// equality between its two directions.
				problem.Constraints = append(problem.Constraints, Inequality{Left: ab, Right: ba, Strict: false})
			case forward:
				problem.Constraints = append(problem.Constraints, Inequality{Left: ab, Right: ba, Strict: true})
			default:
				problem.Constraints = append(problem.Constraints, Inequality{Left: ba, Right: ab, Strict: true})
			}
		}
	}

	// Within a Rank, every token names an equal sum; every token's sum key
	// already exists in problem.Sums (built above for pairwise tokens, and
	// below for one-letter plurality tokens).
	for _, rank := range statement {
		for k := 1; k < len(rank); k++ {
			problem.Constraints = append(problem.Constraints, Inequality{
				Left:   string(rank[0]),
				Right:  string(rank[k]),
				Strict: false,
			})
		}
	}

	// Between consecutive Ranks, the first token of each names the
	// strict-inequality representative; the within-Rank equalities above
	// already tie every other token in the Rank to it.
	for i := 1; i < len(statement); i++ {
		problem.Constraints = append(problem.Constraints, Inequality{
			Left:   string(statement[i-1][0]),
			Right:  string(statement[i][0]),
			Strict: true,
		})
	}

	for _, c := range candidates {
		var idx []int
		for i, perm := range perms {
			if perm[0] == c {
				idx = append(idx, i)
			}
		}
		problem.Sums[c] = SumExpression{Name: c, Permutations: idx}
	}

	if ctx.pluralityWinner != "" {
		for _, c := range candidates {
			if c == ctx.pluralityWinner {
				continue
			}
			problem.Constraints = append(problem.Constraints, Inequality{Left: string(ctx.pluralityWinner), Right: string(c), Strict: true})
		}
	}

	if ctx.bordaWinner != "" {
		for _, c := range candidates {
			problem.Sums[bordaKey(c)] = bordaSum(c, perms, n)
		}
		for _, c := range candidates {
			if c == ctx.bordaWinner {
				continue
			}
			problem.Constraints = append(problem.Constraints, Inequality{Left: bordaKey(ctx.bordaWinner), Right: bordaKey(c), Strict: true})
		}
	}

	problem.TotalBallots = ctx.totalBallots

	return problem, nil
}

func bordaKey(c ballot.Candidate) string { return "borda:" + c }

// bordaSum computes, for every permutation, the zero-sum Borda score a
// fully-ranked ballot matching that permutation contributes to c: n-1
// points for first place, down to -(n-1) for last, matching the
// over/under scoring voting.py's borda() uses for partial ballots,
// specialized to a ballot with no ties.
func bordaSum(c ballot.Candidate, perms [][]ballot.Candidate, n int) SumExpression {
	idx := make([]int, len(perms))
	weights := make([]int64, len(perms))
	for i, perm := range perms {
		idx[i] = i
		pos := positionOf(perm, c)
		weights[i] = int64(n - 1 - 2*pos)
	}
	return SumExpression{Name: bordaKey(c), Permutations: idx, Weights: weights}
}
