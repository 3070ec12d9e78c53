package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eswald/rankedvote/ballot"
	"github.com/eswald/rankedvote/methods"
	"github.com/eswald/rankedvote/solver"
)

func TestBuildConstraintsCoversEveryPair(t *testing.T) {
	candidates := []ballot.Candidate{"A", "B", "C"}
	statement, err := solver.ParseStatement("AB>AC>BC", candidates)
	require.NoError(t, err)

	ctx := solver.NewContext(candidates)
	problem, err := solver.BuildConstraints(ctx, statement)
	require.NoError(t, err)

	require.Len(t, problem.Permutations, 6) // 3! fully-ranked orderings
	require.Contains(t, problem.Sums, "AB")
	require.Contains(t, problem.Sums, "BA")
	require.Contains(t, problem.Sums, "A")

	// 3 pairwise + 2 chain-order constraints; no "=" groups in this statement.
	require.Len(t, problem.Constraints, 5)
}

func TestBuildConstraintsDefaultsUnnamedPairToEquality(t *testing.T) {
	candidates := []ballot.Candidate{"A", "B", "C"}
	statement, err := solver.ParseStatement("AB>AC", candidates)
	require.NoError(t, err)

	ctx := solver.NewContext(candidates)
	problem, err := solver.BuildConstraints(ctx, statement)
	require.NoError(t, err)

	var sawBCEquality bool
	for _, cons := range problem.Constraints {
		if (cons.Left == "BC" && cons.Right == "CB") || (cons.Left == "CB" && cons.Right == "BC") {
			require.False(t, cons.Strict)
			sawBCEquality = true
		}
	}
	require.True(t, sawBCEquality, "pair BC was never named, so it must default to an equality constraint")
}

func TestBuildConstraintsEqualityGroupAndPluralityToken(t *testing.T) {
	candidates := []ballot.Candidate{"A", "B", "C"}
	statement, err := solver.ParseStatement("AB=AC>A=B>C", candidates)
	require.NoError(t, err)

	ctx := solver.NewContext(candidates)
	problem, err := solver.BuildConstraints(ctx, statement)
	require.NoError(t, err)

	require.Contains(t, problem.Constraints, solver.Inequality{Left: "AB", Right: "AC", Strict: false})
	require.Contains(t, problem.Constraints, solver.Inequality{Left: "A", Right: "B", Strict: false})
	require.Contains(t, problem.Constraints, solver.Inequality{Left: "AB", Right: "A", Strict: true})
	require.Contains(t, problem.Constraints, solver.Inequality{Left: "A", Right: "C", Strict: true})
}

func TestSolveIterativeConvergesOnSimpleChain(t *testing.T) {
	candidates := []ballot.Candidate{"A", "B", "C"}
	statement, err := solver.ParseStatement("AB>AC>BC", candidates)
	require.NoError(t, err)

	ctx := solver.NewContext(candidates, solver.WithTotalBallots(60), solver.WithMaxIterations(5000))
	problem, err := solver.BuildConstraints(ctx, statement)
	require.NoError(t, err)

	result, err := solver.SolveIterative(problem, ctx)
	require.NoError(t, err)
	require.Equal(t, solver.StatusSolved, result.Status)

	for _, cons := range problem.Constraints {
		left := problem.Sums[cons.Left].Evaluate(result.Counts)
		right := problem.Sums[cons.Right].Evaluate(result.Counts)
		if cons.Strict {
			require.Greater(t, left, right)
		} else {
			require.Equal(t, left, right)
		}
	}
}

func TestSolverOutputTabulatesToAWin(t *testing.T) {
	candidates := []ballot.Candidate{"A", "B", "C"}
	statement, err := solver.ParseStatement("AB>AC>BC", candidates)
	require.NoError(t, err)

	ctx := solver.NewContext(candidates, solver.WithTotalBallots(60), solver.WithMaxIterations(5000))
	problem, err := solver.BuildConstraints(ctx, statement)
	require.NoError(t, err)

	result, err := solver.SolveIterative(problem, ctx)
	require.NoError(t, err)

	universe := ballot.NewCandidateSet("A", "B", "C")
	ranking := methods.RankedPairs(result.Ballots(), universe)
	require.Equal(t, methods.Ranking{{"A"}, {"B"}, {"C"}}, ranking)
}
