package tally_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eswald/rankedvote/ballot"
	"github.com/eswald/rankedvote/tally"
)

func mustBallot(t *testing.T, ranks []ballot.Row, mult int64) ballot.Ballot {
	t.Helper()
	return ballot.Ballot{Ranks: ranks, Multiplicity: mult}
}

func TestPairwiseStrictMajorityOnly(t *testing.T) {
	universe := ballot.NewCandidateSet("A", "B")
	ballots := []ballot.Ballot{
		mustBallot(t, []ballot.Row{ballot.NewRow("A"), ballot.NewRow("B")}, 6),
		mustBallot(t, []ballot.Row{ballot.NewRow("B"), ballot.NewRow("A")}, 4),
	}

	majorities := tally.Pairwise(ballots, universe)
	require.Len(t, majorities, 1)
	m, ok := majorities[tally.Pair{Winner: "A", Loser: "B"}]
	require.True(t, ok)
	require.Equal(t, tally.Majority{For: 6, Against: 4}, m)

	_, reverse := majorities[tally.Pair{Winner: "B", Loser: "A"}]
	require.False(t, reverse)
}

func TestPairwisePerfectTieYieldsNoEdge(t *testing.T) {
	universe := ballot.NewCandidateSet("A", "B")
	ballots := []ballot.Ballot{
		mustBallot(t, []ballot.Row{ballot.NewRow("A"), ballot.NewRow("B")}, 5),
		mustBallot(t, []ballot.Row{ballot.NewRow("B"), ballot.NewRow("A")}, 5),
	}
	majorities := tally.Pairwise(ballots, universe)
	require.Empty(t, majorities)
}

func TestPairwiseIgnoresOutsideUniverse(t *testing.T) {
	universe := ballot.NewCandidateSet("A", "B")
	ballots := []ballot.Ballot{
		mustBallot(t, []ballot.Row{ballot.NewRow("A"), ballot.NewRow("Z"), ballot.NewRow("B")}, 10),
	}
	majorities := tally.Pairwise(ballots, universe)
	require.Equal(t, tally.Majority{For: 10, Against: 0}, majorities[tally.Pair{Winner: "A", Loser: "B"}])
}

func TestPairwiseTiedRowCountsAsTie(t *testing.T) {
	universe := ballot.NewCandidateSet("A", "B")
	ballots := []ballot.Ballot{
		mustBallot(t, []ballot.Row{ballot.NewRow("A", "B")}, 10),
	}
	majorities := tally.Pairwise(ballots, universe)
	require.Empty(t, majorities)
}
