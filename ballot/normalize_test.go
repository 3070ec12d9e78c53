package ballot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eswald/rankedvote/ballot"
)

func TestNormalizeDropsRepeats(t *testing.T) {
	ranks := []ballot.Row{
		ballot.NewRow("A", "B"),
		ballot.NewRow("B", "C"), // B already seen; dropped, row survives with just C
	}
	out := ballot.Normalize(ranks)
	require.Len(t, out, 2)
	require.Equal(t, []string{"A", "B"}, out[0].Sorted())
	require.Equal(t, []string{"C"}, out[1].Sorted())
}

func TestNormalizeDropsEmptiedRows(t *testing.T) {
	ranks := []ballot.Row{
		ballot.NewRow("A"),
		ballot.NewRow("A"), // entirely a repeat; row vanishes
		ballot.NewRow("B"),
	}
	out := ballot.Normalize(ranks)
	require.Len(t, out, 2)
}

func TestRestrictToUniverse(t *testing.T) {
	universe := ballot.NewCandidateSet("A", "C")
	ranks := []ballot.Row{
		ballot.NewRow("A", "B"),
		ballot.NewRow("C"),
	}
	out := ballot.Restrict(ranks, universe)
	require.Len(t, out, 2)
	require.Equal(t, []string{"A"}, out[0].Sorted())
	require.Equal(t, []string{"C"}, out[1].Sorted())
}
