package tally_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eswald/rankedvote/tally"
)

func TestRegroupDescending(t *testing.T) {
	mapping := map[string]int{"A": 3, "B": 5, "C": 3}
	groups := tally.Regroup(mapping, true)
	require.Len(t, groups, 2)
	require.ElementsMatch(t, []string{"B"}, groups[0])
	require.ElementsMatch(t, []string{"A", "C"}, groups[1])
}

func TestRegroupAscending(t *testing.T) {
	mapping := map[string]int{"A": 3, "B": 5}
	groups := tally.Regroup(mapping, false)
	require.Equal(t, []string{"A"}, groups[0])
	require.Equal(t, []string{"B"}, groups[1])
}

func TestRegroupMajoritiesLexicographicDescending(t *testing.T) {
	majorities := map[tally.Pair]tally.Majority{
		{Winner: "A", Loser: "B"}: {For: 10, Against: 2},
		{Winner: "C", Loser: "D"}: {For: 10, Against: 5},
		{Winner: "E", Loser: "F"}: {For: 8, Against: 1},
	}
	groups := tally.RegroupMajorities(majorities, true)
	require.Equal(t, []tally.Pair{{Winner: "C", Loser: "D"}}, groups[0])
	require.Equal(t, []tally.Pair{{Winner: "A", Loser: "B"}}, groups[1])
	require.Equal(t, []tally.Pair{{Winner: "E", Loser: "F"}}, groups[2])
}
