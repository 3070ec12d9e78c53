package solver

import (
	"strings"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/eswald/rankedvote/ballot"
)

// Permutations returns every full strict ranking of candidates: one
// variable in the solver's linear system per entry. combin.Permutations
// enumerates index permutations rather than candidate values, so it
// serves purely as the deterministic generator driving the mapping below.
func Permutations(candidates []ballot.Candidate) [][]ballot.Candidate {
	n := len(candidates)
	indices := combin.Permutations(n, n)
	out := make([][]ballot.Candidate, len(indices))
	for i, perm := range indices {
		row := make([]ballot.Candidate, n)
		for j, idx := range perm {
			row[j] = candidates[idx]
		}
		out[i] = row
	}
	return out
}

// Label renders a permutation as its compact token form: ["A","B","C"]
// becomes "ABC", matching the statement grammar's candidate codes.
func Label(perm []ballot.Candidate) string {
	return strings.Join(perm, "")
}

// positionOf returns c's zero-based index within perm, or -1 if absent.
func positionOf(perm []ballot.Candidate, c ballot.Candidate) int {
	for i, v := range perm {
		if v == c {
			return i
		}
	}
	return -1
}
