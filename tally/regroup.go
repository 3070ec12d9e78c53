package tally

import (
	"cmp"
	"math/big"
	"sort"

	"github.com/eswald/rankedvote/ballot"
)

// Regroup collects keys of mapping sharing an identical value into groups,
// yielded in descending (or ascending) order of that value. Within a
// group, key order is unspecified; callers that need observable
// determinism sort by candidate identifier themselves (spec §4.4).
func Regroup[K comparable, V cmp.Ordered](mapping map[K]V, descending bool) [][]K {
	byValue := make(map[V][]K)
	for k, v := range mapping {
		byValue[v] = append(byValue[v], k)
	}

	values := make([]V, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if descending {
			return values[i] > values[j]
		}
		return values[i] < values[j]
	})

	out := make([][]K, len(values))
	for i, v := range values {
		out[i] = byValue[v]
	}
	return out
}

// RegroupMajorities groups Pairs by identical Majority, ordered by
// (For, Against) lexicographically — descending by default, which is what
// RankedPairs and River need to process the strongest majorities first.
func RegroupMajorities(majorities map[Pair]Majority, descending bool) [][]Pair {
	byValue := make(map[Majority][]Pair)
	for p, m := range majorities {
		byValue[m] = append(byValue[m], p)
	}

	values := make([]Majority, 0, len(byValue))
	for m := range byValue {
		values = append(values, m)
	}
	sort.Slice(values, func(i, j int) bool {
		a, b := values[i], values[j]
		if a.For != b.For {
			if descending {
				return a.For > b.For
			}
			return a.For < b.For
		}
		if descending {
			return a.Against > b.Against
		}
		return a.Against < b.Against
	})

	out := make([][]Pair, len(values))
	for i, m := range values {
		out[i] = byValue[m]
	}
	return out
}

// RegroupRationals groups RationalTotals by exact value equality, ordered
// descending (or ascending), with each group's members sorted ascending by
// candidate identifier. Needed wherever Regroup's cmp.Ordered constraint
// can't apply — *big.Rat has no natural ordering operators, only Cmp.
func RegroupRationals(totals RationalTotals, descending bool) [][]ballot.Candidate {
	type entry struct {
		candidate ballot.Candidate
		value     *big.Rat
	}
	entries := make([]entry, 0, len(totals))
	for c, v := range totals {
		entries = append(entries, entry{c, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		switch entries[i].value.Cmp(entries[j].value) {
		case 0:
			return entries[i].candidate < entries[j].candidate
		case 1:
			return descending
		default:
			return !descending
		}
	})

	var out [][]ballot.Candidate
	for _, e := range entries {
		if n := len(out); n > 0 {
			last := out[n-1]
			if totals[last[0]].Cmp(e.value) == 0 {
				out[n-1] = append(last, e.candidate)
				continue
			}
		}
		out = append(out, []ballot.Candidate{e.candidate})
	}
	return out
}
