package ballot

import (
	"fmt"
	"strings"
)

// Parse restores a Ballot from its serialized form, as produced by an
// external persistence layer: "group1;group2;group3", where each group is
// a comma-separated sequence of candidate identifiers tied at that rank.
// Empty groups are prohibited. The returned Ballot always has
// Multiplicity == 1; callers that need to fold identical ballots together
// should sum Multiplicity across repeated Parse results themselves.
func Parse(s string) (Ballot, error) {
	groups := strings.Split(s, ";")
	ranks := make([]Row, 0, len(groups))
	seen := make(map[Candidate]struct{})
	for _, group := range groups {
		names := strings.Split(group, ",")
		row := make(Row, len(names))
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				return Ballot{}, fmt.Errorf("ballot: Parse(%q): %w", s, ErrEmptyGroup)
			}
			if _, dup := seen[name]; dup {
				return Ballot{}, fmt.Errorf("ballot: Parse(%q): %w", s, ErrRepeatedCandidate)
			}
			seen[name] = struct{}{}
			row[name] = struct{}{}
		}
		if len(row) == 0 {
			return Ballot{}, fmt.Errorf("ballot: Parse(%q): %w", s, ErrEmptyGroup)
		}
		ranks = append(ranks, row)
	}

	if len(ranks) == 0 {
		return Ballot{}, fmt.Errorf("ballot: Parse(%q): %w", s, ErrMalformedSerialization)
	}

	return Ballot{Ranks: ranks, Multiplicity: 1}, nil
}

// Format serializes a Ballot back to the "group1;group2;group3" grammar,
// with each group's candidates sorted for a stable, comparable string.
// Multiplicity is not represented; Format is the inverse of Parse only for
// the rank sequence.
func Format(b Ballot) string {
	groups := make([]string, len(b.Ranks))
	for i, row := range b.Ranks {
		groups[i] = strings.Join(row.Sorted(), ",")
	}
	return strings.Join(groups, ";")
}

// Validate checks the structural invariants of a Ballot constructed
// directly (not via Parse): no empty rows, no candidate repeated across
// rows, and a positive multiplicity.
func Validate(b Ballot) error {
	if b.Multiplicity <= 0 {
		return ErrNonPositiveMultiplicity
	}
	seen := make(map[Candidate]struct{})
	for _, row := range b.Ranks {
		if len(row) == 0 {
			return ErrEmptyGroup
		}
		for c := range row {
			if _, dup := seen[c]; dup {
				return ErrRepeatedCandidate
			}
			seen[c] = struct{}{}
		}
	}
	return nil
}
