// Package ballot defines the ranked-ballot data model shared by every
// tabulation method: candidates, rank rows (which may tie), ballots with a
// multiplicity, and the candidate universe they are tabulated against.
//
// A Ballot never mutates once constructed; every function in this package
// and in methods/tally reads ballots, never writes them.
package ballot

import "sort"

// Candidate is an opaque identity competing in an election. Equality and
// ordering are defined purely by string comparison; ordering is used only
// for deterministic tie-break reporting (spec: "lex sort of equal-rank
// groups"), never to imply one candidate outranks another.
type Candidate = string

// Row is one equivalence class ("rank") in a ballot or a ranking: a
// non-empty set of candidates tied at that position. A scalar preference
// is simply a Row of size 1.
type Row map[Candidate]struct{}

// NewRow builds a Row from one or more candidates.
func NewRow(candidates ...Candidate) Row {
	r := make(Row, len(candidates))
	for _, c := range candidates {
		r[c] = struct{}{}
	}
	return r
}

// Sorted returns the Row's members in ascending lexical order.
func (r Row) Sorted() []Candidate {
	out := make([]Candidate, 0, len(r))
	for c := range r {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Ballot is a single cast pattern: an ordered sequence of Rows (most
// preferred first) together with the number of voters who cast exactly
// this pattern. A Ballot may omit candidates entirely; unmentioned
// candidates are unranked, not last-ranked, except where a method's
// semantics specifically treat "unranked" as "worse than ranked" (IRV,
// Bucklin, Plurality already express that via their own loops).
type Ballot struct {
	// Ranks lists rows from most to least preferred. A well-formed Ballot
	// never repeats a candidate across rows; Normalize enforces this.
	Ranks []Row

	// Multiplicity is the number of voters who cast this exact pattern.
	// Must be positive; Validate rejects non-positive values, and Parse
	// always sets it to 1.
	Multiplicity int64
}

// CandidateSet is the universe of candidates eligible for a tabulation.
// Candidates mentioned in a Ballot but absent from the CandidateSet MUST be
// ignored by every tabulation method (spec §3).
type CandidateSet map[Candidate]struct{}

// NewCandidateSet builds a CandidateSet from a list, deduplicating.
func NewCandidateSet(candidates ...Candidate) CandidateSet {
	s := make(CandidateSet, len(candidates))
	for _, c := range candidates {
		s[c] = struct{}{}
	}
	return s
}

// Sorted returns the universe's members in ascending lexical order.
func (s CandidateSet) Sorted() []Candidate {
	out := make([]Candidate, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Has reports whether c is a member of the universe.
func (s CandidateSet) Has(c Candidate) bool {
	_, ok := s[c]
	return ok
}
