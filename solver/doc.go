// Package solver searches for a set of fully-ranked ballots that satisfies
// a target pattern of pairwise majority strengths — the inverse of
// methods: instead of tabulating ballots into a ranking, it synthesizes
// ballots that would tabulate into a ranking with specific properties.
//
// A Statement names a chain of Ranks of pairwise and plurality tokens, in
// decreasing order of strength, with '='-tied tokens equal within a Rank
// (spec §6.3); a candidate pair the statement never names defaults to
// equality. BuildConstraints turns a Statement into a Problem over one
// variable per full strict ranking of
// the candidates (spec §4.6's "sum expressions"), solvable either exactly
// via linear programming (SolveLP) or approximately via an iterative
// hill-climb (SolveIterative) ported from the original research tooling's
// CustomSolver, which the tool's own comment already flagged as "getting
// too slow" for anything beyond a handful of candidates.
package solver
