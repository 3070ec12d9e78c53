// Package-level notes for tally.
//
// Pairwise is O(B * R^2) in the worst case (B ballots, R rows per ballot,
// quadratic because every row compares against every previously-seen
// candidate) but R is bounded by the candidate universe size in practice.
// Regroup and RegroupMajorities are O(n log n) for n distinct values.
package tally
