// Package ballot models ranked ballots: candidates, tie-permitting rank
// rows, multiplicities, and the candidate universe a tabulation runs
// against, plus the "group1;group2;group3" wire format consumed from
// external persistence.
//
// Errors:
//
//	ErrEmptyGroup              - a rank row has no candidates.
//	ErrRepeatedCandidate       - a candidate appears in two rows of a ballot.
//	ErrNonPositiveMultiplicity - Multiplicity <= 0.
//	ErrMalformedSerialization  - the wire grammar was violated.
package ballot
