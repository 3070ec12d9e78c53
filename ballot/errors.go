package ballot

import "errors"

// Sentinel errors for ballot construction and parsing.
var (
	// ErrEmptyGroup indicates a rank row with no candidates.
	ErrEmptyGroup = errors.New("ballot: empty rank group")

	// ErrRepeatedCandidate indicates the same candidate appears in two rows
	// of one ballot. A well-formed ballot never does this; see Normalize.
	ErrRepeatedCandidate = errors.New("ballot: candidate repeated across rows")

	// ErrNonPositiveMultiplicity indicates a multiplicity of zero or less.
	ErrNonPositiveMultiplicity = errors.New("ballot: multiplicity must be positive")

	// ErrMalformedSerialization indicates the "group1;group2;..." grammar
	// was violated (see Parse).
	ErrMalformedSerialization = errors.New("ballot: malformed serialization")
)
