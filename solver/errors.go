package solver

import "errors"

var (
	// ErrMalformedStatement is returned when a statement violates the
	// "rank , { '>' , rank }; rank = token , { '=' , token }" grammar, or
	// names the same candidate pair with a pairwise token more than once.
	ErrMalformedStatement = errors.New("solver: statement is malformed")

	// ErrUnknownCandidate is returned when a statement token mentions a
	// candidate outside the solver's candidate list.
	ErrUnknownCandidate = errors.New("solver: statement mentions an unknown candidate")

	// ErrInfeasible is returned when no assignment of non-negative
	// permutation counts satisfies every constraint.
	ErrInfeasible = errors.New("solver: no feasible ballot set satisfies the statement")

	// ErrNonConvergent is returned by SolveIterative when it exhausts its
	// iteration budget without driving every constraint's error to zero.
	ErrNonConvergent = errors.New("solver: iterative solver did not converge within its iteration budget")
)
