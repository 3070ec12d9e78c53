package solver

import "github.com/eswald/rankedvote/ballot"

const defaultMaxIterations = 10000

// Context configures one BuildConstraints/Solve call: the candidate list
// that defines the permutation universe, and any optional winner-pinning
// or iteration-budget overrides. It is built fresh per call and passed
// explicitly rather than held as package state (spec §5 — no cross-call,
// no global mutable state).
type Context struct {
	candidates      []ballot.Candidate
	pluralityWinner ballot.Candidate
	bordaWinner     ballot.Candidate
	totalBallots    int64
	maxIterations   int
}

// Option configures a Context.
type Option func(*Context)

// NewContext builds a Context over candidates, applying opts in order.
func NewContext(candidates []ballot.Candidate, opts ...Option) Context {
	ctx := Context{
		candidates:    candidates,
		maxIterations: defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&ctx)
	}
	return ctx
}

// WithPluralityWinner additionally constrains the synthesized ballots so
// that winner's first-place count strictly exceeds every other
// candidate's, rigging the election the way matrixexpansion.py's solve()
// does with its optional "winner" parameter.
func WithPluralityWinner(winner ballot.Candidate) Option {
	return func(ctx *Context) { ctx.pluralityWinner = winner }
}

// WithBordaWinner constrains the synthesized ballots so that winner's
// zero-sum Borda score strictly exceeds every other candidate's. This has
// no equivalent in the original research tool; it's a natural extension
// once SumExpression can carry weights, not just indicator sums.
func WithBordaWinner(winner ballot.Candidate) Option {
	return func(ctx *Context) { ctx.bordaWinner = winner }
}

// WithTotalBallots sets Problem.TotalBallots: SolveLP constrains the
// synthesized ballot set to exactly total ballots, while SolveIterative
// only uses it for its starting counts; the iterative result's total is
// not held to it.
func WithTotalBallots(total int64) Option {
	return func(ctx *Context) { ctx.totalBallots = total }
}

// WithMaxIterations overrides SolveIterative's iteration budget.
func WithMaxIterations(n int) Option {
	return func(ctx *Context) { ctx.maxIterations = n }
}
