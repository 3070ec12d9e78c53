package solver

import "github.com/eswald/rankedvote/ballot"

// Scenario is one sweep entry: a statement, optionally paired with a
// plurality-winner and/or Borda-winner pin.
type Scenario struct {
	Statement       Statement
	PluralityWinner ballot.Candidate
	BordaWinner     ballot.Candidate
}

// Report is one Scenario's solved (or failed) outcome.
type Report struct {
	Scenario Scenario
	Status   Status
	Result   *Result
}

// Sweep solves every scenario, trying SolveLP first and falling back to
// SolveIterative when the LP path can't certify feasibility, mirroring
// runner.py's research driver that walked every statement paired with
// every plurality/Borda winner combination to map out which combinations
// of majority pattern and winner are jointly realizable.
func Sweep(candidates []ballot.Candidate, scenarios []Scenario) []Report {
	reports := make([]Report, 0, len(scenarios))
	for _, sc := range scenarios {
		var opts []Option
		if sc.PluralityWinner != "" {
			opts = append(opts, WithPluralityWinner(sc.PluralityWinner))
		}
		if sc.BordaWinner != "" {
			opts = append(opts, WithBordaWinner(sc.BordaWinner))
		}
		ctx := NewContext(candidates, opts...)

		problem, err := BuildConstraints(ctx, sc.Statement)
		if err != nil {
			reports = append(reports, Report{Scenario: sc, Status: StatusInfeasible})
			continue
		}

		result, err := SolveLP(problem)
		if err != nil {
			result, err = SolveIterative(problem, ctx)
			if err != nil {
				reports = append(reports, Report{Scenario: sc, Status: StatusNonConvergent, Result: result})
				continue
			}
		}
		reports = append(reports, Report{Scenario: sc, Status: result.Status, Result: result})
	}
	return reports
}
