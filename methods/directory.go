package methods

import "github.com/eswald/rankedvote/ballot"

// Method is the common signature every tabulation method implements.
type Method func(ballots []ballot.Ballot, universe ballot.CandidateSet) Ranking

// Directory maps each method's name (spec §6.1) to its implementation, so
// that callers can select a method dynamically (e.g. from configuration
// or a CLI flag) instead of importing every method by name.
var Directory = map[string]Method{
	"rankedpairs":   RankedPairs,
	"beatpath":      Beatpath,
	"river":         River,
	"minimax":       Minimax,
	"instantrunoff": InstantRunoff,
	"plurality":     Plurality,
	"borda":         Borda,
	"bucklin":       Bucklin,
}
