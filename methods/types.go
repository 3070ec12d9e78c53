package methods

import "github.com/eswald/rankedvote/ballot"

// Ranking is a total order over a candidate universe, most preferred
// first. Each element is one tied group, its members sorted ascending by
// candidate identifier so that Ranking equality is independent of map
// iteration order.
type Ranking = [][]ballot.Candidate
