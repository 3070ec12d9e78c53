// Package methods implements the eight ranked-preferential tabulation
// methods the library supports: RankedPairs, Beatpath, River, Minimax,
// InstantRunoff, Plurality, Borda and Bucklin.
//
// Every method has the same signature: it consumes ballots and a candidate
// universe and returns a Ranking, a total order over the universe with
// ties expressed as multi-candidate groups. Per spec §7, voting methods
// never raise: an empty ballot set yields every candidate in a single tied
// group, and an empty universe yields an empty Ranking.
package methods
