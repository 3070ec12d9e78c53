package solver

import (
	"fmt"
	"strings"

	"github.com/eswald/rankedvote/ballot"
)

// PairToken is a single statement token: either a two-candidate pairwise
// token ("AB", asserting candidate A beats candidate B) or a one-candidate
// plurality token ("A", naming A's first-place total), per spec §6.3's
// grammar:
//
//	statement = rank , { ">" , rank } ;
//	rank      = token , { "=" , token } ;
//	token     = UPPER , [ UPPER ] ;
type PairToken string

// Rank is one '='-joined group of tokens, tied at equal strength.
type Rank []PairToken

// Statement is a '>'-separated chain of Ranks naming, in strictly
// decreasing order of strength, every token's sum: any token in
// Statement[i] must exceed any token in Statement[i+1], and every token
// within one Rank names an equal sum. A two-letter token names one
// directed side of an unordered candidate pair; a pair left unnamed
// anywhere in the statement defaults to equality between its two
// directions (spec §6.3: "otherwise equality is imposed").
type Statement []Rank

// ParseStatement splits raw on '>' into Ranks and each Rank on '=' into
// PairTokens, validating every token against candidates: a one-character
// token must be a known candidate code (plurality), and a two-character
// token must name two distinct known candidate codes (pairwise). Each
// unordered candidate pair may be named by a pairwise token at most once
// across the whole statement.
func ParseStatement(raw string, candidates []ballot.Candidate) (Statement, error) {
	codes := make(map[byte]bool, len(candidates))
	for _, c := range candidates {
		if len(c) != 1 {
			return nil, fmt.Errorf("solver: ParseStatement: candidate %q is not a single-character code: %w", c, ErrUnknownCandidate)
		}
		codes[c[0]] = true
	}

	var statement Statement
	seenPairs := make(map[[2]byte]bool)
	for _, rawRank := range strings.Split(strings.TrimSpace(raw), ">") {
		var rank Rank
		for _, rawToken := range strings.Split(rawRank, "=") {
			token := PairToken(strings.TrimSpace(rawToken))
			switch len(token) {
			case 1:
				if !codes[token[0]] {
					return nil, fmt.Errorf("solver: ParseStatement: token %q: %w", token, ErrUnknownCandidate)
				}
			case 2:
				if !codes[token[0]] || !codes[token[1]] {
					return nil, fmt.Errorf("solver: ParseStatement: token %q: %w", token, ErrUnknownCandidate)
				}
				if token[0] == token[1] {
					return nil, fmt.Errorf("solver: ParseStatement: token %q names a candidate against itself: %w", token, ErrMalformedStatement)
				}
				key := unordered(token[0], token[1])
				if seenPairs[key] {
					return nil, fmt.Errorf("solver: ParseStatement: pair %q named more than once: %w", string(key[0])+string(key[1]), ErrMalformedStatement)
				}
				seenPairs[key] = true
			default:
				return nil, fmt.Errorf("solver: ParseStatement: token %q is not a one- or two-candidate code: %w", token, ErrMalformedStatement)
			}
			rank = append(rank, token)
		}
		if len(rank) == 0 {
			return nil, fmt.Errorf("solver: ParseStatement(%q): empty rank: %w", raw, ErrMalformedStatement)
		}
		statement = append(statement, rank)
	}

	if len(statement) == 0 {
		return nil, fmt.Errorf("solver: ParseStatement(%q): %w", raw, ErrMalformedStatement)
	}

	return statement, nil
}

func unordered(a, b byte) [2]byte {
	if a < b {
		return [2]byte{a, b}
	}
	return [2]byte{b, a}
}

// directionFor reports whether the statement names a pairwise token for
// the unordered pair (a, b), and if so whether it asserts a beats b
// (forward) or b beats a.
func (s Statement) directionFor(a, b ballot.Candidate) (token PairToken, forward, found bool) {
	ab := PairToken(a + b)
	ba := PairToken(b + a)
	for _, rank := range s {
		for _, t := range rank {
			if t == ab {
				return t, true, true
			}
			if t == ba {
				return t, false, true
			}
		}
	}
	return "", false, false
}
