package gflags

import (
	"strings"

	"golang.org/x/exp/slices"
)

// suggestionsMinimumDistance is the levenshtein distance under which a
// registered name is offered as a suggestion for an unknown flag.
const suggestionsMinimumDistance = 2

// maxFlagSuggestions caps the number of suggestions attached to an
// UnrecognizedFlagError.
const maxFlagSuggestions = 4

func levenshtein(str string, tgt string) int {
	if len(str) == 0 {
		return len(tgt)
	}

	if len(tgt) == 0 {
		return len(str)
	}

	dists := make([][]int, len(str)+1)
	for i := range dists {
		dists[i] = make([]int, len(tgt)+1)
		dists[i][0] = i
	}

	for j := range dists[0] {
		dists[0][j] = j
	}

	for sidx, sc := range str {
		for tidx, tc := range tgt {
			if sc == tc {
				dists[sidx+1][tidx+1] = dists[sidx][tidx]
			} else {
				dists[sidx+1][tidx+1] = dists[sidx][tidx] + 1
				if dists[sidx+1][tidx] < dists[sidx+1][tidx+1] {
					dists[sidx+1][tidx+1] = dists[sidx+1][tidx] + 1
				}
				if dists[sidx][tidx+1] < dists[sidx+1][tidx+1] {
					dists[sidx+1][tidx+1] = dists[sidx][tidx+1] + 1
				}
			}
		}
	}

	return dists[len(str)][len(tgt)]
}

// flagSuggestions returns the registered names closest to an unknown
// flag name, best match first. A name is close when its levenshtein
// distance to the attempt is small, or when the attempt is a prefix
// of it.
func flagSuggestions(attempt string, names []string) []string {
	type candidate struct {
		name string
		dist int
	}

	var candidates []candidate

	for _, name := range names {
		dist := levenshtein(attempt, name)
		prefixed := strings.HasPrefix(strings.ToLower(name), strings.ToLower(attempt))

		if dist <= suggestionsMinimumDistance || prefixed {
			candidates = append(candidates, candidate{name: name, dist: dist})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.dist - b.dist
	})

	if len(candidates) > maxFlagSuggestions {
		candidates = candidates[:maxFlagSuggestions]
	}

	suggestions := make([]string, 0, len(candidates))
	for _, near := range candidates {
		suggestions = append(suggestions, near.name)
	}

	return suggestions
}
