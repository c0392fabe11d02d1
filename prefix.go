package gflags

import (
	"golang.org/x/exp/slices"
)

// ShortestUniquePrefixes maps every name in the given set to its
// shortest unambiguous prefix within the set.
//
// The names are sorted, so that each name only has to be compared
// with its direct neighbors: a name diverges from the rest of the set
// where it diverges from the previous and next names.
func ShortestUniquePrefixes(names []string) map[string]string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	shortest := make(map[string]string, len(sorted))
	prevIdx := 0

	for idx, curr := range sorted {
		next := ""
		hasNext := idx+1 < len(sorted)

		if hasNext {
			next = sorted[idx+1]
		}

		diverged := false

		var charIdx int
		for charIdx = 0; charIdx < len(curr); charIdx++ {
			if !hasNext || charIdx >= len(next) || curr[charIdx] != next[charIdx] {
				// curr is longer than next, or has no more characters
				// in common with it. Duplicate names can push the carried
				// prefix length past the end, in which case the whole
				// name is the only possible answer.
				shortest[curr] = curr[:min(max(prevIdx, charIdx)+1, len(curr))]
				prevIdx = charIdx
				diverged = true

				break
			}
		}

		if !diverged {
			// curr is a prefix of (or equal to) the next name: it can
			// only stand for itself, and next needs one more character.
			shortest[curr] = curr
			prevIdx = charIdx
		}
	}

	return shortest
}

// ShortestUniquePrefixes returns the shortest unambiguous prefix for
// every registered name. Boolean flags contribute their negated
// spelling as well, since both forms can appear on a command line.
func (f *FlagSet) ShortestUniquePrefixes() map[string]string {
	names := make([]string, 0, len(f.flags))

	for name, flag := range f.flags {
		names = append(names, name)

		if flag.Boolean {
			names = append(names, "no"+name)
		}
	}

	return ShortestUniquePrefixes(names)
}
