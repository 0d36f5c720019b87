// Package suggest finds likely intended names for a mistyped one, for "did you mean" hints.
package suggest

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agext/levenshtein"
)

// FindSimilar returns up to n candidates that are close to target, closest first. A candidate is
// close when it shares target as a prefix or when its edit distance is within a third of the
// longer of the two names (at least 1). Comparison is case-insensitive. Ties are ordered by name.
func FindSimilar(target string, candidates []string, n int) []string {
	if target == "" || n <= 0 {
		return nil
	}
	type match struct {
		name string
		dist int
	}
	lower := strings.ToLower(target)
	var matches []match
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == lower {
			continue
		}
		dist := levenshtein.Distance(lower, lc, nil)
		if strings.HasPrefix(lc, lower) || dist <= threshold(lower, lc) {
			matches = append(matches, match{name: c, dist: dist})
		}
	}
	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}

func threshold(a, b string) int {
	n := max(len(a), len(b)) / 3
	return max(n, 1)
}
