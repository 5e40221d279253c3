package defs

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// closestMatch returns the candidate closest to target by fuzzy rank,
// or "" when nothing matches even loosely.
func closestMatch(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
