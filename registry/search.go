package registry

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ClosestValue finds the stored value in cat that best matches query,
// using case-folded fuzzy ranking. It is meant for interactive reverse
// lookup when the exact stored text is not known.
func (r *Registry) ClosestValue(cat Category, query string) (Entry, bool) {
	values := r.tables[cat].Values()
	if len(values) == 0 {
		return Entry{}, false
	}

	ranks := fuzzy.RankFindFold(query, values)
	if len(ranks) == 0 {
		return Entry{}, false
	}
	sort.Sort(ranks)

	// Best match has the lowest distance.
	best := ranks[0].Target
	key, ok := r.KeyFor(cat, best)
	if !ok {
		return Entry{}, false
	}
	return Entry{Key: key, Value: best}, true
}
