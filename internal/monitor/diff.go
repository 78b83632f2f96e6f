package monitor

import "sort"

// Diff computes which symbols entered and left the listing between two
// observations: added = current \ previous, dropped = previous \ current.
// Pure function. Both result slices are sorted lexicographically so report
// output stays deterministic.
func Diff(previous, current map[string]struct{}) (added, dropped []string) {
	for symbol := range current {
		if _, ok := previous[symbol]; !ok {
			added = append(added, symbol)
		}
	}
	for symbol := range previous {
		if _, ok := current[symbol]; !ok {
			dropped = append(dropped, symbol)
		}
	}
	sort.Strings(added)
	sort.Strings(dropped)
	return added, dropped
}
