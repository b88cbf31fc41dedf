package domain

import "sort"

// Displayable is implemented by every storefront dimension that can be shown
// to shoppers: taxonomy nodes, sizes, brands, and promotional content. It
// unifies the ordering key so listing code treats all of them the same way.
type Displayable interface {
	SortKey() (order int, name string)
}

// SortDisplayables orders a slice by (sort_order, name) ascending, the
// display order used throughout the storefront.
func SortDisplayables[T Displayable](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		oi, ni := items[i].SortKey()
		oj, nj := items[j].SortKey()
		if oi != oj {
			return oi < oj
		}
		return ni < nj
	})
}
