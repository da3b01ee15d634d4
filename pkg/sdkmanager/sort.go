// pkg/sdkmanager/sort.go
package sdkmanager

import (
	"sort"
	"strings"
)

// SortPackages returns a copy of the catalog ordered by case-insensitive
// comparison of the raw identifier. The input is left untouched. Descending
// is the display default, matching how the tool groups newer platform
// revisions first.
func SortPackages(catalog []*Package, ascending bool) []*Package {
	sorted := make([]*Package, len(catalog))
	copy(sorted, catalog)

	sort.Slice(sorted, func(i, j int) bool {
		a := strings.ToLower(sorted[i].RawName)
		b := strings.ToLower(sorted[j].RawName)
		if ascending {
			return a < b
		}
		return a > b
	})

	return sorted
}
