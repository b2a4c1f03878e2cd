package item

import (
	"cmp"
	"slices"
	"strings"
)

// Compare orders entries from general to specific: type name, data, display
// name, localized name, then damage. Empty entries sort after everything else.
// Quantity does not take part, so entries differing only by quantity rank 0.
func Compare(a Model, b Model) int {
	if a.Equals(b) {
		return 0
	}
	if a.IsEmpty() {
		return 1
	}
	if b.IsEmpty() {
		return -1
	}
	if diff := strings.Compare(a.itemType, b.itemType); diff != 0 {
		return diff
	}
	if diff := cmp.Compare(a.data, b.data); diff != 0 {
		return diff
	}
	if diff := strings.Compare(a.displayName, b.displayName); diff != 0 {
		return diff
	}
	if diff := strings.Compare(a.localizedName, b.localizedName); diff != 0 {
		return diff
	}
	return cmp.Compare(a.damage, b.damage)
}

// Sort orders entries in place. Entries ranking 0 keep their relative order so
// sorting an already sorted slice leaves it untouched.
func Sort(entries []Model) {
	slices.SortStableFunc(entries, Compare)
}
