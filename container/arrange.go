package container

import (
	"atlas-sorter/item"
	"atlas-sorter/stackable"
	"fmt"
)

// Arrange sorts and compacts the storage range of slots and returns the full
// slot list. Slots outside the range are carried over unchanged.
func Arrange(slots []item.Model, r Range, maxStack stackable.MaxStackFunc) ([]item.Model, error) {
	if int(r.End()) > len(slots) {
		return nil, fmt.Errorf("range [%d, %d) exceeds [%d] slots", r.Offset(), r.End(), len(slots))
	}
	storage := make([]item.Model, r.Length())
	copy(storage, slots[r.Offset():r.End()])
	item.Sort(storage)

	refilled, err := stackable.Compact(storage, int(r.Length()), maxStack)
	if err != nil {
		return nil, err
	}

	result := make([]item.Model, len(slots))
	copy(result, slots)
	copy(result[r.Offset():r.End()], refilled)
	return result, nil
}
