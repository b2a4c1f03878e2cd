package stackable

import (
	"atlas-sorter/item"
	"errors"
	"fmt"
)

var (
	ErrScratchOverflow  = errors.New("merge overflowed the storage range")
	ErrQuantityMismatch = errors.New("item quantities changed during merge")
)

// MaxStackFunc resolves the stack limit for an item type.
type MaxStackFunc func(itemType string) uint32

// ScratchSize is the smallest multiple of 9 that is at least length+8.
func ScratchSize(length int) int {
	size := length + 8
	if r := size % 9; r != 0 {
		size += 9 - r
	}
	return size
}

// Compact merges sorted entries into as few stacks as their limits allow and
// returns exactly length slots, empties last. Entries after the first empty
// are not merged, so unsorted input fails with ErrQuantityMismatch.
func Compact(sorted []item.Model, length int, maxStack MaxStackFunc) ([]item.Model, error) {
	scratch := make([]item.Model, ScratchSize(length))
	for _, e := range sorted {
		if e.IsEmpty() {
			break
		}
		if err := Insert(scratch, e, maxStack); err != nil {
			return nil, err
		}
	}

	for i := length; i < len(scratch); i++ {
		if !scratch[i].IsEmpty() {
			return nil, fmt.Errorf("slot [%d] of [%d] holds [%s]: %w", i, length, scratch[i], ErrScratchOverflow)
		}
	}
	result := make([]item.Model, length)
	copy(result, scratch)

	if err := VerifyConservation(sorted, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Insert adds e to slots, topping up partial stacks of the same variant in
// order before taking empty slots. Stacks never exceed the variant's limit.
func Insert(slots []item.Model, e item.Model, maxStack MaxStackFunc) error {
	limit := maxStack(e.Type())
	if limit == 0 {
		limit = 1
	}
	remaining := e.Quantity()

	for i := range slots {
		if remaining == 0 {
			return nil
		}
		s := slots[i]
		if !s.SameVariant(e) || s.Quantity() >= limit {
			continue
		}
		moved := min(limit-s.Quantity(), remaining)
		slots[i] = item.Clone(s).SetQuantity(s.Quantity() + moved).Build()
		remaining -= moved
	}

	for i := range slots {
		if remaining == 0 {
			return nil
		}
		if !slots[i].IsEmpty() {
			continue
		}
		moved := min(limit, remaining)
		slots[i] = item.Clone(e).SetQuantity(moved).Build()
		remaining -= moved
	}

	if remaining > 0 {
		return fmt.Errorf("[%d] of [%s] left over: %w", remaining, e, ErrScratchOverflow)
	}
	return nil
}

// VerifyConservation checks that every variant has the same total quantity in
// both slices.
func VerifyConservation(before []item.Model, after []item.Model) error {
	totals := make(map[item.Model]int64)
	for _, e := range before {
		if e.IsEmpty() {
			continue
		}
		totals[e.Variant()] += int64(e.Quantity())
	}
	for _, e := range after {
		if e.IsEmpty() {
			continue
		}
		totals[e.Variant()] -= int64(e.Quantity())
	}
	for v, diff := range totals {
		if diff != 0 {
			return fmt.Errorf("variant [%s] off by [%d]: %w", v, diff, ErrQuantityMismatch)
		}
	}
	return nil
}
