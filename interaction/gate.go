package interaction

import "github.com/google/uuid"

// Eligible reports whether the event is the sort gesture: an uncancelled
// middle click by a player on a container slot that triggers no other action.
func Eligible(e *Event) bool {
	if e.Cancelled() {
		return false
	}
	return e.ActorKind() == ActorKindPlayer &&
		e.Click() == ClickMiddle &&
		e.SlotType() == SlotTypeContainer &&
		e.Action() == ActionNothing
}

// Target picks the container under the click.
func Target(e *Event, v View, topCapacity uint32) uuid.UUID {
	if e.RawSlot() >= 0 && uint32(e.RawSlot()) >= topCapacity {
		return v.Bottom
	}
	return v.Top
}
