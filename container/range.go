package container

const (
	PlayerHotbarSize  = uint32(9)
	PlayerStorageSize = uint32(27)
	MountSpecialSlots = uint32(2)
)

// Range is the contiguous storage section of a container.
type Range struct {
	offset uint32
	length uint32
}

func (r Range) Offset() uint32 {
	return r.offset
}

func (r Range) Length() uint32 {
	return r.length
}

func (r Range) End() uint32 {
	return r.offset + r.length
}

func (r Range) Contains(index uint32) bool {
	return index >= r.offset && index < r.End()
}

// Resolve finds the storage section of a container. It returns false when the
// container has no sortable section, which callers treat as a silent skip.
func Resolve(m Model) (Range, bool) {
	return ResolveShape(m.Kind(), m.Capacity())
}

func ResolveShape(kind Kind, capacity uint32) (Range, bool) {
	switch kind {
	case KindPlayer:
		if capacity < PlayerHotbarSize+PlayerStorageSize {
			return Range{}, false
		}
		return Range{offset: PlayerHotbarSize, length: PlayerStorageSize}, true
	case KindMount:
		if capacity < MountSpecialSlots+1 {
			return Range{}, false
		}
		return Range{offset: MountSpecialSlots, length: capacity - MountSpecialSlots}, true
	case KindGeneric:
		if capacity == 0 {
			return Range{}, false
		}
		return Range{offset: 0, length: capacity}, true
	}
	return Range{}, false
}
