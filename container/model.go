package container

import (
	"atlas-sorter/item"

	"github.com/google/uuid"
)

type Model struct {
	id       uuid.UUID
	kind     Kind
	capacity uint32
	slots    []item.Model
}

func (m Model) Id() uuid.UUID {
	return m.id
}

func (m Model) Kind() Kind {
	return m.kind
}

func (m Model) Capacity() uint32 {
	return m.capacity
}

// Slots is the ordered slot list, one entry per index, empties included.
func (m Model) Slots() []item.Model {
	return m.slots
}

func Clone(m Model) *ModelBuilder {
	return &ModelBuilder{
		id:       m.id,
		kind:     m.kind,
		capacity: m.capacity,
		slots:    m.slots,
	}
}

type ModelBuilder struct {
	id       uuid.UUID
	kind     Kind
	capacity uint32
	slots    []item.Model
}

func NewBuilder(id uuid.UUID, kind Kind, capacity uint32) *ModelBuilder {
	return &ModelBuilder{
		id:       id,
		kind:     kind,
		capacity: capacity,
		slots:    make([]item.Model, capacity),
	}
}

func (b *ModelBuilder) SetSlot(index uint32, i item.Model) *ModelBuilder {
	if index < uint32(len(b.slots)) {
		slots := make([]item.Model, len(b.slots))
		copy(slots, b.slots)
		slots[index] = i
		b.slots = slots
	}
	return b
}

func (b *ModelBuilder) SetSlots(slots []item.Model) *ModelBuilder {
	b.slots = slots
	return b
}

func (b *ModelBuilder) Build() Model {
	return Model{
		id:       b.id,
		kind:     b.kind,
		capacity: b.capacity,
		slots:    b.slots,
	}
}
