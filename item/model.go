package item

import (
	"errors"
	"fmt"
)

const (
	TypeAir       = "AIR"
	TypeLegacyAir = "LEGACY_AIR"
)

var ErrZeroQuantity = errors.New("non-empty item with zero quantity")
var ErrOverStacked = errors.New("item quantity above its max stack size")

type Model struct {
	itemType         string
	data             int32
	displayName      string
	hasDisplayName   bool
	localizedName    string
	hasLocalizedName bool
	damage           int32
	quantity         uint32
}

// Empty is the marker held by a slot with no item in it.
func Empty() Model {
	return Model{}
}

func (m Model) Type() string {
	return m.itemType
}

func (m Model) Data() int32 {
	return m.data
}

func (m Model) DisplayName() (string, bool) {
	return m.displayName, m.hasDisplayName
}

func (m Model) LocalizedName() (string, bool) {
	return m.localizedName, m.hasLocalizedName
}

func (m Model) Damage() int32 {
	return m.damage
}

func (m Model) Quantity() uint32 {
	return m.quantity
}

func (m Model) IsEmpty() bool {
	return m.itemType == "" || m.itemType == TypeAir || m.itemType == TypeLegacyAir
}

// Equals reports field-wise equality, quantity included. Any two empty
// entries are equal regardless of which air marker they carry.
func (m Model) Equals(o Model) bool {
	if m.IsEmpty() || o.IsEmpty() {
		return m.IsEmpty() && o.IsEmpty()
	}
	return m == o
}

// SameVariant reports whether two entries may share a stack.
func (m Model) SameVariant(o Model) bool {
	if m.IsEmpty() || o.IsEmpty() {
		return false
	}
	return m.itemType == o.itemType &&
		m.data == o.data &&
		m.displayName == o.displayName &&
		m.hasDisplayName == o.hasDisplayName &&
		m.localizedName == o.localizedName &&
		m.hasLocalizedName == o.hasLocalizedName &&
		m.damage == o.damage
}

// Variant returns the entry with its quantity cleared, usable as a map key.
func (m Model) Variant() Model {
	if m.IsEmpty() {
		return Empty()
	}
	v := m
	v.quantity = 0
	return v
}

func (m Model) String() string {
	if m.IsEmpty() {
		return "EMPTY"
	}
	return fmt.Sprintf("%dx%s:%d", m.quantity, m.itemType, m.data)
}

func Validate(m Model) error {
	if !m.IsEmpty() && m.quantity == 0 {
		return fmt.Errorf("item [%s]: %w", m.itemType, ErrZeroQuantity)
	}
	return nil
}

// ValidateStack rejects entries holding more than limit items in one slot.
func ValidateStack(m Model, limit uint32) error {
	if err := Validate(m); err != nil {
		return err
	}
	if !m.IsEmpty() && m.quantity > limit {
		return fmt.Errorf("item [%s] holds [%d] of at most [%d]: %w", m.itemType, m.quantity, limit, ErrOverStacked)
	}
	return nil
}

func Clone(m Model) *ModelBuilder {
	return &ModelBuilder{
		itemType:         m.itemType,
		data:             m.data,
		displayName:      m.displayName,
		hasDisplayName:   m.hasDisplayName,
		localizedName:    m.localizedName,
		hasLocalizedName: m.hasLocalizedName,
		damage:           m.damage,
		quantity:         m.quantity,
	}
}

type ModelBuilder struct {
	itemType         string
	data             int32
	displayName      string
	hasDisplayName   bool
	localizedName    string
	hasLocalizedName bool
	damage           int32
	quantity         uint32
}

func NewBuilder(itemType string, quantity uint32) *ModelBuilder {
	return &ModelBuilder{
		itemType: itemType,
		quantity: quantity,
	}
}

func (b *ModelBuilder) SetData(data int32) *ModelBuilder {
	b.data = data
	return b
}

func (b *ModelBuilder) SetDisplayName(name string) *ModelBuilder {
	b.displayName = name
	b.hasDisplayName = true
	return b
}

func (b *ModelBuilder) SetLocalizedName(name string) *ModelBuilder {
	b.localizedName = name
	b.hasLocalizedName = true
	return b
}

func (b *ModelBuilder) SetDamage(damage int32) *ModelBuilder {
	b.damage = damage
	return b
}

func (b *ModelBuilder) SetQuantity(quantity uint32) *ModelBuilder {
	b.quantity = quantity
	return b
}

func (b *ModelBuilder) Build() Model {
	return Model{
		itemType:         b.itemType,
		data:             b.data,
		displayName:      b.displayName,
		hasDisplayName:   b.hasDisplayName,
		localizedName:    b.localizedName,
		hasLocalizedName: b.hasLocalizedName,
		damage:           b.damage,
		quantity:         b.quantity,
	}
}
