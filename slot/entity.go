package slot

import (
	"atlas-sorter/item"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	Id            uuid.UUID `gorm:"primaryKey;type:uuid"`
	ContainerId   uuid.UUID `gorm:"not null;index:idx_container_slot,unique"`
	Slot          uint32    `gorm:"not null;index:idx_container_slot,unique"`
	ItemType      string    `gorm:"not null"`
	Data          int32     `gorm:"not null;default:0"`
	DisplayName   *string
	LocalizedName *string
	Damage        int32  `gorm:"not null;default:0"`
	Quantity      uint32 `gorm:"not null"`
}

func (e Entity) TableName() string {
	return "slots"
}

func (e *Entity) BeforeCreate(_ *gorm.DB) error {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	return nil
}

func Make(e Entity) (Model, error) {
	b := item.NewBuilder(e.ItemType, e.Quantity).
		SetData(e.Data).
		SetDamage(e.Damage)
	if e.DisplayName != nil {
		b.SetDisplayName(*e.DisplayName)
	}
	if e.LocalizedName != nil {
		b.SetLocalizedName(*e.LocalizedName)
	}
	return Model{index: e.Slot, item: b.Build()}, nil
}

func makeEntity(containerId uuid.UUID, index uint32, i item.Model) *Entity {
	e := &Entity{
		ContainerId: containerId,
		Slot:        index,
		ItemType:    i.Type(),
		Data:        i.Data(),
		Damage:      i.Damage(),
		Quantity:    i.Quantity(),
	}
	if n, ok := i.DisplayName(); ok {
		e.DisplayName = &n
	}
	if n, ok := i.LocalizedName(); ok {
		e.LocalizedName = &n
	}
	return e
}
