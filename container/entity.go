package container

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	Id       uuid.UUID `gorm:"primaryKey;type:uuid"`
	Kind     string    `gorm:"not null"`
	Capacity uint32    `gorm:"not null"`
}

func (e Entity) TableName() string {
	return "containers"
}

func (e *Entity) BeforeCreate(_ *gorm.DB) error {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	return nil
}

func Make(e Entity) (Model, error) {
	k, err := ParseKind(e.Kind)
	if err != nil {
		return Model{}, err
	}
	return NewBuilder(e.Id, k, e.Capacity).Build(), nil
}
