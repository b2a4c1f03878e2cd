package permission

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	ActorId uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name    string    `gorm:"primaryKey"`
	Value   bool      `gorm:"not null"`
}

func (e Entity) TableName() string {
	return "permissions"
}

func Make(e Entity) (Model, error) {
	return Model{actorId: e.ActorId, name: e.Name, value: e.Value}, nil
}
