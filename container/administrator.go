package container

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func create(db *gorm.DB, kind Kind, capacity uint32) (Model, error) {
	e := &Entity{
		Kind:     string(kind),
		Capacity: capacity,
	}

	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return Make(*e)
}

func deleteById(db *gorm.DB, id uuid.UUID) error {
	return db.Where(&Entity{Id: id}).Delete(&Entity{}).Error
}
