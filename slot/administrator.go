package slot

import (
	"atlas-sorter/item"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func create(db *gorm.DB, containerId uuid.UUID, index uint32, i item.Model) (Model, error) {
	e := makeEntity(containerId, index, i)
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return Make(*e)
}

func deleteRange(db *gorm.DB, containerId uuid.UUID, from uint32, to uint32) error {
	return db.Where("container_id = ? AND slot >= ? AND slot < ?", containerId, from, to).Delete(&Entity{}).Error
}

func deleteByContainerId(db *gorm.DB, containerId uuid.UUID) error {
	return db.Where(&Entity{ContainerId: containerId}).Delete(&Entity{}).Error
}
