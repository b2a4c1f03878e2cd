package slot

import (
	"atlas-sorter/database"
	"atlas-sorter/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func getByContainerId(containerId uuid.UUID) database.EntityProvider[[]Entity] {
	return func(db *gorm.DB) model.Provider[[]Entity] {
		return database.SliceQuery[Entity](db, &Entity{ContainerId: containerId})
	}
}
