package container

import (
	"atlas-sorter/database"
	"atlas-sorter/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func getById(id uuid.UUID) database.EntityProvider[Entity] {
	return func(db *gorm.DB) model.Provider[Entity] {
		return database.Query[Entity](db, &Entity{Id: id})
	}
}
