package permission

import (
	"atlas-sorter/database"
	"atlas-sorter/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func getByActorIdAndName(actorId uuid.UUID, name string) database.EntityProvider[Entity] {
	return func(db *gorm.DB) model.Provider[Entity] {
		return database.Query[Entity](db, map[string]interface{}{"actor_id": actorId, "name": name})
	}
}
