package permission

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func set(db *gorm.DB, actorId uuid.UUID, name string, value bool) (Model, error) {
	e := &Entity{ActorId: actorId, Name: name, Value: value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "actor_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return Make(*e)
}

func unset(db *gorm.DB, actorId uuid.UUID, name string) (int64, error) {
	res := db.Where("actor_id = ? AND name = ?", actorId, name).Delete(&Entity{})
	return res.RowsAffected, res.Error
}
