package permission

import (
	"atlas-sorter/model"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Processor struct {
	l   logrus.FieldLogger
	ctx context.Context
	db  *gorm.DB
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	return &Processor{
		l:   l,
		ctx: ctx,
		db:  db,
	}
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	return NewProcessor(p.l, p.ctx, db)
}

func (p *Processor) ByActorIdAndNameProvider(actorId uuid.UUID, name string) model.Provider[Model] {
	return model.Map(Make)(getByActorIdAndName(actorId, name)(p.db))
}

// Lookup reports the override stored for an actor. set is false when the
// actor has no explicit value for the permission.
func (p *Processor) Lookup(actorId uuid.UUID, name string) (bool, bool, error) {
	m, err := p.ByActorIdAndNameProvider(actorId, name)()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, nil
	}
	if err != nil {
		p.l.WithError(err).Errorf("Unable to look up permission [%s] for actor [%s].", name, actorId)
		return false, false, err
	}
	return m.Value(), true, nil
}

// Denied is true only when the actor explicitly holds false for the permission.
func (p *Processor) Denied(actorId uuid.UUID, name string) (bool, error) {
	v, ok, err := p.Lookup(actorId, name)
	if err != nil {
		return false, err
	}
	return ok && !v, nil
}

func (p *Processor) Set(actorId uuid.UUID, name string, value bool) (Model, error) {
	p.l.Debugf("Setting permission [%s] for actor [%s] to [%t].", name, actorId, value)
	m, err := set(p.db, actorId, name, value)
	if err != nil {
		p.l.WithError(err).Errorf("Unable to set permission [%s] for actor [%s].", name, actorId)
		return Model{}, err
	}
	return m, nil
}

func (p *Processor) Unset(actorId uuid.UUID, name string) error {
	p.l.Debugf("Clearing permission [%s] for actor [%s].", name, actorId)
	n, err := unset(p.db, actorId, name)
	if err != nil {
		p.l.WithError(err).Errorf("Unable to clear permission [%s] for actor [%s].", name, actorId)
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
