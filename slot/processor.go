package slot

import (
	"atlas-sorter/item"
	"atlas-sorter/model"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Processor struct {
	l                logrus.FieldLogger
	ctx              context.Context
	db               *gorm.DB
	GetByContainerId func(containerId uuid.UUID) ([]Model, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:   l,
		ctx: ctx,
		db:  db,
	}
	p.GetByContainerId = model.CollapseProvider(p.ByContainerIdProvider)
	return p
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	return NewProcessor(p.l, p.ctx, db)
}

func (p *Processor) ByContainerIdProvider(containerId uuid.UUID) model.Provider[[]Model] {
	return model.SliceMap(Make)(getByContainerId(containerId)(p.db))
}

// ContentsProvider yields the dense slot list of a container, empties included.
func (p *Processor) ContentsProvider(containerId uuid.UUID, capacity uint32) model.Provider[[]item.Model] {
	return model.Fold(p.ByContainerIdProvider(containerId), contentsSupplier(capacity), foldSlot(containerId))
}

func contentsSupplier(capacity uint32) model.Provider[[]item.Model] {
	return func() ([]item.Model, error) {
		return make([]item.Model, capacity), nil
	}
}

func foldSlot(containerId uuid.UUID) model.Folder[Model, []item.Model] {
	return func(contents []item.Model, s Model) ([]item.Model, error) {
		if int(s.Index()) >= len(contents) {
			return nil, fmt.Errorf("slot [%d] of container [%s] is beyond capacity [%d]", s.Index(), containerId, len(contents))
		}
		contents[s.Index()] = s.Item()
		return contents, nil
	}
}

// ReplaceRange overwrites slots [offset, offset+len(entries)) of a container.
// Slots outside the range are not touched.
func (p *Processor) ReplaceRange(containerId uuid.UUID, offset uint32, entries []item.Model) error {
	p.l.Debugf("Attempting to replace slots [%d, %d) of container [%s].", offset, offset+uint32(len(entries)), containerId)
	return p.db.Transaction(func(tx *gorm.DB) error {
		err := deleteRange(tx, containerId, offset, offset+uint32(len(entries)))
		if err != nil {
			return err
		}
		for i, e := range entries {
			if e.IsEmpty() {
				continue
			}
			if err = item.Validate(e); err != nil {
				return err
			}
			if _, err = create(tx, containerId, offset+uint32(i), e); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Processor) DeleteByContainerId(containerId uuid.UUID) error {
	p.l.Debugf("Attempting to delete slots of container [%s].", containerId)
	return deleteByContainerId(p.db, containerId)
}
