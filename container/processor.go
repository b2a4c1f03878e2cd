package container

import (
	"atlas-sorter/catalog"
	"atlas-sorter/item"
	"atlas-sorter/kafka/message"
	"atlas-sorter/kafka/message/container"
	"atlas-sorter/kafka/producer"
	"atlas-sorter/model"
	"atlas-sorter/slot"
	"atlas-sorter/stackable"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrContentsSize = errors.New("contents do not match container capacity")

type Processor struct {
	l             logrus.FieldLogger
	ctx           context.Context
	db            *gorm.DB
	slotProcessor *slot.Processor
	maxStack      stackable.MaxStackFunc
	GetById       func(id uuid.UUID) (Model, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:             l,
		ctx:           ctx,
		db:            db,
		slotProcessor: slot.NewProcessor(l, ctx, db),
		maxStack:      catalog.Registry().Get().MaxStack,
	}
	p.GetById = model.CollapseProvider(p.ByIdProvider)
	return p
}

func (p *Processor) WithCatalog(c catalog.Model) *Processor {
	np := p.WithTransaction(p.db)
	np.maxStack = c.MaxStack
	return np
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	np := &Processor{
		l:             p.l,
		ctx:           p.ctx,
		db:            db,
		slotProcessor: p.slotProcessor.WithTransaction(db),
		maxStack:      p.maxStack,
	}
	np.GetById = model.CollapseProvider(np.ByIdProvider)
	return np
}

func (p *Processor) ByIdProvider(id uuid.UUID) model.Provider[Model] {
	return model.Map(p.DecorateSlots)(model.Map(Make)(getById(id)(p.db)))
}

func (p *Processor) DecorateSlots(m Model) (Model, error) {
	contents, err := p.slotProcessor.ContentsProvider(m.Id(), m.Capacity())()
	if err != nil {
		return Model{}, err
	}
	return Clone(m).SetSlots(contents).Build(), nil
}

func (p *Processor) Create(mb *message.Buffer) func(kind Kind, capacity uint32) (Model, error) {
	return func(kind Kind, capacity uint32) (Model, error) {
		p.l.Debugf("Attempting to create [%s] container with capacity [%d].", kind, capacity)
		var c Model
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			var err error
			c, err = create(tx, kind, capacity)
			if err != nil {
				return err
			}
			return mb.Put(container.EnvEventTopicStatus, CreatedEventStatusProvider(c.Id(), c.Kind(), c.Capacity()))
		})
		if txErr != nil {
			p.l.WithError(txErr).Errorf("Unable to create [%s] container.", kind)
			return Model{}, txErr
		}
		p.l.Debugf("Created container [%s].", c.Id())
		return c, nil
	}
}

func (p *Processor) CreateAndEmit(kind Kind, capacity uint32) (Model, error) {
	var c Model
	err := message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		var err error
		c, err = p.Create(buf)(kind, capacity)
		return err
	})
	return c, err
}

// SetContents replaces the full ordered slot list of a container.
func (p *Processor) SetContents(mb *message.Buffer) func(id uuid.UUID, contents []item.Model) error {
	return func(id uuid.UUID, contents []item.Model) error {
		p.l.Debugf("Attempting to set contents of container [%s].", id)
		lock := LockRegistry().Get(id)
		lock.Lock()
		defer lock.Unlock()

		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			c, err := p.WithTransaction(tx).GetById(id)
			if err != nil {
				return err
			}
			if uint32(len(contents)) != c.Capacity() {
				return fmt.Errorf("container [%s] holds [%d] slots, got [%d]: %w", id, c.Capacity(), len(contents), ErrContentsSize)
			}
			for i, e := range contents {
				if err = item.ValidateStack(e, p.maxStack(e.Type())); err != nil {
					return fmt.Errorf("slot [%d]: %w", i, err)
				}
			}
			err = p.slotProcessor.WithTransaction(tx).ReplaceRange(id, 0, contents)
			if err != nil {
				return err
			}
			return mb.Put(container.EnvEventTopicStatus, UpdatedEventStatusProvider(id, c.Capacity()))
		})
		if txErr != nil {
			p.l.WithError(txErr).Errorf("Unable to set contents of container [%s].", id)
			return txErr
		}
		return nil
	}
}

func (p *Processor) SetContentsAndEmit(id uuid.UUID, contents []item.Model) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.SetContents(buf)(id, contents)
	})
}

// Sort rearranges the storage range of a container. It returns false without
// error when the container has no sortable range.
func (p *Processor) Sort(mb *message.Buffer) func(actorId uuid.UUID, id uuid.UUID) (bool, error) {
	return func(actorId uuid.UUID, id uuid.UUID) (bool, error) {
		p.l.Debugf("Actor [%s] attempting to sort container [%s].", actorId, id)
		lock := LockRegistry().Get(id)
		lock.Lock()
		defer lock.Unlock()

		sorted := false
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			c, err := p.WithTransaction(tx).GetById(id)
			if err != nil {
				return err
			}
			r, ok := Resolve(c)
			if !ok {
				p.l.Debugf("Container [%s] of kind [%s] and capacity [%d] has no storage range. Skipping sort.", id, c.Kind(), c.Capacity())
				return nil
			}
			arranged, err := Arrange(c.Slots(), r, p.maxStack)
			if err != nil {
				return err
			}
			err = p.slotProcessor.WithTransaction(tx).ReplaceRange(id, r.Offset(), arranged[r.Offset():r.End()])
			if err != nil {
				return err
			}
			sorted = true
			return mb.Put(container.EnvEventTopicStatus, SortedEventStatusProvider(id, actorId, r))
		})
		if txErr != nil {
			p.l.WithError(txErr).Errorf("Unable to sort container [%s].", id)
			return false, txErr
		}
		if sorted {
			p.l.Debugf("Sorted container [%s].", id)
		}
		return sorted, nil
	}
}

func (p *Processor) SortAndEmit(actorId uuid.UUID, id uuid.UUID) (bool, error) {
	var sorted bool
	err := message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		var err error
		sorted, err = p.Sort(buf)(actorId, id)
		return err
	})
	return sorted, err
}

func (p *Processor) Delete(id uuid.UUID) error {
	p.l.Debugf("Attempting to delete container [%s].", id)
	lock := LockRegistry().Get(id)
	lock.Lock()
	defer lock.Unlock()

	txErr := p.db.Transaction(func(tx *gorm.DB) error {
		if _, err := p.WithTransaction(tx).GetById(id); err != nil {
			return err
		}
		if err := p.slotProcessor.WithTransaction(tx).DeleteByContainerId(id); err != nil {
			return err
		}
		return deleteById(tx, id)
	})
	if txErr != nil {
		p.l.WithError(txErr).Errorf("Unable to delete container [%s].", id)
		return txErr
	}
	LockRegistry().Delete(id)
	return nil
}
