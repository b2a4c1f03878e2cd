package interaction

import (
	"atlas-sorter/container"
	"atlas-sorter/kafka/message"
	"atlas-sorter/kafka/message/interaction"
	"atlas-sorter/kafka/producer"
	"atlas-sorter/permission"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Processor struct {
	l                   logrus.FieldLogger
	ctx                 context.Context
	db                  *gorm.DB
	containerProcessor  *container.Processor
	permissionProcessor *permission.Processor
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	return &Processor{
		l:                   l,
		ctx:                 ctx,
		db:                  db,
		containerProcessor:  container.NewProcessor(l, ctx, db),
		permissionProcessor: permission.NewProcessor(l, ctx, db),
	}
}

func (p *Processor) WithContainerProcessor(cp *container.Processor) *Processor {
	return &Processor{
		l:                   p.l,
		ctx:                 p.ctx,
		db:                  p.db,
		containerProcessor:  cp,
		permissionProcessor: p.permissionProcessor,
	}
}

// TrySort sorts the container under a click when the click is the sort
// gesture. It reports whether the event was handled, in which case the event
// is marked cancelled. Skips leave the event and every container untouched.
func (p *Processor) TrySort(mb *message.Buffer) func(e *Event, v View) (bool, error) {
	return func(e *Event, v View) (bool, error) {
		if !Eligible(e) {
			return false, nil
		}

		denied, err := p.permissionProcessor.Denied(e.ActorId(), permission.NameSort)
		if err != nil {
			return false, err
		}
		if denied {
			p.l.Debugf("Actor [%s] has [%s] set to false. Skipping sort.", e.ActorId(), permission.NameSort)
			return false, nil
		}

		if v.Top == uuid.Nil {
			return false, nil
		}
		top, err := p.containerProcessor.GetById(v.Top)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p.l.Debugf("Container [%s] is not known. Skipping sort.", v.Top)
			return false, nil
		}
		if err != nil {
			p.l.WithError(err).Errorf("Unable to retrieve container [%s] for event [%s].", v.Top, e.Id())
			return false, err
		}

		target := Target(e, v, top.Capacity())
		if target == uuid.Nil {
			return false, nil
		}

		sorted, err := p.containerProcessor.Sort(mb)(e.ActorId(), target)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p.l.Debugf("Container [%s] is not known. Skipping sort.", target)
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if !sorted {
			return false, nil
		}

		e.Cancel()
		err = mb.Put(interaction.EnvEventTopicStatus, CancelledEventStatusProvider(e.Id(), e.ActorId(), target))
		if err != nil {
			p.l.WithError(err).Errorf("Unable to buffer cancellation of event [%s].", e.Id())
			return false, err
		}
		p.l.Debugf("Actor [%s] sorted container [%s] with event [%s].", e.ActorId(), target, e.Id())
		return true, nil
	}
}

func (p *Processor) TrySortAndEmit(e *Event, v View) (bool, error) {
	var handled bool
	err := message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		var err error
		handled, err = p.TrySort(buf)(e, v)
		return err
	})
	if err != nil {
		p.l.WithError(err).Errorf("Unable to complete sort for event [%s] by actor [%s].", e.Id(), e.ActorId())
	}
	return handled, err
}
