package message

import (
	"atlas-sorter/kafka/producer"
	"atlas-sorter/model"
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Buffer collects messages by topic token so they can be emitted once the
// work producing them has committed.
type Buffer struct {
	lock     sync.Mutex
	messages map[string][]kafka.Message
}

func NewBuffer() *Buffer {
	return &Buffer{messages: make(map[string][]kafka.Message)}
}

func (b *Buffer) Put(token string, p model.Provider[[]kafka.Message]) error {
	ms, err := p()
	if err != nil {
		return err
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	b.messages[token] = append(b.messages[token], ms...)
	return nil
}

func (b *Buffer) GetAll() map[string][]kafka.Message {
	b.lock.Lock()
	defer b.lock.Unlock()
	out := make(map[string][]kafka.Message, len(b.messages))
	for t, ms := range b.messages {
		out[t] = append([]kafka.Message(nil), ms...)
	}
	return out
}

func Emit(p producer.Provider) func(f func(buf *Buffer) error) error {
	return func(f func(buf *Buffer) error) error {
		buf := NewBuffer()
		err := f(buf)
		if err != nil {
			return err
		}
		for t, ms := range buf.GetAll() {
			if err = p(t)(model.FixedProvider(ms)); err != nil {
				return err
			}
		}
		return nil
	}
}

type Handler[E any] func(l logrus.FieldLogger, ctx context.Context, e E)

// AdaptHandler decodes the message value into E before calling h.
func AdaptHandler[E any](h Handler[E]) func(l logrus.FieldLogger, ctx context.Context, m kafka.Message) error {
	return func(l logrus.FieldLogger, ctx context.Context, m kafka.Message) error {
		var e E
		if err := json.Unmarshal(m.Value, &e); err != nil {
			l.WithError(err).Errorf("Unable to decode message at offset [%d].", m.Offset)
			return err
		}
		h(l, ctx, e)
		return nil
	}
}
