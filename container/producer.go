package container

import (
	"atlas-sorter/kafka/message/container"
	"atlas-sorter/kafka/producer"
	"atlas-sorter/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func CreatedEventStatusProvider(id uuid.UUID, kind Kind, capacity uint32) model.Provider[[]kafka.Message] {
	key := producer.UuidKey(id)
	value := &container.StatusEvent[container.CreatedStatusEventBody]{
		ContainerId: id,
		Type:        container.StatusEventTypeCreated,
		Body: container.CreatedStatusEventBody{
			Kind:     string(kind),
			Capacity: capacity,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func UpdatedEventStatusProvider(id uuid.UUID, capacity uint32) model.Provider[[]kafka.Message] {
	key := producer.UuidKey(id)
	value := &container.StatusEvent[container.UpdatedStatusEventBody]{
		ContainerId: id,
		Type:        container.StatusEventTypeUpdated,
		Body: container.UpdatedStatusEventBody{
			Capacity: capacity,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func SortedEventStatusProvider(id uuid.UUID, actorId uuid.UUID, r Range) model.Provider[[]kafka.Message] {
	key := producer.UuidKey(id)
	value := &container.StatusEvent[container.SortedStatusEventBody]{
		ContainerId: id,
		Type:        container.StatusEventTypeSorted,
		Body: container.SortedStatusEventBody{
			ActorId: actorId,
			Offset:  r.Offset(),
			Length:  r.Length(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}
