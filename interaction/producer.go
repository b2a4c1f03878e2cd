package interaction

import (
	"atlas-sorter/kafka/message/interaction"
	"atlas-sorter/kafka/producer"
	"atlas-sorter/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func CancelledEventStatusProvider(eventId uuid.UUID, actorId uuid.UUID, containerId uuid.UUID) model.Provider[[]kafka.Message] {
	key := producer.UuidKey(actorId)
	value := &interaction.StatusEvent[interaction.CancelledStatusEventBody]{
		EventId: eventId,
		ActorId: actorId,
		Type:    interaction.StatusEventTypeCancelled,
		Body: interaction.CancelledStatusEventBody{
			ContainerId: containerId,
		},
	}
	return producer.SingleMessageProvider(key, value)
}
