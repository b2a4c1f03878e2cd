package interaction

import (
	"atlas-sorter/interaction"
	consumer2 "atlas-sorter/kafka/consumer"
	"atlas-sorter/kafka/message"
	interaction2 "atlas-sorter/kafka/message/interaction"
	"atlas-sorter/kafka/topic"
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitConsumers(l logrus.FieldLogger) func(func(config consumer2.Config)) func(consumerGroupId string) {
	return func(rf func(config consumer2.Config)) func(consumerGroupId string) {
		return func(consumerGroupId string) {
			rf(consumer2.NewConfig(l)("container_interaction_command")(interaction2.EnvCommandTopic)(consumerGroupId))
		}
	}
}

func InitHandlers(l logrus.FieldLogger) func(db *gorm.DB) func(rf func(topic string, handler consumer2.Handler) (string, error)) {
	return func(db *gorm.DB) func(rf func(topic string, handler consumer2.Handler) (string, error)) {
		return func(rf func(topic string, handler consumer2.Handler) (string, error)) {
			var t string
			t, _ = topic.EnvProvider(l)(interaction2.EnvCommandTopic)()
			if _, err := rf(t, message.AdaptHandler(handleClickCommand(db))); err != nil {
				l.WithError(err).Errorf("Unable to register click handler for topic [%s].", t)
			}
		}
	}
}

func handleClickCommand(db *gorm.DB) message.Handler[interaction2.Command[interaction2.ClickCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, c interaction2.Command[interaction2.ClickCommandBody]) {
		if c.Type != interaction2.CommandClick {
			return
		}
		e, v := Extract(c)
		handled, err := interaction.NewProcessor(l, ctx, db).TrySortAndEmit(e, v)
		if err == nil && handled {
			l.Debugf("Click [%s] by actor [%s] sorted a container.", c.EventId, c.ActorId)
		}
	}
}

func Extract(c interaction2.Command[interaction2.ClickCommandBody]) (*interaction.Event, interaction.View) {
	e := interaction.NewEventBuilder(c.EventId, c.ActorId).
		SetActorKind(interaction.ActorKind(c.Body.ActorKind)).
		SetClick(interaction.Click(c.Body.Click)).
		SetSlotType(interaction.SlotType(c.Body.SlotType)).
		SetAction(interaction.Action(c.Body.Action)).
		SetRawSlot(c.Body.RawSlot).
		SetCancelled(c.Body.Cancelled).
		Build()
	return e, interaction.View{Top: c.Body.TopContainerId, Bottom: c.Body.BottomContainerId}
}
