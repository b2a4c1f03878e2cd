package interaction

import "github.com/google/uuid"

const (
	EnvCommandTopic = "COMMAND_TOPIC_CONTAINER_INTERACTION"
	CommandClick    = "CLICK"
)

type Command[E any] struct {
	EventId uuid.UUID `json:"eventId"`
	ActorId uuid.UUID `json:"actorId"`
	Type    string    `json:"type"`
	Body    E         `json:"body"`
}

type ClickCommandBody struct {
	ActorKind         string    `json:"actorKind"`
	Click             string    `json:"click"`
	SlotType          string    `json:"slotType"`
	Action            string    `json:"action"`
	RawSlot           int32     `json:"rawSlot"`
	Cancelled         bool      `json:"cancelled"`
	TopContainerId    uuid.UUID `json:"topContainerId"`
	BottomContainerId uuid.UUID `json:"bottomContainerId"`
}

const (
	EnvEventTopicStatus      = "EVENT_TOPIC_INTERACTION_STATUS"
	StatusEventTypeCancelled = "CANCELLED"
)

type StatusEvent[E any] struct {
	EventId uuid.UUID `json:"eventId"`
	ActorId uuid.UUID `json:"actorId"`
	Type    string    `json:"type"`
	Body    E         `json:"body"`
}

type CancelledStatusEventBody struct {
	ContainerId uuid.UUID `json:"containerId"`
}
