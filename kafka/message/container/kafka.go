package container

import "github.com/google/uuid"

const (
	EnvEventTopicStatus    = "EVENT_TOPIC_CONTAINER_STATUS"
	StatusEventTypeCreated = "CREATED"
	StatusEventTypeUpdated = "UPDATED"
	StatusEventTypeSorted  = "SORTED"
)

type StatusEvent[E any] struct {
	ContainerId uuid.UUID `json:"containerId"`
	Type        string    `json:"type"`
	Body        E         `json:"body"`
}

type CreatedStatusEventBody struct {
	Kind     string `json:"kind"`
	Capacity uint32 `json:"capacity"`
}

type UpdatedStatusEventBody struct {
	Capacity uint32 `json:"capacity"`
}

type SortedStatusEventBody struct {
	ActorId uuid.UUID `json:"actorId"`
	Offset  uint32    `json:"offset"`
	Length  uint32    `json:"length"`
}
