package interaction

import "github.com/google/uuid"

type RestModel struct {
	EventId           uuid.UUID `json:"eventId"`
	ActorId           uuid.UUID `json:"actorId"`
	ActorKind         string    `json:"actorKind"`
	Click             string    `json:"click"`
	SlotType          string    `json:"slotType"`
	Action            string    `json:"action"`
	RawSlot           int32     `json:"rawSlot"`
	Cancelled         bool      `json:"cancelled"`
	TopContainerId    uuid.UUID `json:"topContainerId"`
	BottomContainerId uuid.UUID `json:"bottomContainerId"`
}

func Extract(rm RestModel) (*Event, View, error) {
	id := rm.EventId
	if id == uuid.Nil {
		id = uuid.New()
	}
	e := NewEventBuilder(id, rm.ActorId).
		SetActorKind(ActorKind(rm.ActorKind)).
		SetClick(Click(rm.Click)).
		SetSlotType(SlotType(rm.SlotType)).
		SetAction(Action(rm.Action)).
		SetRawSlot(rm.RawSlot).
		SetCancelled(rm.Cancelled).
		Build()
	return e, View{Top: rm.TopContainerId, Bottom: rm.BottomContainerId}, nil
}

type ResultRestModel struct {
	EventId   uuid.UUID `json:"eventId"`
	Handled   bool      `json:"handled"`
	Cancelled bool      `json:"cancelled"`
}
