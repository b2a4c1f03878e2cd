package interaction

import "github.com/google/uuid"

type ActorKind string

const (
	ActorKindPlayer ActorKind = "PLAYER"
	ActorKindOther  ActorKind = "OTHER"
)

type Click string

const (
	ClickLeft         Click = "LEFT"
	ClickShiftLeft    Click = "SHIFT_LEFT"
	ClickRight        Click = "RIGHT"
	ClickShiftRight   Click = "SHIFT_RIGHT"
	ClickMiddle       Click = "MIDDLE"
	ClickDouble       Click = "DOUBLE_CLICK"
	ClickDrop         Click = "DROP"
	ClickNumberKey    Click = "NUMBER_KEY"
	ClickWindowBorder Click = "WINDOW_BORDER_LEFT"
)

type SlotType string

const (
	SlotTypeContainer SlotType = "CONTAINER"
	SlotTypeQuickbar  SlotType = "QUICKBAR"
	SlotTypeArmor     SlotType = "ARMOR"
	SlotTypeCrafting  SlotType = "CRAFTING"
	SlotTypeFuel      SlotType = "FUEL"
	SlotTypeResult    SlotType = "RESULT"
	SlotTypeOutside   SlotType = "OUTSIDE"
)

type Action string

const (
	ActionNothing              Action = "NOTHING"
	ActionPickupAll            Action = "PICKUP_ALL"
	ActionPlaceAll             Action = "PLACE_ALL"
	ActionCloneStack           Action = "CLONE_STACK"
	ActionMoveToOtherInventory Action = "MOVE_TO_OTHER_INVENTORY"
)

// Event is a container click reported by the host. The only mutation allowed
// is marking it cancelled.
type Event struct {
	id        uuid.UUID
	actorId   uuid.UUID
	actorKind ActorKind
	click     Click
	slotType  SlotType
	action    Action
	rawSlot   int32
	cancelled bool
}

func (e *Event) Id() uuid.UUID {
	return e.id
}

func (e *Event) ActorId() uuid.UUID {
	return e.actorId
}

func (e *Event) ActorKind() ActorKind {
	return e.actorKind
}

func (e *Event) Click() Click {
	return e.click
}

func (e *Event) SlotType() SlotType {
	return e.slotType
}

func (e *Event) Action() Action {
	return e.action
}

// RawSlot indexes the combined view: top container first, then bottom.
func (e *Event) RawSlot() int32 {
	return e.rawSlot
}

func (e *Event) Cancelled() bool {
	return e.cancelled
}

func (e *Event) Cancel() {
	e.cancelled = true
}

type EventBuilder struct {
	id        uuid.UUID
	actorId   uuid.UUID
	actorKind ActorKind
	click     Click
	slotType  SlotType
	action    Action
	rawSlot   int32
	cancelled bool
}

func NewEventBuilder(id uuid.UUID, actorId uuid.UUID) *EventBuilder {
	return &EventBuilder{
		id:        id,
		actorId:   actorId,
		actorKind: ActorKindPlayer,
		click:     ClickLeft,
		slotType:  SlotTypeContainer,
		action:    ActionNothing,
	}
}

func (b *EventBuilder) SetActorKind(kind ActorKind) *EventBuilder {
	b.actorKind = kind
	return b
}

func (b *EventBuilder) SetClick(click Click) *EventBuilder {
	b.click = click
	return b
}

func (b *EventBuilder) SetSlotType(slotType SlotType) *EventBuilder {
	b.slotType = slotType
	return b
}

func (b *EventBuilder) SetAction(action Action) *EventBuilder {
	b.action = action
	return b
}

func (b *EventBuilder) SetRawSlot(rawSlot int32) *EventBuilder {
	b.rawSlot = rawSlot
	return b
}

func (b *EventBuilder) SetCancelled(cancelled bool) *EventBuilder {
	b.cancelled = cancelled
	return b
}

func (b *EventBuilder) Build() *Event {
	return &Event{
		id:        b.id,
		actorId:   b.actorId,
		actorKind: b.actorKind,
		click:     b.click,
		slotType:  b.slotType,
		action:    b.action,
		rawSlot:   b.rawSlot,
		cancelled: b.cancelled,
	}
}

// View pairs the upper and lower containers an actor has open.
type View struct {
	Top    uuid.UUID
	Bottom uuid.UUID
}
