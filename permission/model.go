package permission

import "github.com/google/uuid"

// NameSort gates the middle-click sort gesture. Only an explicit false blocks it.
const NameSort = "clicksort"

type Model struct {
	actorId uuid.UUID
	name    string
	value   bool
}

func (m Model) ActorId() uuid.UUID {
	return m.actorId
}

func (m Model) Name() string {
	return m.name
}

func (m Model) Value() bool {
	return m.value
}
